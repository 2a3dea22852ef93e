package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/randalmurphal/voicekit/enhance"
)

// Preferences is the subset of the desktop tool's preference file the
// enhancement flow consumes. Unknown keys in the file are ignored.
type Preferences struct {
	// SelectedModel is the model key chosen in the UI, passed to the
	// adapter as the preferred key. Empty means the registry default.
	SelectedModel string `toml:"selected_model"`

	// EnhancementStyle is the chosen style name. Unknown values normalize
	// to balanced.
	EnhancementStyle string `toml:"enhancement_style"`

	// Temperature is the requested sampling temperature.
	Temperature float64 `toml:"temperature"`
}

// Default returns the preferences used when no file exists.
func Default() Preferences {
	return Preferences{
		EnhancementStyle: string(enhance.StyleBalanced),
		Temperature:      enhance.DefaultTemperature,
	}
}

// Style returns the enhancement style, normalized.
func (p Preferences) Style() enhance.Style {
	return enhance.Style(p.EnhancementStyle).Normalize()
}

// DefaultPath returns the conventional preference file location
// (~/.config/voicekit/prefs.toml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "prefs.toml"
	}
	return filepath.Join(home, ".config", "voicekit", "prefs.toml")
}

// Load reads the preference file. A missing file is not an error and returns
// the defaults; the UI may not have written preferences yet. Malformed TOML
// is an error.
func Load(path string) (Preferences, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("prefs: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("prefs: parse %s: %w", path, err)
	}
	return p, nil
}
