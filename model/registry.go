package model

import (
	"fmt"
	"time"
)

// Registry is an in-memory catalog of model configurations with a designated
// default and an ordered fallback chain.
//
// A Registry is built once at startup (Register, SetDefault,
// SetFallbackChain) and read-only during request processing, so it needs no
// internal locking. It is passed explicitly to collaborators; there is no
// package-level instance.
type Registry struct {
	configs map[string]Config
	order   []string // insertion order, for deterministic iteration

	defaultKey    string
	fallbackChain []string

	// now is the clock used for availability checks. Overridable in tests.
	now func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		configs: make(map[string]Config),
		now:     time.Now,
	}
}

// Register adds a model configuration. The config is validated and its key
// must not already be present.
func (r *Registry) Register(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, exists := r.configs[cfg.Key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, cfg.Key)
	}
	r.configs[cfg.Key] = cfg
	r.order = append(r.order, cfg.Key)
	return nil
}

// MustRegister registers a config, panicking on error. Use only for
// compile-time-known catalogs (e.g. DefaultRegistry).
func (r *Registry) MustRegister(cfg Config) {
	if err := r.Register(cfg); err != nil {
		panic(fmt.Sprintf("model.MustRegister(%q): %v", cfg.Key, err))
	}
}

// Get returns the configuration for a key.
func (r *Registry) Get(key string) (Config, error) {
	cfg, ok := r.configs[key]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownModel, key)
	}
	return cfg, nil
}

// Has reports whether a key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.configs[key]
	return ok
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.order)
}

// SetDefault designates the model used when the caller expresses no
// preference. The key must be registered.
func (r *Registry) SetDefault(key string) error {
	if !r.Has(key) {
		return fmt.Errorf("%w: %s", ErrUnknownModel, key)
	}
	r.defaultKey = key
	return nil
}

// DefaultKey returns the designated default model key, or "" if unset.
func (r *Registry) DefaultKey() string {
	return r.defaultKey
}

// SetFallbackChain sets the ordered list of keys tried when the preferred
// model is unavailable or fails terminally. Every key must be registered and
// appear at most once.
func (r *Registry) SetFallbackChain(keys ...string) error {
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if !r.Has(key) {
			return fmt.Errorf("%w: %s", ErrUnknownModel, key)
		}
		if seen[key] {
			return fmt.Errorf("%w: %s repeated in fallback chain", ErrDuplicateKey, key)
		}
		seen[key] = true
	}
	r.fallbackChain = append([]string(nil), keys...)
	return nil
}

// FallbackChain returns a copy of the configured fallback chain.
func (r *Registry) FallbackChain() []string {
	return append([]string(nil), r.fallbackChain...)
}

// ResolveChain returns the ordered candidates for one call: the preferred
// model first (when registered and available), then the fallback chain in
// order, skipping unavailable entries and duplicates. An empty preferredKey
// starts from the registry default.
//
// Returns ErrNoAvailableModel when the resulting sequence is empty; that
// condition is terminal and must be surfaced to the caller.
func (r *Registry) ResolveChain(preferredKey string) ([]Config, error) {
	now := r.now()

	var chain []Config
	seen := make(map[string]bool)

	appendIfUsable := func(key string) {
		if key == "" || seen[key] {
			return
		}
		cfg, ok := r.configs[key]
		if !ok || !cfg.Available(now) {
			return
		}
		seen[key] = true
		chain = append(chain, cfg)
	}

	if preferredKey == "" {
		preferredKey = r.defaultKey
	}
	appendIfUsable(preferredKey)
	for _, key := range r.fallbackChain {
		appendIfUsable(key)
	}

	if len(chain) == 0 {
		return nil, ErrNoAvailableModel
	}
	return chain, nil
}

// AllModels returns every registered config in insertion order, including
// deprecated and not-yet-available ones. Intended for UI listings.
func (r *Registry) AllModels() []Config {
	out := make([]Config, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.configs[key])
	}
	return out
}

// AvailableModels returns the currently available configs in insertion order.
func (r *Registry) AvailableModels() []Config {
	now := r.now()
	var out []Config
	for _, key := range r.order {
		if cfg := r.configs[key]; cfg.Available(now) {
			out = append(out, cfg)
		}
	}
	return out
}

// ModelsByTier groups the currently available configs by tier, preserving
// insertion order within each group.
func (r *Registry) ModelsByTier() map[Tier][]Config {
	out := make(map[Tier][]Config)
	for _, cfg := range r.AvailableModels() {
		out[cfg.Tier] = append(out[cfg.Tier], cfg)
	}
	return out
}
