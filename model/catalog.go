package model

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog is the on-disk registry format. Deployments that need to adjust
// pricing or roll out a new model generation without a rebuild ship a YAML
// catalog next to the application.
type Catalog struct {
	// Default is the key used when the caller has no preference.
	Default string `yaml:"default"`

	// FallbackChain lists the keys tried in order after the preferred model.
	FallbackChain []string `yaml:"fallback_chain"`

	// Models holds the configurations in catalog order.
	Models []Config `yaml:"models"`
}

// ParseCatalog decodes a YAML catalog and builds a registry from it.
func ParseCatalog(data []byte) (*Registry, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return cat.Build()
}

// LoadCatalog reads and parses a YAML catalog file.
func LoadCatalog(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return ParseCatalog(data)
}

// Build constructs a registry from the catalog contents.
func (c Catalog) Build() (*Registry, error) {
	reg := NewRegistry()
	for _, cfg := range c.Models {
		if err := reg.Register(cfg); err != nil {
			return nil, err
		}
	}
	if c.Default != "" {
		if err := reg.SetDefault(c.Default); err != nil {
			return nil, fmt.Errorf("catalog default: %w", err)
		}
	}
	if len(c.FallbackChain) > 0 {
		if err := reg.SetFallbackChain(c.FallbackChain...); err != nil {
			return nil, fmt.Errorf("catalog fallback chain: %w", err)
		}
	}
	return reg, nil
}

// DefaultRegistry returns the built-in catalog: the shipped model generations
// with their known request contracts and pricing. The gpt-5 generation
// renamed the token-limit field, narrowed temperature to a single accepted
// value, and introduced the reasoning-effort control.
func DefaultRegistry() *Registry {
	reg := NewRegistry()

	reg.MustRegister(Config{
		Key:              "gpt-4o-mini",
		DisplayName:      "GPT-4o Mini",
		WireName:         "gpt-4o-mini",
		TokenLimitParam:  ParamMaxTokens,
		TokenLimitValue:  150,
		TemperatureMin:   0.0,
		TemperatureMax:   2.0,
		SupportsJSONMode: true,
		ContextWindow:    128000,
		OutputTokenLimit: 16384,
		Tier:             TierEconomy,
		InputCostPer1K:   0.00015,
		OutputCostPer1K:  0.0006,
	})

	reg.MustRegister(Config{
		Key:              "gpt-4.1-mini",
		DisplayName:      "GPT-4.1 Mini",
		WireName:         "gpt-4.1-mini",
		TokenLimitParam:  ParamMaxTokens,
		TokenLimitValue:  1000,
		TemperatureMin:   0.0,
		TemperatureMax:   2.0,
		SupportsJSONMode: true,
		ContextWindow:    256000,
		OutputTokenLimit: 32768,
		Tier:             TierStandard,
		InputCostPer1K:   0.00007,
		OutputCostPer1K:  0.00028,
		AvailableFrom:    timePtr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	})

	reg.MustRegister(Config{
		Key:                     "gpt-5-nano",
		DisplayName:             "GPT-5 Nano",
		WireName:                "gpt-5-nano",
		TokenLimitParam:         ParamMaxCompletionTokens,
		TokenLimitValue:         250,
		TemperatureFixed:        FixedTemperature(1.0),
		SupportsVerbosity:       true,
		SupportsReasoningEffort: true,
		SupportsJSONMode:        true,
		ContextWindow:           512000,
		OutputTokenLimit:        32768,
		Tier:                    TierStandard,
		InputCostPer1K:          0.00008,
		OutputCostPer1K:         0.00032,
		AvailableFrom:           timePtr(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
	})

	reg.MustRegister(Config{
		Key:                     "gpt-5-mini",
		DisplayName:             "GPT-5 Mini",
		WireName:                "gpt-5-mini",
		TokenLimitParam:         ParamMaxCompletionTokens,
		TokenLimitValue:         500,
		TemperatureFixed:        FixedTemperature(1.0),
		SupportsVerbosity:       true,
		SupportsReasoningEffort: true,
		SupportsJSONMode:        true,
		ContextWindow:           1024000,
		OutputTokenLimit:        65536,
		Tier:                    TierFlagship,
		InputCostPer1K:          0.00015,
		OutputCostPer1K:         0.0006,
		AvailableFrom:           timePtr(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
	})

	// Fallback order is cheapest-first.
	if err := reg.SetDefault("gpt-4o-mini"); err != nil {
		panic(err)
	}
	if err := reg.SetFallbackChain("gpt-4o-mini", "gpt-4.1-mini", "gpt-5-nano", "gpt-5-mini"); err != nil {
		panic(err)
	}
	return reg
}

func timePtr(t time.Time) *time.Time {
	return &t
}
