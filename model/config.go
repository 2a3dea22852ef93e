package model

import (
	"fmt"
	"time"
)

// Known token-limit parameter names across model generations. Older chat
// models take "max_tokens"; newer generations renamed the field to
// "max_completion_tokens" and reject the old name.
const (
	ParamMaxTokens           = "max_tokens"
	ParamMaxCompletionTokens = "max_completion_tokens"
)

// AlternateTokenParam returns the other known token-limit field name.
// Used when migrating a rejected request to the name the server expects.
func AlternateTokenParam(param string) string {
	if param == ParamMaxTokens {
		return ParamMaxCompletionTokens
	}
	return ParamMaxTokens
}

// Tier groups models by cost and capability. It is an ordering hint for
// display and catalog organization only; adapter control flow never branches
// on it.
type Tier string

// Tier constants from cheapest to most capable.
const (
	TierEconomy  Tier = "economy"
	TierStandard Tier = "standard"
	TierFlagship Tier = "flagship"
)

// Config describes one callable model's request contract and cost.
// A Config is created at startup and immutable afterwards.
type Config struct {
	// Key is the stable caller-facing identifier, used by UI selections and
	// persisted preferences. Unique within a Registry.
	Key string `json:"key" yaml:"key"`

	// DisplayName is the human-readable name shown in model pickers.
	// Defaults to Key when empty.
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`

	// WireName is the model identifier sent to the completion API.
	WireName string `json:"wire_name" yaml:"wire_name"`

	// TokenLimitParam is the request field carrying the output-length limit.
	// One of ParamMaxTokens or ParamMaxCompletionTokens; this is the field
	// name that changes between generations.
	TokenLimitParam string `json:"token_limit_param" yaml:"token_limit_param"`

	// TokenLimitValue is the output-length limit to request. Must be > 0.
	TokenLimitValue int `json:"token_limit_value" yaml:"token_limit_value"`

	// TemperatureMin and TemperatureMax are the inclusive bounds the model
	// accepts. Requested temperatures are clamped into this range, never
	// rejected.
	TemperatureMin float64 `json:"temperature_min" yaml:"temperature_min"`
	TemperatureMax float64 `json:"temperature_max" yaml:"temperature_max"`

	// TemperatureFixed, when set, overrides the range entirely: some
	// generations refuse every value but one.
	TemperatureFixed *float64 `json:"temperature_fixed,omitempty" yaml:"temperature_fixed,omitempty"`

	// Capability gates for optional request fields.
	SupportsVerbosity       bool `json:"supports_verbosity,omitempty" yaml:"supports_verbosity,omitempty"`
	SupportsReasoningEffort bool `json:"supports_reasoning_effort,omitempty" yaml:"supports_reasoning_effort,omitempty"`
	SupportsJSONMode        bool `json:"supports_json_mode,omitempty" yaml:"supports_json_mode,omitempty"`

	// ContextWindow and OutputTokenLimit are informational, used for
	// validation and display.
	ContextWindow    int `json:"context_window,omitempty" yaml:"context_window,omitempty"`
	OutputTokenLimit int `json:"output_token_limit,omitempty" yaml:"output_token_limit,omitempty"`

	// Tier is the cost/capability grouping.
	Tier Tier `json:"tier,omitempty" yaml:"tier,omitempty"`

	// Pricing in monetary units per 1,000 tokens. Non-negative.
	InputCostPer1K  float64 `json:"input_cost_per_1k" yaml:"input_cost_per_1k"`
	OutputCostPer1K float64 `json:"output_cost_per_1k" yaml:"output_cost_per_1k"`

	// Availability gates. A deprecated model, or one outside its
	// [AvailableFrom, SunsetAt] window, is skipped during chain resolution.
	Deprecated    bool       `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	AvailableFrom *time.Time `json:"available_from,omitempty" yaml:"available_from,omitempty"`
	SunsetAt      *time.Time `json:"sunset_at,omitempty" yaml:"sunset_at,omitempty"`
}

// Validate checks the Config invariants.
func (c Config) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidConfig)
	}
	if c.WireName == "" {
		return fmt.Errorf("%w: %s: wire_name is required", ErrInvalidConfig, c.Key)
	}
	if c.TokenLimitParam != ParamMaxTokens && c.TokenLimitParam != ParamMaxCompletionTokens {
		return fmt.Errorf("%w: %s: unknown token limit param %q", ErrInvalidConfig, c.Key, c.TokenLimitParam)
	}
	if c.TokenLimitValue <= 0 {
		return fmt.Errorf("%w: %s: token_limit_value must be > 0, got %d", ErrInvalidConfig, c.Key, c.TokenLimitValue)
	}
	if c.TemperatureFixed == nil && c.TemperatureMin > c.TemperatureMax {
		return fmt.Errorf("%w: %s: temperature_min %g > temperature_max %g",
			ErrInvalidConfig, c.Key, c.TemperatureMin, c.TemperatureMax)
	}
	if c.InputCostPer1K < 0 || c.OutputCostPer1K < 0 {
		return fmt.Errorf("%w: %s: costs must be non-negative", ErrInvalidConfig, c.Key)
	}
	return nil
}

// Available reports whether the model can be included in a fallback chain at
// the given instant.
func (c Config) Available(now time.Time) bool {
	if c.Deprecated {
		return false
	}
	if c.AvailableFrom != nil && now.Before(*c.AvailableFrom) {
		return false
	}
	if c.SunsetAt != nil && now.After(*c.SunsetAt) {
		return false
	}
	return true
}

// ClampTemperature resolves the temperature to send for a requested value:
// the fixed value when one is configured, otherwise the requested value
// clamped into [TemperatureMin, TemperatureMax]. Clamping, not rejection,
// is the policy.
func (c Config) ClampTemperature(requested float64) float64 {
	if c.TemperatureFixed != nil {
		return *c.TemperatureFixed
	}
	if requested < c.TemperatureMin {
		return c.TemperatureMin
	}
	if requested > c.TemperatureMax {
		return c.TemperatureMax
	}
	return requested
}

// NearestBound returns the configured fixed temperature when set, otherwise
// the range bound nearest to v. Used for the single constraint retry after a
// server-side value rejection.
func (c Config) NearestBound(v float64) float64 {
	if c.TemperatureFixed != nil {
		return *c.TemperatureFixed
	}
	if v-c.TemperatureMin < c.TemperatureMax-v {
		return c.TemperatureMin
	}
	return c.TemperatureMax
}

// EstimateCost computes the monetary cost of a call from its token counts.
func (c Config) EstimateCost(inputTokens, outputTokens int) float64 {
	inputCost := float64(inputTokens) / 1000 * c.InputCostPer1K
	outputCost := float64(outputTokens) / 1000 * c.OutputCostPer1K
	return inputCost + outputCost
}

// Display returns the name to show in UI listings.
func (c Config) Display() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Key
}

// FixedTemperature is a convenience constructor for TemperatureFixed.
func FixedTemperature(v float64) *float64 {
	return &v
}
