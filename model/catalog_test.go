package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
default: fast-v1
fallback_chain: [fast-v1, next-v2]
models:
  - key: fast-v1
    display_name: Fast v1
    wire_name: fast-v1-2025
    token_limit_param: max_tokens
    token_limit_value: 150
    temperature_min: 0.0
    temperature_max: 2.0
    input_cost_per_1k: 0.00015
    output_cost_per_1k: 0.0006
    tier: economy
  - key: next-v2
    display_name: Next v2
    wire_name: next-v2-2026
    token_limit_param: max_completion_tokens
    token_limit_value: 500
    temperature_fixed: 1.0
    supports_verbosity: true
    supports_reasoning_effort: true
    input_cost_per_1k: 0.00008
    output_cost_per_1k: 0.00032
    tier: flagship
`

func TestParseCatalog(t *testing.T) {
	reg, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, "fast-v1", reg.DefaultKey())
	assert.Equal(t, []string{"fast-v1", "next-v2"}, reg.FallbackChain())

	cfg, err := reg.Get("next-v2")
	require.NoError(t, err)
	assert.Equal(t, ParamMaxCompletionTokens, cfg.TokenLimitParam)
	require.NotNil(t, cfg.TemperatureFixed)
	assert.Equal(t, 1.0, *cfg.TemperatureFixed)
	assert.True(t, cfg.SupportsReasoningEffort)
	assert.Equal(t, TierFlagship, cfg.Tier)
}

func TestParseCatalog_InvalidModel(t *testing.T) {
	_, err := ParseCatalog([]byte(`
models:
  - key: broken
    wire_name: broken
    token_limit_param: max_tokens
    token_limit_value: 0
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseCatalog_BadDefault(t *testing.T) {
	_, err := ParseCatalog([]byte(`
default: missing
models:
  - key: a
    wire_name: a
    token_limit_param: max_tokens
    token_limit_value: 10
`))
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	require.Equal(t, 4, reg.Len())
	assert.Equal(t, "gpt-4o-mini", reg.DefaultKey())

	// Every chain entry must be registered and appear once.
	seen := make(map[string]bool)
	for _, key := range reg.FallbackChain() {
		assert.True(t, reg.Has(key), "chain entry %s not registered", key)
		assert.False(t, seen[key], "chain entry %s repeated", key)
		seen[key] = true
	}

	// The gpt-5 generation carries the renamed token field and a pinned
	// temperature.
	cfg, err := reg.Get("gpt-5-mini")
	require.NoError(t, err)
	assert.Equal(t, ParamMaxCompletionTokens, cfg.TokenLimitParam)
	require.NotNil(t, cfg.TemperatureFixed)
	assert.Equal(t, 1.0, *cfg.TemperatureFixed)

	// Only the generally-available model resolves before its successors ship.
	reg.now = func() time.Time { return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC) }
	chain, err := reg.ResolveChain("")
	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, "gpt-4o-mini", chain[0].Key)
}
