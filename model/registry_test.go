package model

import (
	"errors"
	"testing"
	"time"
)

func testConfig(key string) Config {
	return Config{
		Key:             key,
		WireName:        key,
		TokenLimitParam: ParamMaxTokens,
		TokenLimitValue: 100,
		TemperatureMin:  0.0,
		TemperatureMax:  2.0,
	}
}

func TestRegister_RoundTrip(t *testing.T) {
	reg := NewRegistry()

	want := testConfig("model-a")
	want.DisplayName = "Model A"
	want.InputCostPer1K = 0.0002
	want.OutputCostPer1K = 0.0008
	want.Tier = TierEconomy

	if err := reg.Register(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := reg.Get("model-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DisplayName != want.DisplayName ||
		got.WireName != want.WireName ||
		got.TokenLimitParam != want.TokenLimitParam ||
		got.TokenLimitValue != want.TokenLimitValue ||
		got.InputCostPer1K != want.InputCostPer1K ||
		got.OutputCostPer1K != want.OutputCostPer1K ||
		got.Tier != want.Tier {
		t.Errorf("registered config does not round-trip: got %+v, want %+v", got, want)
	}
}

func TestRegister_DuplicateKey(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(testConfig("dup")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := reg.Register(testConfig("dup"))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestRegister_InvalidConfig(t *testing.T) {
	reg := NewRegistry()

	bad := testConfig("bad")
	bad.TokenLimitValue = 0
	if err := reg.Register(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero token limit, got %v", err)
	}

	bad = testConfig("bad")
	bad.TemperatureMin = 1.5
	bad.TemperatureMax = 0.5
	if err := reg.Register(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for inverted range, got %v", err)
	}

	// An inverted range is fine when a fixed value overrides it.
	bad.TemperatureFixed = FixedTemperature(1.0)
	if err := reg.Register(bad); err != nil {
		t.Errorf("fixed temperature should bypass range check, got %v", err)
	}
}

func TestGet_Unknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("missing")
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestSetFallbackChain_RejectsRepeats(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(testConfig("a"))
	reg.MustRegister(testConfig("b"))

	if err := reg.SetFallbackChain("a", "b", "a"); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey for repeated chain entry, got %v", err)
	}
	if err := reg.SetFallbackChain("a", "missing"); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel for unregistered chain entry, got %v", err)
	}
}

func TestResolveChain_PreferredFirst(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(testConfig("a"))
	reg.MustRegister(testConfig("b"))
	reg.MustRegister(testConfig("c"))
	if err := reg.SetFallbackChain("a", "b", "c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chain, err := reg.ResolveChain("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keys := chainKeys(chain)
	want := []string{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

func TestResolveChain_NoDuplicatesNoUnavailable(t *testing.T) {
	reg := NewRegistry()

	dep := testConfig("deprecated")
	dep.Deprecated = true
	reg.MustRegister(dep)

	future := testConfig("future")
	future.AvailableFrom = timePtr(time.Now().Add(24 * time.Hour))
	reg.MustRegister(future)

	reg.MustRegister(testConfig("live"))
	if err := reg.SetFallbackChain("deprecated", "future", "live"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chain, err := reg.ResolveChain("live")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chain) != 1 || chain[0].Key != "live" {
		t.Errorf("expected [live], got %v", chainKeys(chain))
	}

	seen := make(map[string]bool)
	for _, cfg := range chain {
		if seen[cfg.Key] {
			t.Errorf("duplicate key %s in resolved chain", cfg.Key)
		}
		seen[cfg.Key] = true
	}
}

func TestResolveChain_DefaultWhenNoPreference(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(testConfig("a"))
	reg.MustRegister(testConfig("b"))
	if err := reg.SetDefault("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.SetFallbackChain("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chain, err := reg.ResolveChain("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain[0].Key != "b" {
		t.Errorf("expected default model first, got %s", chain[0].Key)
	}
}

func TestResolveChain_Empty(t *testing.T) {
	reg := NewRegistry()

	dep := testConfig("gone")
	dep.Deprecated = true
	reg.MustRegister(dep)
	if err := reg.SetFallbackChain("gone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := reg.ResolveChain("gone")
	if !errors.Is(err, ErrNoAvailableModel) {
		t.Errorf("expected ErrNoAvailableModel, got %v", err)
	}
}

func TestResolveChain_UnknownPreferredFallsThrough(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(testConfig("a"))
	if err := reg.SetFallbackChain("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chain, err := reg.ResolveChain("no-such-model")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chain) != 1 || chain[0].Key != "a" {
		t.Errorf("expected fallback chain only, got %v", chainKeys(chain))
	}
}

func chainKeys(chain []Config) []string {
	keys := make([]string, len(chain))
	for i, cfg := range chain {
		keys[i] = cfg.Key
	}
	return keys
}
