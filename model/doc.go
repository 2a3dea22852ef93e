// Package model provides the configuration registry for completion models.
//
// Different model generations of the same completion API disagree about
// request parameter names (max_tokens vs max_completion_tokens), accepted
// temperature ranges, and optional capabilities. Each Config captures one
// model's request contract and pricing; a Registry holds the configured
// models together with an ordered fallback chain.
//
// # Registry
//
//	reg := model.NewRegistry()
//	err := reg.Register(model.Config{
//	    Key:             "gpt-4o-mini",
//	    WireName:        "gpt-4o-mini",
//	    TokenLimitParam: model.ParamMaxTokens,
//	    TokenLimitValue: 150,
//	    TemperatureMin:  0.0,
//	    TemperatureMax:  2.0,
//	})
//	reg.SetDefault("gpt-4o-mini")
//
// # Fallback Resolution
//
// ResolveChain returns the ordered candidates for one enhancement call: the
// preferred model first (when present and available), then the fallback chain
// with unavailable entries and duplicates skipped:
//
//	chain, err := reg.ResolveChain("gpt-5-mini")
//
// A Registry is mutated only at startup. After registration completes it is
// read-only and safe to share across concurrent requests without locking.
package model
