// Package voicekit provides the model-adapter toolkit behind a voice-dictation
// enhancement feature: rewriting a raw transcript into a polished prompt by
// calling a completion API whose parameter names and value ranges change
// between model generations.
//
// voicekit is a standalone toolkit designed to be imported à la carte. Each
// subpackage can be used independently:
//
//   - model: model configuration registry with ordered fallback chains
//   - enhance: request building, parameter migration, and fallback execution
//   - usage: per-call token and cost accounting
//   - openai: chat-completions wire types, HTTP client, and test doubles
//   - tokens: token estimation for pre-call length guards
//   - prefs: read-only access to the persisted model preference file
//
// # Quick Start
//
// Enhance a transcript with automatic fallback:
//
//	reg := model.DefaultRegistry()
//	adapter := enhance.New(reg, openai.NewHTTPCompleter(apiKey), usage.NewTracker())
//	text, err := adapter.Enhance(ctx, transcript, enhance.StyleBalanced, "")
//
// Track spend:
//
//	tracker := usage.NewTracker()
//	totals := tracker.Grand()
//
// # Design Philosophy
//
//   - The registry is an explicit instance, constructed once at startup and
//     read-only afterwards; there are no ambient mutable globals.
//   - Parameter shapes are fixed structs with capability-gated optional
//     fields, assembled by a pure builder; never runtime key injection.
//   - Retry decisions are driven by classified error values, not by nested
//     exception-style handlers: at most one parameter migration and one
//     constraint retry per fallback candidate.
//   - Enhancement failure is never allowed to cost the caller the original
//     transcript; the adapter returns errors, the caller keeps the input.
package voicekit
