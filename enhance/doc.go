// Package enhance turns a raw dictation transcript into a polished prompt by
// calling a completion endpoint through the model registry, insulating
// callers from parameter renames and range changes between model generations.
//
// # Enhancing
//
//	adapter := enhance.New(model.DefaultRegistry(), openai.NewHTTPCompleter(key), usage.NewTracker())
//	text, err := adapter.Enhance(ctx, transcript, enhance.StyleBalanced, prefs.SelectedModel)
//	if err != nil {
//	    // Show the original transcript; enhancement failure never loses it.
//	}
//
// # Execution model
//
// Each call resolves an ordered candidate chain from the registry and tries
// the candidates strictly one at a time. Per candidate the adapter issues the
// base call plus at most one parameter-migration retry (when the server
// rejects the configured token-limit field name) and at most one constraint
// retry (when the server rejects a temperature despite clamping). Anything
// else abandons the candidate and advances the chain. When every candidate
// fails, the returned *FallbackError carries the last error observed per
// candidate; transcript content never appears in error text.
//
// Parameter construction is pure: BuildParams assembles a fixed ParameterSet
// whose optional fields are gated by the model's capability flags.
package enhance
