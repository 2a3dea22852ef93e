// Package prefs reads the desktop tool's persisted enhancement preferences.
//
// The preference file is owned by the UI; this package only ever reads it.
// The value that matters to the adapter is SelectedModel, consumed at call
// time as the preferred model key.
//
//	p, err := prefs.Load(prefs.DefaultPath())
//	text, err := adapter.Enhance(ctx, transcript, p.Style(), p.SelectedModel)
//
// Watch streams reloaded preferences as the UI rewrites the file, so a
// long-running worker picks up model switches without polling.
package prefs
