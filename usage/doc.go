// Package usage accumulates per-call token counts and derived cost.
//
// A Tracker is stateless with respect to request semantics: the adapter
// hands it the model config and token counts once per call attempt, and the
// tracker appends an immutable Record and bumps per-model running totals.
// Records are read by reporting surfaces (a dashboard), never by the adapter
// itself.
//
//	tracker := usage.NewTracker()
//	tracker.Record(cfg, 812, 133, true)
//	fmt.Println(tracker.TotalCost())
//
// Tracker methods are safe for concurrent use.
package usage
