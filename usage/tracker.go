package usage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/randalmurphal/voicekit/model"
)

// ErrNegativeTokens indicates a Record call with a negative token count.
var ErrNegativeTokens = errors.New("negative token count")

// Record is the immutable accounting entry for one completed or failed call
// attempt. Never mutated after creation.
type Record struct {
	ModelKey     string    `json:"model_key"`
	Time         time.Time `json:"time"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	Cost         float64   `json:"cost"`
	Succeeded    bool      `json:"succeeded"`
}

// Totals is the running aggregate for one model.
type Totals struct {
	Requests     int     `json:"requests"`
	Succeeded    int     `json:"succeeded"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	Cost         float64 `json:"cost"`
}

// TotalTokens returns input plus output tokens.
func (t Totals) TotalTokens() int {
	return t.InputTokens + t.OutputTokens
}

// Add folds another aggregate into this one.
func (t *Totals) Add(other Totals) {
	t.Requests += other.Requests
	t.Succeeded += other.Succeeded
	t.InputTokens += other.InputTokens
	t.OutputTokens += other.OutputTokens
	t.Cost += other.Cost
}

// Tracker accumulates usage records and per-model totals. The totals are
// shared mutable state across concurrently completing requests, so every
// accumulation happens under the mutex.
type Tracker struct {
	mu      sync.RWMutex
	records []Record
	totals  map[string]Totals

	// now is the clock used to stamp records. Overridable in tests.
	now func() time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		totals: make(map[string]Totals),
		now:    time.Now,
	}
}

// Record appends one accounting entry for a call attempt against cfg.
// Cost is derived from the config's per-1K rates:
//
//	cost = in/1000 * InputCostPer1K + out/1000 * OutputCostPer1K
//
// Exactly one Record is appended per call; negative token counts are the
// only rejected input.
func (t *Tracker) Record(cfg model.Config, inputTokens, outputTokens int, succeeded bool) (Record, error) {
	if inputTokens < 0 || outputTokens < 0 {
		return Record{}, fmt.Errorf("%w: input=%d output=%d", ErrNegativeTokens, inputTokens, outputTokens)
	}

	rec := Record{
		ModelKey:     cfg.Key,
		Time:         t.now(),
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		Cost:         cfg.EstimateCost(inputTokens, outputTokens),
		Succeeded:    succeeded,
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = append(t.records, rec)
	agg := t.totals[cfg.Key]
	agg.Requests++
	if succeeded {
		agg.Succeeded++
	}
	agg.InputTokens += inputTokens
	agg.OutputTokens += outputTokens
	agg.Cost += rec.Cost
	t.totals[cfg.Key] = agg

	return rec, nil
}

// ModelTotals returns the running aggregate for one model key.
func (t *Tracker) ModelTotals(key string) Totals {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[key]
}

// Summary returns a copy of all per-model aggregates.
func (t *Tracker) Summary() map[string]Totals {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]Totals, len(t.totals))
	for k, v := range t.totals {
		out[k] = v
	}
	return out
}

// Grand returns the aggregate across all models.
func (t *Tracker) Grand() Totals {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total Totals
	for _, v := range t.totals {
		total.Add(v)
	}
	return total
}

// TotalCost returns the accumulated cost across all models.
func (t *Tracker) TotalCost() float64 {
	return t.Grand().Cost
}

// Records returns a copy of all accounting entries in append order.
func (t *Tracker) Records() []Record {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Record(nil), t.records...)
}

// Reset clears all records and totals.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = nil
	t.totals = make(map[string]Totals)
}
