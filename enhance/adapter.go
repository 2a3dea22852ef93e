package enhance

import (
	"context"
	"strings"
	"time"

	"github.com/randalmurphal/voicekit/model"
	"github.com/randalmurphal/voicekit/openai"
	"github.com/randalmurphal/voicekit/tokens"
	"github.com/randalmurphal/voicekit/usage"
)

// DefaultMaxInputTokens is the pre-call budget for the transcript. Inputs
// estimated above it are rejected before any network call.
const DefaultMaxInputTokens = 3000

// Adapter orchestrates enhancement calls: registry resolution, parameter
// building, execution, typed retries, and fallback. It holds no long-lived
// locks and is safe to share across concurrent requests.
type Adapter struct {
	registry *model.Registry
	client   openai.Completer
	tracker  *usage.Tracker

	temperature     float64
	reasoningEffort string
	timeout         time.Duration
	maxInputTokens  int
	responseFormat  *openai.ResponseFormat
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithTemperature sets the requested sampling temperature. Models still
// clamp it into their accepted ranges.
func WithTemperature(v float64) Option {
	return func(a *Adapter) { a.temperature = v }
}

// WithReasoningEffort sets the effort level sent to models that support it.
func WithReasoningEffort(effort string) Option {
	return func(a *Adapter) { a.reasoningEffort = effort }
}

// WithTimeout bounds each individual network call.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) { a.timeout = d }
}

// WithMaxInputTokens sets the pre-call transcript budget. Zero disables the
// guard.
func WithMaxInputTokens(n int) Option {
	return func(a *Adapter) { a.maxInputTokens = n }
}

// WithResponseFormat requests structured output from models that support
// JSON mode.
func WithResponseFormat(f *openai.ResponseFormat) Option {
	return func(a *Adapter) { a.responseFormat = f }
}

// New creates an adapter over a registry, a completion client, and an
// optional usage tracker (nil disables accounting).
func New(registry *model.Registry, client openai.Completer, tracker *usage.Tracker, opts ...Option) *Adapter {
	a := &Adapter{
		registry:       registry,
		client:         client,
		tracker:        tracker,
		temperature:    DefaultTemperature,
		maxInputTokens: DefaultMaxInputTokens,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Enhance rewrites transcript as a polished prompt in the given style,
// preferring preferredKey (empty means the registry default) and walking the
// fallback chain on terminal failures.
//
// On any error the transcript argument is untouched and remains the caller's
// safe result; the adapter never mutates or stores it. Registry-level
// failures (ErrNoAvailableModel) and the two pre-call guards surface
// directly; call failures surface only as a *FallbackError after every
// candidate is exhausted.
func (a *Adapter) Enhance(ctx context.Context, transcript string, style Style, preferredKey string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyTranscript
	}
	if a.maxInputTokens > 0 && tokens.FragmentAwareCount(transcript) > a.maxInputTokens {
		return "", ErrTranscriptTooLong
	}

	chain, err := a.registry.ResolveChain(preferredKey)
	if err != nil {
		return "", err
	}

	fbErr := &FallbackError{}
	for _, cfg := range chain {
		// A dead caller context means "do not attempt the next candidate";
		// in-flight calls are never raced against a later candidate.
		if ctx.Err() != nil {
			fbErr.Failures = append(fbErr.Failures, CandidateFailure{ModelKey: cfg.Key, Err: ctx.Err()})
			break
		}

		text, err := a.tryCandidate(ctx, cfg, style, transcript)
		if err == nil {
			return text, nil
		}
		fbErr.Failures = append(fbErr.Failures, CandidateFailure{ModelKey: cfg.Key, Err: err})
	}
	return "", fbErr
}

// tryCandidate runs the per-candidate state machine:
//
//	BUILD -> CALL -> SUCCESS
//	              -> PARAM_ERROR      (migrate token field, one retry)
//	              -> CONSTRAINT_ERROR (force safe temperature, one retry)
//	              -> OTHER_ERROR      (abandon candidate)
//
// At most two network calls are issued per candidate: the base call plus a
// single typed retry. A retry that fails again is terminal for the
// candidate regardless of its classification.
func (a *Adapter) tryCandidate(ctx context.Context, cfg model.Config, style Style, transcript string) (string, error) {
	params := BuildParams(cfg, style, transcript, BuildOptions{
		Temperature:     a.temperature,
		ReasoningEffort: a.reasoningEffort,
		Timeout:         a.timeout,
		ResponseFormat:  a.responseFormat,
	})

	retried := false
	for {
		resp, err := a.call(ctx, params)
		if err == nil {
			a.record(cfg, resp.Usage.PromptTokens, resp.Usage.CompletionTokens, true)
			return resp.Text(), nil
		}
		a.record(cfg, 0, 0, false)

		if retried {
			return "", err
		}

		switch c := classify(err, params.TokenLimitParam); c.kind {
		case failureParamMismatch:
			// The server told us which field name it wants; swap and
			// re-issue once. Never both names at once.
			params.TokenLimitParam = c.altParam
			retried = true
		case failureConstraint:
			// Clamping was not enough; force the fixed value or the
			// nearer bound and re-issue once.
			params.Temperature = cfg.NearestBound(params.Temperature)
			retried = true
		default:
			return "", err
		}
	}
}

// call issues one bounded network call.
func (a *Adapter) call(ctx context.Context, p ParameterSet) (*openai.Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()
	return a.client.Complete(callCtx, p.request())
}

// record books one call attempt, when accounting is enabled. Usage errors
// are deliberately dropped: accounting must never fail an enhancement.
func (a *Adapter) record(cfg model.Config, in, out int, succeeded bool) {
	if a.tracker == nil {
		return
	}
	_, _ = a.tracker.Record(cfg, in, out, succeeded)
}
