package enhance

import (
	"time"

	"github.com/randalmurphal/voicekit/model"
	"github.com/randalmurphal/voicekit/openai"
)

// DefaultTemperature is the requested temperature when the caller has no
// opinion. Individual models still clamp or override it.
const DefaultTemperature = 0.3

// DefaultReasoningEffort is sent to models that support the control. Higher
// efforts have been observed to return empty content on some generations, so
// the default stays low.
const DefaultReasoningEffort = "low"

// BuildOptions carries the caller-tunable inputs to BuildParams.
type BuildOptions struct {
	// Temperature is the requested sampling temperature, clamped into the
	// model's accepted range (or replaced by its fixed value).
	Temperature float64

	// ReasoningEffort is included for models that support it.
	// Empty means DefaultReasoningEffort.
	ReasoningEffort string

	// Timeout bounds the network call issued with these parameters.
	// Zero means openai.DefaultTimeout.
	Timeout time.Duration

	// ResponseFormat requests structured output, included only when the
	// model advertises JSON-mode support.
	ResponseFormat *openai.ResponseFormat
}

// ParameterSet is the fully-resolved request shape for one candidate model:
// a fixed struct whose optional fields were gated by the model's capability
// flags at build time. The execution loop mutates only TokenLimitParam (one
// migration) and Temperature (one constraint retry).
type ParameterSet struct {
	Model           string
	Messages        []openai.Message
	TokenLimitParam string
	TokenLimit      int
	Temperature     float64
	Verbosity       string
	ReasoningEffort string
	ResponseFormat  *openai.ResponseFormat
	Timeout         time.Duration
}

// BuildParams assembles the parameter set for one model. It is pure and
// deterministic: no I/O, no clock, same inputs same output.
//
// The token limit is placed under the single field name the config
// specifies. The temperature is the config's fixed value when set, otherwise
// the requested value clamped into the accepted range. Verbosity and
// reasoning effort appear only when the config supports them.
func BuildParams(cfg model.Config, style Style, transcript string, o BuildOptions) ParameterSet {
	style = style.Normalize()

	p := ParameterSet{
		Model: cfg.WireName,
		Messages: []openai.Message{
			{Role: openai.RoleSystem, Content: style.SystemPrompt()},
			{Role: openai.RoleUser, Content: transcript},
		},
		TokenLimitParam: cfg.TokenLimitParam,
		TokenLimit:      cfg.TokenLimitValue,
		Temperature:     cfg.ClampTemperature(o.Temperature),
		Timeout:         o.Timeout,
	}
	if p.Timeout <= 0 {
		p.Timeout = openai.DefaultTimeout
	}

	if cfg.SupportsVerbosity {
		p.Verbosity = style.Verbosity()
	}
	if cfg.SupportsReasoningEffort {
		p.ReasoningEffort = o.ReasoningEffort
		if p.ReasoningEffort == "" {
			p.ReasoningEffort = DefaultReasoningEffort
		}
	}
	if cfg.SupportsJSONMode && o.ResponseFormat != nil {
		p.ResponseFormat = o.ResponseFormat
	}

	return p
}

// request converts the parameter set to the wire request.
func (p ParameterSet) request() openai.Request {
	temp := p.Temperature
	return openai.Request{
		Model:           p.Model,
		Messages:        p.Messages,
		TokenLimitParam: p.TokenLimitParam,
		TokenLimit:      p.TokenLimit,
		Temperature:     &temp,
		Verbosity:       p.Verbosity,
		ReasoningEffort: p.ReasoningEffort,
		ResponseFormat:  p.ResponseFormat,
	}
}
