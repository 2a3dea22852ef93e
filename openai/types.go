package openai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role identifies the message sender.
type Role string

// Message roles used by the enhancement flow.
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request configures one completion call.
//
// TokenLimitParam selects which wire field carries TokenLimit; the marshaled
// request contains exactly that field and never its alternate. Optional
// fields are omitted from the wire request when unset.
type Request struct {
	Model    string
	Messages []Message

	// TokenLimitParam is the wire field name for the output-length limit,
	// "max_tokens" or "max_completion_tokens". Defaults to "max_tokens".
	TokenLimitParam string
	TokenLimit      int

	// Temperature is sent when non-nil.
	Temperature *float64

	// Verbosity is sent when non-empty ("low", "medium", "high").
	Verbosity string

	// ReasoningEffort is sent when non-empty ("low", "medium", "high").
	ReasoningEffort string

	// ResponseFormat requests structured output when non-nil.
	ResponseFormat *ResponseFormat
}

// wireRequest is the JSON shape sent to the endpoint. Both token-limit
// fields are declared; MarshalJSON guarantees only one is populated.
type wireRequest struct {
	Model               string          `json:"model"`
	Messages            []Message       `json:"messages"`
	MaxTokens           int             `json:"max_tokens,omitempty"`
	MaxCompletionTokens int             `json:"max_completion_tokens,omitempty"`
	Temperature         *float64        `json:"temperature,omitempty"`
	Verbosity           string          `json:"verbosity,omitempty"`
	ReasoningEffort     string          `json:"reasoning_effort,omitempty"`
	ResponseFormat      *ResponseFormat `json:"response_format,omitempty"`
}

// MarshalJSON implements json.Marshaler, routing TokenLimit to the field
// named by TokenLimitParam.
func (r Request) MarshalJSON() ([]byte, error) {
	w := wireRequest{
		Model:           r.Model,
		Messages:        r.Messages,
		Temperature:     r.Temperature,
		Verbosity:       r.Verbosity,
		ReasoningEffort: r.ReasoningEffort,
		ResponseFormat:  r.ResponseFormat,
	}
	switch r.TokenLimitParam {
	case "max_completion_tokens":
		w.MaxCompletionTokens = r.TokenLimit
	case "max_tokens", "":
		w.MaxTokens = r.TokenLimit
	default:
		return nil, fmt.Errorf("openai: unknown token limit param %q", r.TokenLimitParam)
	}
	return json.Marshal(w)
}

// ResponseFormat selects the output shape of a completion.
type ResponseFormat struct {
	// Type is "json_object" for free-form JSON or "json_schema" for
	// schema-constrained output.
	Type string `json:"type"`

	// JSONSchema carries the schema when Type is "json_schema".
	JSONSchema *JSONSchemaFormat `json:"json_schema,omitempty"`
}

// JSONSchemaFormat names and constrains a schema-bound response.
type JSONSchemaFormat struct {
	Name   string `json:"name"`
	Strict bool   `json:"strict,omitempty"`
	Schema any    `json:"schema"`
}

// JSONObjectFormat returns the response format for free-form JSON output.
func JSONObjectFormat() *ResponseFormat {
	return &ResponseFormat{Type: "json_object"}
}

// Usage reports the endpoint's token accounting for one call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Choice is one generated alternative.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Response is the success shape of a completion call.
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Text returns the trimmed content of the first choice, or "" when the
// response carries no choices.
func (r *Response) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Choices[0].Message.Content)
}
