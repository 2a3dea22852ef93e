package openai

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse indicates a 2xx response that carried no usable text.
var ErrEmptyResponse = errors.New("empty completion response")

// APIError is a non-2xx response decoded from the endpoint's error envelope.
// Its Message is the raw server text the adapter classifies to decide between
// parameter migration, constraint retry, and fallback.
type APIError struct {
	// StatusCode is the HTTP status of the failed call.
	StatusCode int `json:"-"`

	// Type and Code are the server's error taxonomy fields, when present.
	Type string `json:"type,omitempty"`
	Code string `json:"code,omitempty"`

	// Param names the request field the server objected to, when present.
	Param string `json:"param,omitempty"`

	// Message is the human-readable error text.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("openai: %d %s (param %s)", e.StatusCode, e.Message, e.Param)
	}
	return fmt.Sprintf("openai: %d %s", e.StatusCode, e.Message)
}

// errorEnvelope is the wire shape wrapping APIError in error responses.
type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// AsAPIError unwraps err to an *APIError, if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
