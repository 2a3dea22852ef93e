package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com"

	// DefaultTimeout bounds one completion call when the caller's context
	// carries no deadline of its own.
	DefaultTimeout = 15 * time.Second
)

// Completer executes one completion call. Implementations must be safe for
// concurrent use.
type Completer interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// HTTPCompleter talks to a chat-completions endpoint over HTTP.
type HTTPCompleter struct {
	// BaseURL overrides the production endpoint; useful for proxies and
	// httptest servers. Empty means the default.
	BaseURL string

	// APIKey is sent as a bearer token.
	APIKey string

	// Timeout bounds each call when the context has no deadline.
	// Zero means DefaultTimeout.
	Timeout time.Duration

	// Client is the underlying HTTP client. Nil means http.DefaultClient.
	Client *http.Client
}

// NewHTTPCompleter creates a client for the production endpoint.
func NewHTTPCompleter(apiKey string) *HTTPCompleter {
	return &HTTPCompleter{APIKey: apiKey}
}

// Available reports whether the client has credentials to call with.
func (c *HTTPCompleter) Available() bool {
	return c.APIKey != ""
}

// Complete implements Completer.
func (c *HTTPCompleter) Complete(ctx context.Context, req Request) (*Response, error) {
	if _, ok := ctx.Deadline(); !ok {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: marshal request: %w", err)
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	url := strings.TrimRight(baseURL, "/") + "/v1/chat/completions"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	httpClient := c.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == nil {
			return nil, &APIError{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
			}
		}
		envelope.Error.StatusCode = resp.StatusCode
		return nil, envelope.Error
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}
	if out.Text() == "" {
		return nil, ErrEmptyResponse
	}
	return &out, nil
}
