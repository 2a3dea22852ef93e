package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *HTTPCompleter) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, &HTTPCompleter{BaseURL: srv.URL, APIKey: "test-key"}
}

func TestHTTPCompleter_Success(t *testing.T) {
	var gotBody map[string]json.RawMessage
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(Response{
			Model:   "gpt-4o-mini",
			Choices: []Choice{{Message: Message{Role: "assistant", Content: "polished"}, FinishReason: "stop"}},
			Usage:   Usage{PromptTokens: 42, CompletionTokens: 7, TotalTokens: 49},
		})
	})

	resp, err := client.Complete(context.Background(), Request{
		Model:           "gpt-4o-mini",
		Messages:        []Message{{Role: RoleUser, Content: "raw transcript"}},
		TokenLimitParam: "max_tokens",
		TokenLimit:      150,
	})
	require.NoError(t, err)
	assert.Equal(t, "polished", resp.Text())
	assert.Equal(t, 42, resp.Usage.PromptTokens)
	assert.Contains(t, gotBody, "max_tokens")
	assert.NotContains(t, gotBody, "max_completion_tokens")
}

func TestHTTPCompleter_APIError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorEnvelope{Error: &APIError{
			Type:    "invalid_request_error",
			Param:   "max_tokens",
			Message: "Unsupported parameter: 'max_tokens' is not supported with this model. Use 'max_completion_tokens' instead.",
		}})
	})

	_, err := client.Complete(context.Background(), Request{
		Model:           "gpt-5-mini",
		TokenLimitParam: "max_tokens",
		TokenLimit:      500,
	})
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "max_tokens", apiErr.Param)
	assert.Contains(t, apiErr.Message, "max_completion_tokens")
}

func TestHTTPCompleter_MalformedErrorBody(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream went away"))
	})

	_, err := client.Complete(context.Background(), Request{Model: "m", TokenLimit: 1})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestHTTPCompleter_EmptyChoices(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Model: "m"})
	})

	_, err := client.Complete(context.Background(), Request{Model: "m", TokenLimit: 1})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestHTTPCompleter_Timeout(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(Response{Choices: []Choice{{Message: Message{Content: "late"}}}})
	})
	client.Timeout = 20 * time.Millisecond

	_, err := client.Complete(context.Background(), Request{Model: "m", TokenLimit: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected deadline error, got %v", err)
}

func TestHTTPCompleter_Available(t *testing.T) {
	assert.False(t, (&HTTPCompleter{}).Available())
	assert.True(t, NewHTTPCompleter("k").Available())
}

func TestMockCompleter_Scripting(t *testing.T) {
	scripted := &APIError{StatusCode: 400, Message: "bad param"}
	mock := NewMockCompleter("ok").WithErrors(scripted)

	_, err := mock.Complete(context.Background(), Request{Model: "m"})
	assert.Equal(t, scripted, err)

	resp, err := mock.Complete(context.Background(), Request{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text())

	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, "m", mock.LastCall().Model)
}
