package openai

import (
	"context"
	"sync"
)

// MockCompleter is a test double for Completer. It supports fixed and
// sequential responses, per-call scripted errors, and custom handlers, and
// records every request for assertions.
type MockCompleter struct {
	mu           sync.Mutex
	responses    []string
	responseIdx  int
	errs         []error
	callIdx      int
	completeFunc func(ctx context.Context, req Request) (*Response, error)

	// Calls tracks all requests in arrival order.
	Calls []Request
}

// NewMockCompleter creates a mock that returns a fixed response text.
func NewMockCompleter(response string) *MockCompleter {
	return &MockCompleter{responses: []string{response}}
}

// WithResponses configures sequential response texts. Cycles back to the
// beginning after exhausting the list.
func (m *MockCompleter) WithResponses(responses ...string) *MockCompleter {
	m.responses = responses
	return m
}

// WithErrors scripts per-call outcomes: call i returns errs[i] when that
// entry is non-nil. Calls beyond the script, and nil entries, return the
// next response, so a single-entry script means "fail once, then succeed".
func (m *MockCompleter) WithErrors(errs ...error) *MockCompleter {
	m.errs = errs
	return m
}

// WithCompleteFunc sets a custom handler, taking precedence over scripted
// responses and errors.
func (m *MockCompleter) WithCompleteFunc(fn func(ctx context.Context, req Request) (*Response, error)) *MockCompleter {
	m.completeFunc = fn
	return m
}

// Complete implements Completer.
func (m *MockCompleter) Complete(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}

	idx := m.callIdx
	m.callIdx++
	if idx < len(m.errs) && m.errs[idx] != nil {
		return nil, m.errs[idx]
	}

	response := ""
	if len(m.responses) > 0 {
		response = m.responses[m.responseIdx%len(m.responses)]
		m.responseIdx++
	}

	return &Response{
		Model:   req.Model,
		Choices: []Choice{{Message: Message{Role: "assistant", Content: response}, FinishReason: "stop"}},
		Usage: Usage{
			PromptTokens:     10,
			CompletionTokens: len(response) / 4,
			TotalTokens:      10 + len(response)/4,
		},
	}, nil
}

// CallCount returns the number of Complete calls received.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, or nil if none were made.
func (m *MockCompleter) LastCall() *Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return nil
	}
	req := m.Calls[len(m.Calls)-1]
	return &req
}

// Reset clears call history and scripting position.
func (m *MockCompleter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = nil
	m.responseIdx = 0
	m.callIdx = 0
}
