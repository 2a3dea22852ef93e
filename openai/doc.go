// Package openai is the outbound boundary to the chat-completions endpoint.
//
// It deliberately models only the subset of the API surface the adapter has
// to react to: the two known token-limit field names, the optional
// temperature/verbosity/reasoning-effort controls, response text with token
// usage, and the error shapes that drive migration and fallback decisions.
//
// # Completing
//
//	client := openai.NewHTTPCompleter(os.Getenv("OPENAI_API_KEY"))
//	resp, err := client.Complete(ctx, openai.Request{
//	    Model:           "gpt-4o-mini",
//	    Messages:        []openai.Message{{Role: openai.RoleUser, Content: "hi"}},
//	    TokenLimitParam: "max_tokens",
//	    TokenLimit:      150,
//	})
//
// The request marshals its token limit under exactly the field name named by
// TokenLimitParam, never both.
//
// # Testing
//
// MockCompleter scripts responses and errors and records every request it
// receives:
//
//	mock := openai.NewMockCompleter("polished text")
//	mock.WithErrors(&openai.APIError{StatusCode: 400, Message: "..."})
package openai
