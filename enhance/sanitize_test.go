package enhance

import (
	"strings"
	"testing"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		redact string // secret that must not survive
	}{
		{
			"sk prefix",
			"401 Incorrect API key provided: sk-abcdefghijklmnopqrstuvwx",
			"abcdefghijklmnopqrstuvwx",
		},
		{
			"api_key assignment",
			"config error: api_key=AKIAIOSFODNN7EXAMPLEKEY0 rejected",
			"AKIAIOSFODNN7EXAMPLEKEY0",
		},
		{
			"bearer header",
			"request failed: Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6",
			"eyJhbGciOiJIUzI1NiIsInR5cCI6",
		},
		{
			"password",
			"auth: password: hunter2!",
			"hunter2!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeError(tt.in)
			if strings.Contains(got, tt.redact) {
				t.Errorf("secret survived sanitization: %q", got)
			}
			if !strings.Contains(got, "[REDACTED]") {
				t.Errorf("no redaction marker in %q", got)
			}
		})
	}
}

func TestSanitizeError_LeavesCleanTextAlone(t *testing.T) {
	in := "Unsupported parameter: 'max_tokens'. Use 'max_completion_tokens' instead."
	if got := SanitizeError(in); got != in {
		t.Errorf("clean text altered: %q", got)
	}
}
