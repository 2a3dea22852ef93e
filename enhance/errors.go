package enhance

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned before any network call is attempted.
var (
	// ErrEmptyTranscript indicates a blank input; there is nothing to enhance.
	ErrEmptyTranscript = errors.New("empty transcript")

	// ErrTranscriptTooLong indicates the input exceeds the pre-call token
	// budget for enhancement.
	ErrTranscriptTooLong = errors.New("transcript too long for enhancement")
)

// CandidateFailure records the last error observed for one fallback
// candidate, for diagnostics.
type CandidateFailure struct {
	ModelKey string
	Err      error
}

// FallbackError is returned after every candidate in the resolved chain has
// failed. It aggregates the last error per candidate. Transcript content is
// never included: failures must stay reportable without leaking dictation.
type FallbackError struct {
	Failures []CandidateFailure
}

// Error implements the error interface.
func (e *FallbackError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "enhancement failed: all %d model(s) exhausted", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "; %s: %v", f.ModelKey, SanitizeError(f.Err.Error()))
	}
	return b.String()
}

// Last returns the most recent candidate failure, or nil when empty.
func (e *FallbackError) Last() *CandidateFailure {
	if len(e.Failures) == 0 {
		return nil
	}
	return &e.Failures[len(e.Failures)-1]
}
