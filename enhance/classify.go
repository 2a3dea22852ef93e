package enhance

import (
	"strings"

	"github.com/randalmurphal/voicekit/model"
	"github.com/randalmurphal/voicekit/openai"
)

// failureKind is the classification of one failed call, driving the retry
// decision for the current candidate.
type failureKind int

const (
	// failureOther covers network errors, timeouts, auth and rate-limit
	// rejections, and exhausted retries: abandon the candidate.
	failureOther failureKind = iota

	// failureParamMismatch means the server rejected the configured
	// token-limit field name and its message names the alternate:
	// migrate once.
	failureParamMismatch

	// failureConstraint means the server rejected a value (temperature)
	// despite clamping: force the safe value once.
	failureConstraint
)

// classification is the outcome of inspecting one call error.
type classification struct {
	kind failureKind

	// altParam is the token-limit field name to migrate to, set for
	// failureParamMismatch.
	altParam string
}

// classify inspects a call error against the token-limit field the request
// used. Only structured API errors are candidates for typed retries; every
// transport-level failure is failureOther by construction.
func classify(err error, sentTokenParam string) classification {
	apiErr, ok := openai.AsAPIError(err)
	if !ok {
		return classification{kind: failureOther}
	}

	text := strings.ToLower(apiErr.Message + " " + apiErr.Param)
	alt := model.AlternateTokenParam(sentTokenParam)

	// A parameter-name mismatch references both the field we sent and the
	// one the server wants. Check the alternate first: "max_tokens" is a
	// substring of "max_completion_tokens", so naive contains-both matching
	// would misfire on messages that only mention the longer name.
	if mentionsParam(text, alt) && mentionsParam(text, sentTokenParam) {
		return classification{kind: failureParamMismatch, altParam: alt}
	}

	if strings.Contains(text, "temperature") {
		return classification{kind: failureConstraint}
	}

	return classification{kind: failureOther}
}

// mentionsParam reports whether text references the field name as a whole
// token, not as a substring of the other known field name.
func mentionsParam(text, param string) bool {
	if param == model.ParamMaxTokens {
		// Strip the longer name so embedded occurrences don't count.
		text = strings.ReplaceAll(text, model.ParamMaxCompletionTokens, "")
	}
	return strings.Contains(text, param)
}
