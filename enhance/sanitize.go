package enhance

import "regexp"

// credentialPatterns match credential material that third-party error text
// has been observed to echo back. Applied before error text reaches logs or
// the UI.
var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api[_-]?key[\s=:]+)[\w-]{20,}`),
	regexp.MustCompile(`(?i)(token[\s=:]+)[\w-]{20,}`),
	regexp.MustCompile(`(?i)(bearer\s+)[\w-]{20,}`),
	regexp.MustCompile(`(?i)(sk-)[\w-]{20,}`),
	regexp.MustCompile(`(?i)(secret[\s=:]+)[\w-]{20,}`),
	regexp.MustCompile(`(?i)(password[\s=:]+)\S+`),
}

// SanitizeError masks API keys, tokens, and other credentials in error text.
// The prefix that identified the credential is kept so the message stays
// diagnosable.
func SanitizeError(message string) string {
	for _, pattern := range credentialPatterns {
		message = pattern.ReplaceAllString(message, "${1}[REDACTED]")
	}
	return message
}
