package tokens

import (
	"strings"
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4.0

// Counter estimates token counts for text.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// EstimatingCounter uses a character-to-token ratio for estimation.
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	// Default is 4, which works well for English text.
	CharsPerToken float64
}

// NewEstimatingCounter creates a token counter with default settings.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{CharsPerToken: DefaultCharsPerToken}
}

// Count estimates the number of tokens in the given text.
// Actual token counts vary by tokenizer; this is a guard, not an invoice.
func (c *EstimatingCounter) Count(text string) int {
	ratio := c.CharsPerToken
	if ratio <= 0 {
		ratio = DefaultCharsPerToken
	}
	// Count runes rather than bytes for better accuracy on non-ASCII input.
	return int(float64(utf8.RuneCountInString(text))/ratio + 0.5)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *EstimatingCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// Estimate is a convenience function using the default estimator.
func Estimate(text string) int {
	return NewEstimatingCounter().Count(text)
}

// FragmentAwareCount estimates tokens for a voice transcript, adding
// overhead proportional to how fragmented the input looks. Merging
// over-punctuated fragments costs the model extra work:
//
//	> 10 sentence boundaries: +20%
//	>  5 sentence boundaries: +10%
func FragmentAwareCount(text string) int {
	base := Estimate(text)

	boundaries := strings.Count(text, ". ") +
		strings.Count(text, "? ") +
		strings.Count(text, "! ")

	switch {
	case boundaries > 10:
		return base + base*20/100
	case boundaries > 5:
		return base + base*10/100
	default:
		return base
	}
}
