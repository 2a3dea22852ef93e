// Package tokens estimates token counts for pre-call length guards.
//
// Estimates use a character-to-token ratio (~4 characters per token for
// English). Voice transcripts additionally pay a fragmentation surcharge:
// heavily over-punctuated input costs the enhancement model extra tokens to
// merge back together, so FragmentAwareCount inflates the estimate with the
// observed sentence-boundary density.
//
//	if tokens.FragmentAwareCount(transcript) > 3000 {
//	    // too long to enhance
//	}
package tokens
