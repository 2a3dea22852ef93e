package enhance

// Style selects how aggressively the transcript is rewritten.
type Style string

// Available enhancement styles.
const (
	StyleConcise  Style = "concise"
	StyleBalanced Style = "balanced"
	StyleDetailed Style = "detailed"
)

// Styles returns the available styles in display order.
func Styles() []Style {
	return []Style{StyleConcise, StyleBalanced, StyleDetailed}
}

// Normalize returns the style itself when known, StyleBalanced otherwise.
// Unknown styles fall back rather than fail: a stale preference file must
// not block enhancement.
func (s Style) Normalize() Style {
	switch s {
	case StyleConcise, StyleBalanced, StyleDetailed:
		return s
	default:
		return StyleBalanced
	}
}

// Verbosity maps the style to the endpoint's verbosity levels, for models
// that support the control.
func (s Style) Verbosity() string {
	switch s.Normalize() {
	case StyleConcise:
		return "low"
	case StyleDetailed:
		return "high"
	default:
		return "medium"
	}
}

// SystemPrompt returns the fixed system message for the style. Voice
// transcripts tend to arrive over-punctuated into sentence fragments, so
// every style instructs the model to merge fragments before rewriting.
func (s Style) SystemPrompt() string {
	switch s.Normalize() {
	case StyleConcise:
		return promptConcise
	case StyleDetailed:
		return promptDetailed
	default:
		return promptBalanced
	}
}

const promptConcise = `You are a prompt optimization expert. The following voice transcript may contain over-punctuated sentence fragments due to transcription errors.

First, intelligently merge any fragments that should be part of the same sentence. Then rewrite as a clear, concise prompt for an AI assistant.

Remove filler words, fix grammar, merge fragments naturally, and structure it for maximum clarity while preserving the user's intent. Keep it brief but complete.

Example input: "So I need. A Python function. That reads. CSV files."
Example output: "Create a Python function that reads CSV files."

Important: Preserve abbreviations (Dr., U.S.), decimals (3.14), times (3:30 p.m.), and legitimate list structures.`

const promptBalanced = `You are a prompt optimization expert. This voice transcript may contain fragmented sentences due to transcription punctuation errors.

Your task:
1. Identify and merge sentence fragments that belong together
2. Fix grammar and remove filler words
3. Add helpful context and structure
4. Clarify ambiguous requests
5. Preserve the user's intent and tone

Make it clear and effective without being overly verbose. Focus on creating a cohesive, well-structured prompt from potentially fragmented input.

Note: Respect abbreviations, decimals, URLs, version numbers, and legitimate list boundaries.`

const promptDetailed = `You are a prompt optimization expert. The input transcript likely contains over-punctuated sentence fragments due to voice transcription errors.

Process this transcript by:
1. Intelligently merging sentence fragments into coherent thoughts
2. Fixing all grammar and transcription errors
3. Adding relevant context and background
4. Breaking down complex requests into clear steps
5. Suggesting additional details that might be helpful
6. Structuring for maximum AI comprehension

Be thorough but maintain focus on the user's goal. Transform fragmented input into a comprehensive, well-structured prompt.

Important: Preserve technical terms, abbreviations (Ph.D., e.g.), decimals, times, URLs, and maintain legitimate list structures.`
