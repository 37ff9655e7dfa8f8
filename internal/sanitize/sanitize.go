// Package sanitize prepares untrusted free text for inclusion in LLM prompts.
package sanitize

import (
	"strings"
	"unicode"
)

// Length caps applied to user-supplied fields before prompting.
const (
	MaxAnswerRunes    = 500
	MaxLabelRunes     = 50
	MaxLongLabelRunes = 100
	MaxSummaryRunes   = 2000
)

// ForAI strips control characters other than newlines, trims surrounding
// whitespace and truncates the result to at most maxRunes runes. A
// non-positive maxRunes disables truncation.
func ForAI(s string, maxRunes int) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimSpace(cleaned)

	if maxRunes <= 0 {
		return cleaned
	}
	runes := []rune(cleaned)
	if len(runes) <= maxRunes {
		return cleaned
	}
	return string(runes[:maxRunes])
}

// Satisfaction clamps a 1-10 self-rating; zero means unanswered and maps
// to the neutral midpoint.
func Satisfaction(v float64) float64 {
	if v == 0 || v != v {
		return 5
	}
	return max(1, min(v, 10))
}
