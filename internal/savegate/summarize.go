// ABOUTME: Summary truncation for saved route descriptions
// ABOUTME: Cuts at the first sentence end within the length budget

package savegate

import (
	"strings"
	"time"
	"unicode/utf8"
)

// maxSummaryLen is the longest summary stored with a record, in runes.
const maxSummaryLen = 110

// sentenceEnd is the token a route description's first sentence ends with.
const sentenceEnd = "다."

// today returns the current calendar date as stored in records.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Summarize derives the stored summary from a long-form description. The cut
// lands just after the first sentence when that fits the budget; otherwise
// the text is hard-truncated with an ellipsis.
func Summarize(desc string) string {
	if idx := strings.Index(desc, sentenceEnd); idx >= 0 {
		cut := idx + len(sentenceEnd)
		if utf8.RuneCountInString(desc[:cut]) <= maxSummaryLen {
			return desc[:cut]
		}
	}

	runes := []rune(desc)
	if len(runes) <= maxSummaryLen {
		return desc
	}
	return string(runes[:maxSummaryLen]) + "…"
}
