package service

import "strings"

// SpamFilter classifies inbound text by substring match against a fixed
// pattern list. A single match marks the whole message as spam; legitimate
// text containing a pattern is an accepted false positive.
type SpamFilter struct {
	patterns []string
}

// defaultSpamPatterns are matched case-insensitively against message text
var defaultSpamPatterns = []string{
	"http",
	"https",
	"www.",
	".net",
	".xyz",
	".click",
	".ru",
	"free",
	"claim",
	"airdrop",
	"eth",
}

// NewSpamFilter creates a filter with the default pattern list
func NewSpamFilter() *SpamFilter {
	return &SpamFilter{patterns: defaultSpamPatterns}
}

// IsSpam reports whether text contains any spam pattern
func (f *SpamFilter) IsSpam(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range f.patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
