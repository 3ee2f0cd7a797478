package util

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Fold lower-cases and trims a string for comparison. Stored product
// names keep their original casing; folding happens at match time only.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ratio is a normalized edit similarity scaled 0-100:
// 100 * (1 - levenshtein(a, b) / max(len(a), len(b))), rounded.
// Both inputs are compared as given; callers fold case first.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	score := 100 * (1 - float64(dist)/float64(longest))
	if score < 0 {
		return 0
	}
	return int(math.Round(score))
}
