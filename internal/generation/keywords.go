package generation

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultKeywordCount is the number of keywords extracted when the caller
// does not ask for a specific count.
const DefaultKeywordCount = 8

// minKeywordLength filters out tokens too short to be meaningful keywords.
const minKeywordLength = 3

// wordPattern matches maximal runs of letters and hyphens starting with a
// letter. The text is lower-cased before matching, so the lower-case class
// is sufficient.
var wordPattern = regexp.MustCompile(`[a-z][a-z-]+`)

// stopWords is the fixed set of common English function words excluded
// from keyword extraction.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"if": {}, "then": {}, "else": {}, "for": {}, "to": {}, "of": {},
	"in": {}, "on": {}, "at": {}, "by": {}, "with": {}, "from": {},
	"into": {}, "over": {}, "after": {}, "before": {}, "during": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
}

// TopKeywords extracts up to k distinct lower-case keywords from text,
// ranked by descending frequency. Ties are broken by first-seen order in
// the text, which keeps the ranking stable and testable. Stop-words and
// tokens shorter than three characters are excluded. The result may be
// shorter than k, or empty, when the text lacks qualifying words.
func TopKeywords(text string, k int) []string {
	if k <= 0 {
		k = DefaultKeywordCount
	}

	counts := make(map[string]int)
	var order []string

	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := stopWords[word]; stop || len(word) < minKeywordLength {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	// Stable sort preserves first-seen order among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > k {
		order = order[:k]
	}
	return order
}
