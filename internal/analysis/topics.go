package analysis

import (
	"sort"
	"strings"
	"unicode"
)

// TermCount is one entry of a term-frequency ranking.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

//minimal english stopword list; enough to keep rankings readable
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "that": {}, "with": {}, "from": {},
	"this": {}, "will": {}, "has": {}, "have": {}, "are": {}, "was": {},
	"were": {}, "its": {}, "their": {}, "they": {}, "about": {}, "after": {},
	"into": {}, "over": {}, "more": {}, "new": {}, "than": {}, "also": {},
	"but": {}, "not": {}, "all": {}, "said": {}, "says": {}, "had": {},
	"who": {}, "which": {}, "would": {}, "been": {}, "his": {}, "her": {},
	"one": {}, "two": {}, "out": {}, "when": {}, "what": {}, "how": {},
	"can": {}, "could": {}, "our": {}, "your": {}, "you": {}, "them": {},
}

// TopTerms ranks word frequency across the given texts as pseudo-topics.
func TopTerms(texts []string, n int) []TermCount {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, word := range tokenize(text) {
			counts[word]++
		}
	}

	ranked := make([]TermCount, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, TermCount{Term: term, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Term < ranked[j].Term
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// tokenize lowercases, splits on non-letter-digit runes and drops short
// words and stopwords.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 3 {
			continue
		}
		if _, skip := stopwords[f]; skip {
			continue
		}
		words = append(words, f)
	}
	return words
}
