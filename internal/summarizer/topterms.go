package summarizer

import (
	"sort"

	"brandradar/internal/domain"
)

const (
	// DefaultTopWords is used when a caller asks for a non-positive count.
	DefaultTopWords = 40
	minTermLength   = 3
)

// TopTerms returns up to n of the most frequent non-stopword terms in text.
// Equal counts keep first-occurrence order.
func TopTerms(text string, n int) []domain.TopWordEntry {
	if n <= 0 {
		n = DefaultTopWords
	}
	freq := map[string]int{}
	var order []string
	for _, tok := range contentTerms(text) {
		if _, ok := freq[tok]; !ok {
			order = append(order, tok)
		}
		freq[tok]++
	}
	entries := make([]domain.TopWordEntry, len(order))
	for i, w := range order {
		entries[i] = domain.TopWordEntry{Word: w, Count: freq[w]}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
