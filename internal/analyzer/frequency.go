package analyzer

import (
	"iter"
	"slices"

	"github.com/spacesedan/sentilex/internal/models"
)

// frequencyTable counts words and remembers the order they were first seen
// in, which is the tie-break order for equal counts.
type frequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

func countTokens(tokens iter.Seq[string]) *frequencyTable {
	ft := &frequencyTable{counts: make(map[string]int)}
	for token := range tokens {
		if _, seen := ft.counts[token]; !seen {
			ft.order = append(ft.order, token)
		}
		ft.counts[token]++
		ft.total++
	}
	return ft
}

func (ft *frequencyTable) unique() int {
	return len(ft.order)
}

// top returns the words accepted by keep, sorted by count descending, cut to
// at most n entries.
func (ft *frequencyTable) top(keep func(string) bool, n int) []models.WordCount {
	words := make([]models.WordCount, 0)
	for _, w := range ft.order {
		if keep(w) {
			words = append(words, models.WordCount{Word: w, Count: ft.counts[w]})
		}
	}

	slices.SortStableFunc(words, func(a, b models.WordCount) int {
		return b.Count - a.Count
	})

	if n < 0 {
		n = 0
	}
	if len(words) > n {
		words = words[:n]
	}
	return words
}
