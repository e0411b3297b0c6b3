package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"
)

// VaderScorer computes the VADER compound polarity of a text. It is a
// reference score reported next to the lexicon score and never changes the
// lexicon label.
type VaderScorer struct {
	mu       sync.Mutex
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the normalized compound score in [-1, 1].
func (v *VaderScorer) Compound(text string) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.analyzer.PolarityScores(text).Compound
}
