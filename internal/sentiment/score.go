// Package sentiment counts lexicon matches and turns positive/negative counts
// into a label and a normalized score.
//
// Scoring is a plain count: there is no negation, intensifier or context
// handling, so "not good" scores as positive.
package sentiment

import "github.com/spacesedan/sentilex/internal/models"

// Lexicon is the membership test the scorer needs. *lexicon.Lexicon
// satisfies it.
type Lexicon interface {
	IsPositive(word string) bool
	IsNegative(word string) bool
}

// ScoreTokens counts positive and negative tokens and classifies the counts.
// Repeated tokens count every time they appear.
func ScoreTokens(tokens []string, lex Lexicon) (pos, neg int, label models.Sentiment, score float64) {
	for _, token := range tokens {
		if lex.IsPositive(token) {
			pos++
		}
		if lex.IsNegative(token) {
			neg++
		}
	}

	label, score = Classify(pos, neg)
	return pos, neg, label, score
}

// Classify labels a pair of counts and computes (pos-neg)/max(1, pos+neg).
// Ties, including 0/0, are neutral.
func Classify(pos, neg int) (models.Sentiment, float64) {
	var label models.Sentiment
	switch {
	case pos > neg:
		label = models.Positive
	case neg > pos:
		label = models.Negative
	default:
		label = models.Neutral
	}

	denom := max(1, pos+neg)
	return label, float64(pos-neg) / float64(denom)
}
