package models

import (
	"encoding/json"
	"fmt"
)

// Sentiment is the polarity label attached to sentences and documents.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

func (s Sentiment) String() string {
	return string(s)
}

type SentenceResult struct {
	Sentence      string    `json:"sentence"`
	PositiveCount int       `json:"positive_count"`
	NegativeCount int       `json:"negative_count"`
	Sentiment     Sentiment `json:"sentiment"`
	Score         float64   `json:"score"`
}

type DocumentResult struct {
	DocID            string           `json:"doc_id"`
	Text             string           `json:"text"`
	Sentences        []SentenceResult `json:"sentences"`
	OverallSentiment Sentiment        `json:"overall_sentiment"`
	OverallScore     float64          `json:"overall_score"`
	PositiveTotal    int              `json:"positive_total"`
	NegativeTotal    int              `json:"negative_total"`
	TokenCount       int              `json:"token_count"`
	UniqueTokenCount int              `json:"unique_token_count"`
	TopPositiveWords []WordCount      `json:"top_positive_words"`
	TopNegativeWords []WordCount      `json:"top_negative_words"`

	// VaderCompound is only set when the VADER reference score was requested.
	VaderCompound *float64 `json:"vader_compound,omitempty"`
}

// WordCount is a (word, count) pair. It is encoded as a two element JSON
// array, e.g. ["love", 3].
type WordCount struct {
	Word  string
	Count int
}

func (wc WordCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{wc.Word, wc.Count})
}

func (wc *WordCount) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("word count: expected 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &wc.Word); err != nil {
		return fmt.Errorf("word count: word: %w", err)
	}
	if err := json.Unmarshal(pair[1], &wc.Count); err != nil {
		return fmt.Errorf("word count: count: %w", err)
	}
	return nil
}
