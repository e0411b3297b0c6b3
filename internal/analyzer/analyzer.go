// Package analyzer scores documents sentence by sentence against a lexicon
// and aggregates the results into a DocumentResult.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/spacesedan/sentilex/internal/lexicon"
	"github.com/spacesedan/sentilex/internal/models"
	"github.com/spacesedan/sentilex/internal/sentiment"
	"github.com/spacesedan/sentilex/internal/tokenizer"
)

const (
	defaultTopN     = 10
	DEFAULT_WORKERS = 4
)

// Analyzer holds the lexicon it was built with for its whole lifetime.
// It keeps no per-document state and is safe for concurrent use.
type Analyzer struct {
	lexicon  *lexicon.Lexicon
	workers  int
	vader    *sentiment.VaderScorer
	observer func(models.DocumentResult)
}

type Option func(*Analyzer)

// WithWorkers bounds how many documents BatchAnalyze scores at once.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithVader attaches a VADER compound score to every document result.
func WithVader(v *sentiment.VaderScorer) Option {
	return func(a *Analyzer) {
		a.vader = v
	}
}

// WithObserver registers fn to be called after each document of a batch is
// analyzed. Calls may come from several goroutines.
func WithObserver(fn func(models.DocumentResult)) Option {
	return func(a *Analyzer) {
		a.observer = fn
	}
}

func New(lex *lexicon.Lexicon, opts ...Option) *Analyzer {
	a := &Analyzer{
		lexicon: lex,
		workers: DEFAULT_WORKERS,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewFromLoader calls load once and builds an Analyzer around the result.
func NewFromLoader(load lexicon.Loader, opts ...Option) (*Analyzer, error) {
	lex, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}

	pos, neg := lex.Len()
	slog.Debug("[Analyzer] Lexicon loaded",
		slog.Int("positive_words", pos),
		slog.Int("negative_words", neg))

	return New(lex, opts...), nil
}

func (a *Analyzer) AnalyzeSentence(sentence string) models.SentenceResult {
	tokens := tokenizer.Tokenize(sentence)
	pos, neg, label, score := sentiment.ScoreTokens(tokens, a.lexicon)

	return models.SentenceResult{
		Sentence:      strings.TrimSpace(sentence),
		PositiveCount: pos,
		NegativeCount: neg,
		Sentiment:     label,
		Score:         score,
	}
}

// AnalyzeDocument scores each sentence of text, classifies the summed counts
// and ranks the lexicon words of the whole text by frequency.
func (a *Analyzer) AnalyzeDocument(docID, text string, topN int) models.DocumentResult {
	sentences := tokenizer.SplitSentences(text)
	results := make([]models.SentenceResult, 0, len(sentences))

	var posTotal, negTotal int
	for _, s := range sentences {
		res := a.AnalyzeSentence(s)
		posTotal += res.PositiveCount
		negTotal += res.NegativeCount
		results = append(results, res)
	}

	overall, score := sentiment.Classify(posTotal, negTotal)

	freqs := countTokens(tokenizer.IterTokens([]string{text}))

	doc := models.DocumentResult{
		DocID:            docID,
		Text:             text,
		Sentences:        results,
		OverallSentiment: overall,
		OverallScore:     score,
		PositiveTotal:    posTotal,
		NegativeTotal:    negTotal,
		TokenCount:       freqs.total,
		UniqueTokenCount: freqs.unique(),
		TopPositiveWords: freqs.top(a.lexicon.IsPositive, topN),
		TopNegativeWords: freqs.top(a.lexicon.IsNegative, topN),
	}

	if a.vader != nil {
		compound := a.vader.Compound(text)
		doc.VaderCompound = &compound
	}

	return doc
}

// BatchAnalyze analyzes every document and returns the results in input
// order. Documents are spread over the worker pool; cancelling ctx stops
// scheduling new documents.
func (a *Analyzer) BatchAnalyze(ctx context.Context, docs []models.Document, topN int) ([]models.DocumentResult, error) {
	results := make([]models.DocumentResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = a.AnalyzeDocument(doc.ID, doc.Text, topN)

			if a.observer != nil {
				a.observer(results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Info("[Analyzer] Batch analyzed",
		slog.Int("documents", len(docs)),
		slog.Int("workers", a.workers))

	return results, nil
}
