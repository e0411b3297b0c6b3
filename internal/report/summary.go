// Package report renders document results for people (console summary) and
// for other tools (JSON and CSV exports).
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spacesedan/sentilex/internal/models"
)

const SEPARATOR_WIDTH = 72

// WriteSummary prints a human readable block per document.
func WriteSummary(w io.Writer, docs []models.DocumentResult) error {
	for _, doc := range docs {
		if err := writeDocSummary(w, doc); err != nil {
			return fmt.Errorf("failed to write summary for %s: %w", doc.DocID, err)
		}
	}
	return nil
}

func writeDocSummary(w io.Writer, doc models.DocumentResult) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", SEPARATOR_WIDTH) + "\n")
	fmt.Fprintf(&b, "Document: %s\n", doc.DocID)
	fmt.Fprintf(&b, "Overall sentiment: %s (score=%.3f)\n", doc.OverallSentiment, doc.OverallScore)
	fmt.Fprintf(&b, "Tokens: %d  Unique: %d\n", doc.TokenCount, doc.UniqueTokenCount)
	fmt.Fprintf(&b, "Positive words: %d  Negative words: %d\n", doc.PositiveTotal, doc.NegativeTotal)
	if doc.VaderCompound != nil {
		fmt.Fprintf(&b, "VADER compound: %.3f\n", *doc.VaderCompound)
	}
	b.WriteString(strings.Repeat("-", SEPARATOR_WIDTH) + "\n")

	writeWordCounts(&b, "Top positive words:", doc.TopPositiveWords)
	writeWordCounts(&b, "Top negative words:", doc.TopNegativeWords)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeWordCounts(b *strings.Builder, title string, words []models.WordCount) {
	b.WriteString(title + "\n")
	if len(words) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, wc := range words {
		fmt.Fprintf(b, "  %-15s %d\n", wc.Word, wc.Count)
	}
}
