package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spacesedan/sentilex/internal/models"
)

var CSV_HEADER = []string{
	"doc_id",
	"overall_sentiment",
	"overall_score",
	"positive_total",
	"negative_total",
	"token_count",
	"unique_token_count",
}

// WriteCSV writes one summary row per document. Scores use three decimals.
func WriteCSV(w io.Writer, docs []models.DocumentResult) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(CSV_HEADER); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, doc := range docs {
		row := []string{
			doc.DocID,
			doc.OverallSentiment.String(),
			strconv.FormatFloat(doc.OverallScore, 'f', 3, 64),
			strconv.Itoa(doc.PositiveTotal),
			strconv.Itoa(doc.NegativeTotal),
			strconv.Itoa(doc.TokenCount),
			strconv.Itoa(doc.UniqueTokenCount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", doc.DocID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV report: %w", err)
	}
	return nil
}

func WriteCSVFile(path string, docs []models.DocumentResult) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteCSV(w, docs)
	})
}
