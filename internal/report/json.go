package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spacesedan/sentilex/internal/models"
)

// WriteJSON writes docs as a JSON array indented with two spaces.
func WriteJSON(w io.Writer, docs []models.DocumentResult) error {
	if docs == nil {
		docs = []models.DocumentResult{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

func WriteJSONFile(path string, docs []models.DocumentResult) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteJSON(w, docs)
	})
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
