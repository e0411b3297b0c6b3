// Package input turns raw text, a single file or a directory of *.txt files
// into documents ready for analysis.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/spacesedan/sentilex/internal/models"
)

const (
	TEXT_DOC_ID   = "input_text"
	TEXT_FILE_EXT = ".txt"
)

var (
	ErrNotFound     = errors.New("file not found")
	ErrNotDirectory = errors.New("not a directory")
)

// FromText wraps a raw string as a single document.
func FromText(text string) []models.Document {
	return []models.Document{{ID: TEXT_DOC_ID, Text: text}}
}

// FromFile reads one file as a document keyed by its base name.
func FromFile(path string) ([]models.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}

	return []models.Document{{ID: filepath.Base(path), Text: text}}, nil
}

// FromDir reads every *.txt file directly inside dir, sorted by name. Any
// unreadable file fails the whole load.
func FromDir(dir string) ([]models.Document, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != TEXT_FILE_EXT {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	docs := make([]models.Document, 0, len(names))
	for _, name := range names {
		text, err := ReadText(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		docs = append(docs, models.Document{ID: name, Text: text})
	}

	slog.Info("[Input] Loaded directory",
		slog.String("dir", dir),
		slog.Int("documents", len(docs)))

	return docs, nil
}

// ReadText reads path as UTF-8, falling back to Latin-1 when the bytes are
// not valid UTF-8.
func ReadText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return decode(path, raw)
}

func decode(path string, raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	slog.Warn("[Input] File is not valid UTF-8, decoding as Latin-1",
		slog.String("path", path))

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return string(decoded), nil
}
