// Package lexicon provides the positive and negative word sets used for
// scoring. Sets are normalized (trimmed, lowercased) and immutable once built.
package lexicon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spacesedan/sentilex/internal/lexicon/data"
)

// ErrResourceNotFound is returned when word list data is missing.
var ErrResourceNotFound = errors.New("lexicon resource not found")

// Lexicon is a read-only pair of word sets. It is safe for concurrent use.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// Loader produces a Lexicon. Analyzers call it once at construction.
type Loader func() (*Lexicon, error)

// New builds a Lexicon from explicit word lists, normalizing each entry.
// Blank entries are ignored.
func New(positive, negative []string) *Lexicon {
	return &Lexicon{
		positive: toSet(positive),
		negative: toSet(negative),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

func (l *Lexicon) IsPositive(word string) bool {
	_, ok := l.positive[word]
	return ok
}

func (l *Lexicon) IsNegative(word string) bool {
	_, ok := l.negative[word]
	return ok
}

// Len returns the number of positive and negative words.
func (l *Lexicon) Len() (positive, negative int) {
	return len(l.positive), len(l.negative)
}

// LoadDefault loads the word lists embedded in the binary.
func LoadDefault() (*Lexicon, error) {
	return loadFS(data.Files, data.POSITIVE_WORDS_FILE, data.NEGATIVE_WORDS_FILE)
}

// LoadFiles loads word lists from two files on disk.
func LoadFiles(positivePath, negativePath string) (*Lexicon, error) {
	pos, err := readWordList(os.ReadFile, positivePath)
	if err != nil {
		return nil, err
	}
	neg, err := readWordList(os.ReadFile, negativePath)
	if err != nil {
		return nil, err
	}
	return &Lexicon{positive: toSet(pos), negative: toSet(neg)}, nil
}

// FilesLoader returns a Loader bound to LoadFiles.
func FilesLoader(positivePath, negativePath string) Loader {
	return func() (*Lexicon, error) {
		return LoadFiles(positivePath, negativePath)
	}
}

func loadFS(fsys fs.FS, positiveName, negativeName string) (*Lexicon, error) {
	readFile := func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	}

	pos, err := readWordList(readFile, positiveName)
	if err != nil {
		return nil, err
	}
	neg, err := readWordList(readFile, negativeName)
	if err != nil {
		return nil, err
	}
	return &Lexicon{positive: toSet(pos), negative: toSet(neg)}, nil
}

func readWordList(readFile func(string) ([]byte, error), name string) ([]string, error) {
	raw, err := readFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, fmt.Errorf("failed to read word list %s: %w", name, err)
	}
	return ParseWordList(string(raw)), nil
}

// ParseWordList returns the trimmed, lowercased words of raw, one per line,
// skipping blank lines and lines starting with '#'.
func ParseWordList(raw string) []string {
	var words []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}
