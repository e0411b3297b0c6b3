// Package data embeds the default sentiment word lists.
package data

import "embed"

// Files holds positive_words.txt and negative_words.txt.
//
//go:embed *.txt
var Files embed.FS

const (
	POSITIVE_WORDS_FILE = "positive_words.txt"
	NEGATIVE_WORDS_FILE = "negative_words.txt"
)
