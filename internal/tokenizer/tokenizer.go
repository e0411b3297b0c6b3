// Package tokenizer splits raw text into sentences and lowercase word tokens.
//
// Sentence splitting is deliberately naive: any '.', '!' or '?' followed by
// whitespace ends a sentence, so abbreviations such as "Mr." split too.
package tokenizer

import (
	"iter"
	"strings"
	"unicode"
)

// SplitSentences splits text on whitespace that follows '.', '!' or '?'.
// Sentences are trimmed and empty fragments are dropped.
func SplitSentences(text string) []string {
	text = strings.TrimFunc(text, isSpace)
	if text == "" {
		return []string{}
	}

	sentences := make([]string, 0, 8)
	start := 0
	var prev rune
	for i, r := range text {
		if isSpace(r) && isSentenceEnd(prev) {
			sentences = appendTrimmed(sentences, text[start:i])
			start = i
		}
		prev = r
	}
	sentences = appendTrimmed(sentences, text[start:])

	return sentences
}

// isSpace also counts the ASCII information separators U+001C..U+001F
// as sentence-breaking whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= 0x1c && r <= 0x1f
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func appendTrimmed(sentences []string, s string) []string {
	if s = strings.TrimFunc(s, isSpace); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Tokenize lowercases text and returns its maximal runs of ASCII letters and
// apostrophes. Order is preserved and duplicates are kept.
func Tokenize(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

func isSeparator(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '\'')
}

// IterTokens yields the tokens of every text in order. The sequence is lazy
// and tokenizes one text at a time.
func IterTokens(texts []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, text := range texts {
			for _, token := range Tokenize(text) {
				if !yield(token) {
					return
				}
			}
		}
	}
}
