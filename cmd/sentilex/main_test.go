package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentilex/config"
	"github.com/spacesedan/sentilex/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:   "test",
		LogLevel: "error",
		TopN:     10,
		Workers:  2,
	}
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), append([]string{"sentilex"}, args...), testConfig(), UI{Out: &out, Err: &errOut})
	return code, out.String(), errOut.String()
}

func TestRun_RequiresExactlyOneSource(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", nil},
		{"text and file", []string{"--text", "hi", "--file", "a.txt"}},
		{"all three", []string{"-t", "hi", "-f", "a.txt", "-d", "."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			assert.Equal(t, EXIT_USAGE, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "exactly one of --text, --file, or --dir")
		})
	}
}

func TestRun_Text(t *testing.T) {
	code, out, _ := runCLI(t, "--text", "I love this. It is awesome and amazing!")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Document: input_text\n")
	assert.Contains(t, out, "Overall sentiment: positive (score=1.000)\n")
	assert.Contains(t, out, "Tokens: 8  Unique: 8\n")
	assert.Contains(t, out, "Positive words: 3  Negative words: 0\n")
	assert.Contains(t, out, "Top negative words:\n  (none)\n")
	assert.NotContains(t, out, "VADER")
}

func TestRun_EmptyTextIsNoSource(t *testing.T) {
	code, out, errOut := runCLI(t, "--text", "")

	assert.Equal(t, EXIT_USAGE, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "exactly one of --text, --file, or --dir")
}

func TestRun_FileNotFound(t *testing.T) {
	code, out, errOut := runCLI(t, "--file", filepath.Join(t.TempDir(), "missing.txt"))

	assert.Equal(t, EXIT_FAILURE, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "file not found")
}

func TestRun_DirNotFound(t *testing.T) {
	code, _, errOut := runCLI(t, "--dir", filepath.Join(t.TempDir(), "missing"))

	assert.Equal(t, EXIT_FAILURE, code)
	assert.Contains(t, errOut, "not a directory")
}

func TestRun_DirUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("Good."), 0o644))
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "b.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	code, out, errOut := runCLI(t, "--dir", dir)

	assert.Equal(t, EXIT_FAILURE, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "b.txt")
}

func TestRun_Progress(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("Good."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("Bad."), 0o644))

	code, out, errOut := runCLI(t, "--dir", dir, "--progress")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "Document: a.txt")
	assert.NotContains(t, out, "100%")
	assert.Contains(t, errOut, "100%")
}

func TestRun_DirWithExports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("This is terrible. I hate it. Worst ever."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("Good good good. Bad."), 0o644))
	jsonPath := filepath.Join(dir, "out.json")
	csvPath := filepath.Join(dir, "out.csv")

	code, out, errOut := runCLI(t, "--dir", dir, "--json", jsonPath, "--csv", csvPath, "--top", "1")
	require.Equal(t, 0, code, errOut)

	assert.Less(t, strings.Index(out, "Document: a.txt"), strings.Index(out, "Document: b.txt"))
	assert.Contains(t, out, "JSON report written to "+jsonPath+"\n")
	assert.Contains(t, out, "CSV report written to "+csvPath+"\n")

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var docs []models.DocumentResult
	require.NoError(t, json.Unmarshal(data, &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "a.txt", docs[0].DocID)
	assert.Equal(t, models.Positive, docs[0].OverallSentiment)
	assert.Equal(t, []models.WordCount{{Word: "good", Count: 3}}, docs[0].TopPositiveWords)
	assert.Equal(t, "b.txt", docs[1].DocID)
	assert.Equal(t, models.Negative, docs[1].OverallSentiment)
	assert.Len(t, docs[1].TopNegativeWords, 1)

	data, err = os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t,
		"doc_id,overall_sentiment,overall_score,positive_total,negative_total,token_count,unique_token_count\r\n"+
			"a.txt,positive,0.500,3,1,4,2\r\n"+
			"b.txt,negative,-1.000,0,3,8,8\r\n",
		string(data))
}

func TestRun_Markdown(t *testing.T) {
	code, out, _ := runCLI(t, "--markdown", "--text", "**Great** [docs](https://example.com/great-bad)")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Positive words: 1  Negative words: 0\n")
}

func TestRun_Vader(t *testing.T) {
	code, out, _ := runCLI(t, "--vader", "--text", "I love this.")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "VADER compound: ")
}

func TestRun_CustomLexicon(t *testing.T) {
	dir := t.TempDir()
	pos := filepath.Join(dir, "pos.txt")
	neg := filepath.Join(dir, "neg.txt")
	require.NoError(t, os.WriteFile(pos, []byte("banana\n"), 0o644))
	require.NoError(t, os.WriteFile(neg, []byte("love\n"), 0o644))

	code, out, _ := runCLI(t, "--positive-words", pos, "--negative-words", neg, "--text", "I love banana bread. Love it!")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Overall sentiment: negative (score=-0.333)\n")
}

func TestRun_CustomLexiconMissing(t *testing.T) {
	dir := t.TempDir()

	code, _, errOut := runCLI(t,
		"--positive-words", filepath.Join(dir, "pos.txt"),
		"--negative-words", filepath.Join(dir, "neg.txt"),
		"--text", "hello")

	assert.Equal(t, EXIT_FAILURE, code)
	assert.Contains(t, errOut, "lexicon resource not found")
}

func TestRun_InvalidFlags(t *testing.T) {
	code, _, errOut := runCLI(t, "--text", "hi", "--top", "-3")
	assert.Equal(t, EXIT_USAGE, code)
	assert.Contains(t, errOut, "must not be negative")

	code, _, errOut = runCLI(t, "--text", "hi", "--positive-words", "pos.txt")
	assert.Equal(t, EXIT_USAGE, code)
	assert.Contains(t, errOut, "must be set together")
}
