package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
)

// RemoveLinks keeps the text of markdown links and drops bare URLs.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and reduces the result to plain text
// with collapsed whitespace. Smart quotes are disabled so apostrophes survive
// tokenization.
func ConvertMarkdownToText(input string) string {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
	output := blackfriday.Run([]byte(RemoveLinks(input)),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(renderer))

	text := htmlTagPattern.ReplaceAllString(string(output), " ")
	text = html.UnescapeString(text)
	plainText := strings.Join(strings.Fields(text), " ")

	return RemoveLinks(plainText)
}
