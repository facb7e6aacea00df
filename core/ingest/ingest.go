package ingest

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Sanitizer rewrites captured input text before prompt construction. The
// analyzer applies one when configured; see analyzer.WithSanitizer.
type Sanitizer func(text string) string

// HTMLToMarkdown converts HTML input to markdown. Input that does not look
// like markup, or that fails conversion, is returned unchanged, so the
// function is safe as an always-on sanitizer.
func HTMLToMarkdown(text string) string {
	if !looksLikeHTML(text) {
		return text
	}
	markdown, err := htmltomarkdown.ConvertString(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(markdown)
}

// looksLikeHTML applies a cheap heuristic: a tag near the start of the
// trimmed input. Captured prose mentioning "a < b" does not qualify.
func looksLikeHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	close := strings.Index(trimmed, ">")
	return close > 1
}
