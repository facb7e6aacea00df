package ingest

import (
	"strings"
	"testing"
)

func TestHTMLToMarkdown(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		in := "buy milk tomorrow"
		if got := HTMLToMarkdown(in); got != in {
			t.Errorf("got %q, want unchanged input", got)
		}
	})

	t.Run("comparison prose passes through", func(t *testing.T) {
		in := "< 5 items left on the list"
		if got := HTMLToMarkdown(in); got != in {
			t.Errorf("got %q, want unchanged input", got)
		}
	})

	t.Run("html fragment converts", func(t *testing.T) {
		got := HTMLToMarkdown("<p>Buy <strong>milk</strong> tomorrow</p>")
		if strings.Contains(got, "<p>") || strings.Contains(got, "<strong>") {
			t.Errorf("markup survived conversion: %q", got)
		}
		if !strings.Contains(got, "milk") {
			t.Errorf("content lost in conversion: %q", got)
		}
	})

	t.Run("list structure survives as markdown", func(t *testing.T) {
		got := HTMLToMarkdown("<ul><li>milk</li><li>eggs</li></ul>")
		if !strings.Contains(got, "milk") || !strings.Contains(got, "eggs") {
			t.Errorf("list items lost: %q", got)
		}
	})
}
