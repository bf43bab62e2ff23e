package render

import (
	"bytes"
	"html"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownInstance is initialized once and reused: the configuration
// never changes and goldmark parsers are safe to share.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// markdownHTML converts a markdown body to HTML for the detail panel.
// Raw HTML in the source is filtered by goldmark's default renderer, so
// the output is safe to inject into the panel. A conversion failure falls
// back to the escaped source text.
func markdownHTML(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := getMarkdown().Convert([]byte(src), &buf); err != nil {
		return "<pre>" + html.EscapeString(src) + "</pre>"
	}
	return buf.String()
}
