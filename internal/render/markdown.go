package render

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Content files may carry inline HTML; the sanitizer below strips
			// anything outside the allow-list.
			html.WithUnsafe(),
		),
	)

	sanitizer = newContentPolicy()
)

func newContentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "div", "pre", "code")
	policy.AllowAttrs("style").OnElements("span", "pre")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Markdown converts markdown (which may contain inline HTML) into a sanitized
// markup node. Blank input yields nil.
func Markdown(src string) *Node {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		// goldmark only fails on writer errors; fall back to escaped text.
		return Text(src)
	}
	return &Node{Kind: KindMarkup, Text: sanitizer.Sanitize(buf.String())}
}

// Sanitize strips disallowed markup from an HTML string.
func Sanitize(htmlSrc string) string {
	return sanitizer.Sanitize(htmlSrc)
}
