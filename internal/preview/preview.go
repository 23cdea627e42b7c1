// Package preview renders compiled songs as browsable HTML so the
// markup can be checked without running a full LaTeX build.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// ErrRender indicates preview rendering failed.
var ErrRender = errors.New("preview rendering failed")

// pageTemplate wraps rendered fragments in a complete HTML5 document.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// styleName picks the chroma colour scheme for highlighted markup.
const styleName = "friendly"

// Renderer turns song markup and markdown notes into preview pages.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with GFM extensions and syntax highlighting
// for fenced code blocks in the notes.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(styleName),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			ghtml.WithHardWraps(),
			ghtml.WithXHTML(),
		),
	)
	return &Renderer{md: md}
}

// Source highlights compiled song markup as a standalone HTML page.
// Styles are inlined so the page needs no external stylesheet.
func (r *Renderer) Source(title, source string) (string, error) {
	lexer := lexers.Get("latex")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	var buf bytes.Buffer
	formatter := html.New(html.Standalone(false), html.WithClasses(false))
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return fmt.Sprintf(pageTemplate, escapeTitle(title), buf.String()), nil
}

// Notes renders markdown notes to a standalone HTML page. Supports
// context cancellation via goroutine + select pattern since goldmark
// doesn't natively support context.
func (r *Renderer) Notes(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(pageTemplate, escapeTitle(title), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

func escapeTitle(title string) string {
	repl := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return repl.Replace(title)
}
