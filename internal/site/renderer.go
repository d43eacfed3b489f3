package site

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"freetext/internal/mdext"
)

// Renderer converts page markdown to body HTML with the admonition block
// syntax enabled. Raw HTML passes through so question bodies keep their
// rich markup.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer returns the markdown renderer used for site pages.
func NewRenderer() *Renderer {
	return &Renderer{md: goldmark.New(
		goldmark.WithExtensions(mdext.Admonitions),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)}
}

// Render converts markdown to body HTML.
func (r *Renderer) Render(markdown []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
