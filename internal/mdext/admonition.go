// Package mdext provides the goldmark extension for admonition blocks,
// the block syntax freetext questions are authored in:
//
//	!!! freetext "Optional Title"
//	    indented content...
//
// An admonition renders to a div with class "admonition <name>" and an
// optional title paragraph, the shape the page processor consumes.
package mdext

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// An Admonition is a titled callout block.
type Admonition struct {
	ast.BaseBlock
	// Name holds the lowercased class tokens from the opener line.
	Name []byte
	// Title holds the display title; empty suppresses the title paragraph.
	Title []byte
}

// KindAdmonition is the NodeKind of the Admonition node.
var KindAdmonition = ast.NewNodeKind("Admonition")

// Kind implements ast.Node.Kind.
func (n *Admonition) Kind() ast.NodeKind { return KindAdmonition }

// Dump implements ast.Node.Dump.
func (n *Admonition) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":  string(n.Name),
		"Title": string(n.Title),
	}, nil)
}

// NewAdmonition returns a new Admonition node.
func NewAdmonition(name, title []byte) *Admonition {
	return &Admonition{Name: name, Title: title}
}

// childIndent is the indentation that marks admonition content.
const childIndent = 4

type admonitionParser struct{}

var defaultAdmonitionParser = &admonitionParser{}

// NewAdmonitionParser returns the block parser for admonition openers.
func NewAdmonitionParser() parser.BlockParser {
	return defaultAdmonitionParser
}

func (p *admonitionParser) Trigger() []byte {
	return []byte{'!'}
}

func (p *admonitionParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || line[pos] != '!' {
		return nil, parser.NoChildren
	}
	name, title, ok := parseOpener(line[pos:])
	if !ok {
		return nil, parser.NoChildren
	}
	reader.Advance(segment.Len() - 1)
	return NewAdmonition(name, title), parser.HasChildren
}

func (p *admonitionParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, segment := reader.PeekLine()
	if util.IsBlank(line) {
		return parser.Continue | parser.HasChildren
	}
	pos, padding := util.IndentPositionPadding(line, reader.LineOffset(), segment.Padding, childIndent)
	if pos < 0 {
		return parser.Close
	}
	reader.AdvanceAndSetPadding(pos, padding)
	return parser.Continue | parser.HasChildren
}

func (p *admonitionParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
}

func (p *admonitionParser) CanInterruptParagraph() bool {
	return true
}

func (p *admonitionParser) CanAcceptIndentedLine() bool {
	return false
}

// parseOpener parses an `!!! name "Title"` line. The name may span several
// space-separated tokens; without a quoted title the first token supplies a
// capitalized default, and an explicitly empty title suppresses it.
func parseOpener(line []byte) (name, title []byte, ok bool) {
	rest := line
	for i := 0; i < 3; i++ {
		if len(rest) == 0 || rest[0] != '!' {
			return nil, nil, false
		}
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0] == '!' {
		return nil, nil, false
	}
	rest = util.TrimRightSpace(util.TrimLeftSpace(rest))

	var tokens [][]byte
	for len(rest) > 0 && rest[0] != '"' {
		j := 0
		for j < len(rest) && isNameByte(rest[j]) {
			j++
		}
		if j == 0 {
			return nil, nil, false
		}
		tokens = append(tokens, rest[:j])
		rest = util.TrimLeftSpace(rest[j:])
	}
	if len(tokens) == 0 {
		return nil, nil, false
	}
	name = bytes.ToLower(bytes.Join(tokens, []byte(" ")))

	if len(rest) == 0 {
		return name, capitalize(tokens[0]), true
	}
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return nil, nil, false
	}
	return name, rest[1 : len(rest)-1], true
}

func isNameByte(c byte) bool {
	return c == '-' || c == '_' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func capitalize(word []byte) []byte {
	out := bytes.ToLower(word)
	if len(out) > 0 && out[0] >= 'a' && out[0] <= 'z' {
		out[0] -= 'a' - 'A'
	}
	return out
}

// AdmonitionHTMLRenderer renders Admonition nodes as admonition divs.
type AdmonitionHTMLRenderer struct{}

// NewAdmonitionHTMLRenderer returns the HTML renderer for admonitions.
func NewAdmonitionHTMLRenderer() renderer.NodeRenderer {
	return &AdmonitionHTMLRenderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.RegisterFuncs.
func (r *AdmonitionHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAdmonition, r.renderAdmonition)
}

func (r *AdmonitionHTMLRenderer) renderAdmonition(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Admonition)
	if !entering {
		_, _ = w.WriteString("</div>\n")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(`<div class="admonition `)
	_, _ = w.Write(util.EscapeHTML(n.Name))
	_, _ = w.WriteString("\">\n")
	if len(n.Title) > 0 {
		_, _ = w.WriteString(`<p class="admonition-title">`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

type admonitionExtension struct{}

// Admonitions registers the admonition block syntax and its renderer.
var Admonitions goldmark.Extender = &admonitionExtension{}

func (e *admonitionExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(NewAdmonitionParser(), 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewAdmonitionHTMLRenderer(), 100),
	))
}
