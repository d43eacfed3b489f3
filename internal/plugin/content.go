package plugin

import (
	"errors"
	"fmt"
	"strings"

	"freetext/internal/question"
	"freetext/internal/widget"
)

// OnPageContent replaces freetext admonitions in rendered page HTML with
// interactive widgets. Assessments are handled before individual questions
// so that the broader class name is never claimed by the question scan.
// Parser warnings are logged and carried in the result; structural problems
// abort the page.
func (p *Processor) OnPageContent(html, pagePath string) (PageResult, error) {
	var result PageResult
	used := make(map[string]bool)

	out, err := p.replaceAssessments(html, pagePath, &result, used)
	if err != nil {
		return PageResult{}, err
	}
	out, err = p.replaceQuestions(out, pagePath, &result, used)
	if err != nil {
		return PageResult{}, err
	}
	result.HTML = out

	if p.opts.Debug && result.HTML != html {
		p.writeDebugDumps(pagePath, html, result.HTML)
	}
	return result, nil
}

// newWidgetID draws the next widget identifier, rejecting collisions.
func (p *Processor) newWidgetID(pagePath string, used map[string]bool) (string, error) {
	id := p.NewID()
	if used[id] {
		return "", &StructuralError{Page: pagePath, Reason: fmt.Sprintf("duplicate widget id %q", id)}
	}
	used[id] = true
	return id, nil
}

func (p *Processor) replaceAssessments(src, pagePath string, result *PageResult, used map[string]bool) (string, error) {
	blocks := findBlocks(src, isAssessmentAdmonition)
	if len(blocks) == 0 {
		return src, nil
	}
	defaults := questionDefaults(p.opts)

	var b strings.Builder
	last := 0
	for _, blk := range blocks {
		content := stripAdmonitionTitle(blk.inner)
		a, warns, err := question.ParseAssessment(content, defaults)
		if err != nil {
			if errors.Is(err, question.ErrNoQuestions) {
				return "", &StructuralError{Page: pagePath, Reason: "assessment contains no questions"}
			}
			return "", fmt.Errorf("parse assessment: %w", err)
		}
		p.logWarnings(pagePath, warns)
		result.Warnings = append(result.Warnings, warns...)

		id, err := p.newWidgetID(pagePath, used)
		if err != nil {
			return "", err
		}
		markup, err := widget.Render(widget.AssessmentWidget(a, id, p.opts))
		if err != nil {
			return "", fmt.Errorf("render assessment widget: %w", err)
		}
		functions, ready := widget.AssessmentScripts(a, id, p.opts)
		result.Scripts = append(result.Scripts, functions)
		result.DOMReady = append(result.DOMReady, ready)
		result.Assessments++
		result.HasQuestions = true

		b.WriteString(src[last:blk.start])
		b.WriteString(markup)
		last = blk.end
	}
	b.WriteString(src[last:])
	return b.String(), nil
}

func (p *Processor) replaceQuestions(src, pagePath string, result *PageResult, used map[string]bool) (string, error) {
	blocks := findBlocks(src, isQuestionAdmonition)
	if len(blocks) == 0 {
		return src, nil
	}
	defaults := questionDefaults(p.opts)

	var b strings.Builder
	last := 0
	for _, blk := range blocks {
		content := stripAdmonitionTitle(blk.inner)
		q, warns := question.ParseQuestion(content, defaults)
		p.logWarnings(pagePath, warns)
		result.Warnings = append(result.Warnings, warns...)

		id, err := p.newWidgetID(pagePath, used)
		if err != nil {
			return "", err
		}
		markup, err := widget.Render(widget.QuestionWidget(q, id, p.opts))
		if err != nil {
			return "", fmt.Errorf("render question widget: %w", err)
		}
		result.Scripts = append(result.Scripts, widget.QuestionScripts(q, id, p.opts))
		result.Questions++
		result.HasQuestions = true

		b.WriteString(src[last:blk.start])
		b.WriteString(markup)
		last = blk.end
	}
	b.WriteString(src[last:])
	return b.String(), nil
}

// block is one admonition div element located in page HTML.
type block struct {
	start, end int
	inner      string
}

// isQuestionAdmonition matches the class list of an individual question
// admonition. The assessment class is a distinct token, so an assessment
// opener never matches here.
func isQuestionAdmonition(classes []string) bool {
	return hasToken(classes, "admonition") && hasToken(classes, "freetext")
}

// isAssessmentAdmonition matches the class list of an assessment admonition.
func isAssessmentAdmonition(classes []string) bool {
	return hasToken(classes, "admonition") && hasToken(classes, "freetext-assessment")
}

func hasToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

// findBlocks scans src for div elements whose class list satisfies match,
// pairing each opener with its closing tag by depth counting. Matches never
// overlap; a matching div nested inside an earlier match stays part of that
// match's inner content.
func findBlocks(src string, match func([]string) bool) []block {
	var blocks []block
	pos := 0
	for {
		rel := strings.Index(src[pos:], "<div")
		if rel < 0 {
			return blocks
		}
		start := pos + rel
		after := start + len("<div")
		if after >= len(src) || (src[after] != '>' && !isSpace(src[after])) {
			pos = after
			continue
		}
		gt := strings.IndexByte(src[after:], '>')
		if gt < 0 {
			return blocks
		}
		openEnd := after + gt + 1
		if !match(classTokens(src[start:openEnd])) {
			pos = openEnd
			continue
		}
		closeEnd, ok := matchingDivEnd(src, openEnd)
		if !ok {
			pos = openEnd
			continue
		}
		blocks = append(blocks, block{
			start: start,
			end:   closeEnd,
			inner: src[openEnd : closeEnd-len("</div>")],
		})
		pos = closeEnd
	}
}

// matchingDivEnd returns the offset just past the closing tag that balances
// an opening div whose tag ends at from.
func matchingDivEnd(src string, from int) (int, bool) {
	depth := 1
	pos := from
	for {
		lt := strings.IndexByte(src[pos:], '<')
		if lt < 0 {
			return 0, false
		}
		pos += lt
		rest := src[pos:]
		switch {
		case tagPrefix(rest, "</div"):
			gt := strings.IndexByte(rest, '>')
			if gt < 0 {
				return 0, false
			}
			pos += gt + 1
			depth--
			if depth == 0 {
				return pos, true
			}
		case tagPrefix(rest, "<div"):
			gt := strings.IndexByte(rest, '>')
			if gt < 0 {
				return 0, false
			}
			pos += gt + 1
			depth++
		default:
			pos++
		}
	}
}

// tagPrefix reports whether s starts the named tag rather than a longer one.
func tagPrefix(s, tag string) bool {
	if !strings.HasPrefix(s, tag) {
		return false
	}
	if len(s) == len(tag) {
		return false
	}
	c := s[len(tag)]
	return c == '>' || c == '/' || isSpace(c)
}

// classTokens extracts the class attribute tokens from an opening tag.
func classTokens(tag string) []string {
	lower := strings.ToLower(tag)
	idx := 0
	for {
		j := strings.Index(lower[idx:], "class=")
		if j < 0 {
			return nil
		}
		j += idx
		if j > 0 && isSpace(tag[j-1]) {
			idx = j
			break
		}
		idx = j + 1
	}
	rest := tag[idx+len("class="):]
	if rest == "" {
		return nil
	}
	if quote := rest[0]; quote == '"' || quote == '\'' {
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			return nil
		}
		return strings.Fields(rest[1 : 1+end])
	}
	end := strings.IndexAny(rest, " \t\n>")
	if end < 0 {
		end = len(rest)
	}
	return strings.Fields(rest[:end])
}

// stripAdmonitionTitle removes the rendered title paragraph, returning the
// content that follows it.
func stripAdmonitionTitle(inner string) string {
	idx := strings.Index(inner, `<p class="admonition-title"`)
	if idx < 0 {
		return strings.TrimSpace(inner)
	}
	rest := inner[idx:]
	end := strings.Index(rest, "</p>")
	if end < 0 {
		return strings.TrimSpace(inner)
	}
	return strings.TrimSpace(rest[end+len("</p>"):])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
