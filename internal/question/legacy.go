package question

import (
	"strings"

	"freetext/internal/htmltext"
)

// questionKeys is the closed set of per-question config keys.
var questionKeys = map[string]struct{}{
	"marks": {}, "show_answer": {}, "placeholder": {},
	"rows": {}, "type": {}, "answer": {},
}

// assessmentKeys is the closed set of assessment-level directives.
var assessmentKeys = map[string]struct{}{
	"title": {}, "shuffle": {},
}

// isQuestionKey reports whether a key belongs to the per-question set.
func isQuestionKey(key string) bool {
	_, ok := questionKeys[key]
	return ok
}

// parseLegacyLines parses the line-based grammar: one `key: value` per
// line, keys restricted to the known set. It matches only when every
// non-empty line is such a pair and at least one known key is present.
func parseLegacyLines(text string, known map[string]struct{}) (map[string]string, bool) {
	values := map[string]string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, rawValue, ok := cutKeyValue(line)
		if !ok {
			return nil, false
		}
		if _, knownKey := known[key]; !knownKey {
			return nil, false
		}
		value, _, _ := unquoteValue(rawValue)
		values[key] = value
	}
	if len(values) == 0 {
		return nil, false
	}
	return values, true
}

// paragraph marks one top-level <p> block inside an HTML body.
type paragraph struct {
	start int
	end   int
	inner string
}

// findParagraphs returns the top-level <p> blocks of an HTML fragment.
func findParagraphs(body string) []paragraph {
	var paragraphs []paragraph
	i := 0
	for i < len(body) {
		open := strings.Index(body[i:], "<p")
		if open == -1 {
			break
		}
		open += i
		after := open + len("<p")
		if after < len(body) && body[after] != '>' && body[after] != ' ' && body[after] != '\t' && body[after] != '\n' {
			i = after
			continue
		}
		gt := strings.IndexByte(body[open:], '>')
		if gt == -1 {
			break
		}
		innerStart := open + gt + 1
		closing := strings.Index(body[innerStart:], "</p>")
		if closing == -1 {
			break
		}
		end := innerStart + closing + len("</p>")
		paragraphs = append(paragraphs, paragraph{
			start: open,
			end:   end,
			inner: body[innerStart : innerStart+closing],
		})
		i = end
	}
	return paragraphs
}

// classifyParagraph decides whether a paragraph's flattened text is
// configuration restricted to the known key set, returning its values.
// The comma form is tried before the line form so that comma-separated
// items are not swallowed into a single value.
func classifyParagraph(flat string, known map[string]struct{}) (map[string]string, bool) {
	trimmed := strings.TrimSpace(flat)
	if trimmed == "" || !strings.ContainsRune(trimmed, ':') {
		return nil, false
	}
	if strings.ContainsRune(trimmed, ',') {
		if values, _, ok := ParseConfig(trimmed); ok && allKeysIn(values, known) {
			return values, true
		}
	}
	return parseLegacyLines(trimmed, known)
}

// allKeysIn reports whether every key of values belongs to the known set.
func allKeysIn(values map[string]string, known map[string]struct{}) bool {
	for key := range values {
		if _, ok := known[key]; !ok {
			return false
		}
	}
	return true
}

// extractParagraphConfig scans an HTML body without a separator for
// paragraphs that carry configuration, in either the line-based or the
// comma form. Matched paragraphs are removed from the returned content and
// their values merged, later paragraphs overriding earlier keys.
func extractParagraphConfig(body string, known map[string]struct{}) (values map[string]string, content string, matched bool) {
	paragraphs := findParagraphs(body)
	if len(paragraphs) == 0 {
		return nil, body, false
	}
	values = map[string]string{}
	var removed []paragraph
	for _, p := range paragraphs {
		parsed, ok := classifyParagraph(htmltext.Flatten(p.inner), known)
		if !ok {
			continue
		}
		for key, value := range parsed {
			values[key] = value
		}
		removed = append(removed, p)
	}
	if len(removed) == 0 {
		return nil, body, false
	}
	var builder strings.Builder
	last := 0
	for _, p := range removed {
		builder.WriteString(body[last:p.start])
		last = p.end
	}
	builder.WriteString(body[last:])
	return values, builder.String(), true
}
