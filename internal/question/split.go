package question

import "strings"

// span marks the byte range of a separator inside a body.
type span struct {
	start int
	end   int
}

// voidTags are HTML elements that never take a closing tag.
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {},
	"hr": {}, "img": {}, "input": {}, "link": {}, "meta": {},
	"param": {}, "source": {}, "track": {}, "wbr": {},
}

// SplitBody locates the last top-level separator dividing question content
// from its trailing configuration section. Separators are <hr> tags at tag
// nesting depth zero for HTML bodies, or --- lines outside fenced code
// blocks for plain text. Without a separator the whole body is content.
func SplitBody(body string) (content, config string, found bool) {
	seps := separators(body)
	if len(seps) == 0 {
		return body, "", false
	}
	last := seps[len(seps)-1]
	return body[:last.start], body[last.end:], true
}

// SplitSegments cuts a body at every top-level separator. A body with no
// separators yields a single segment.
func SplitSegments(body string) []string {
	seps := separators(body)
	segments := make([]string, 0, len(seps)+1)
	start := 0
	for _, sep := range seps {
		segments = append(segments, body[start:sep.start])
		start = sep.end
	}
	return append(segments, body[start:])
}

// separators returns all top-level separator ranges in a body. HTML <hr>
// tags take precedence; the plain-text rule applies only when none exist.
func separators(body string) []span {
	if seps := htmlSeparators(body); len(seps) > 0 {
		return seps
	}
	return textSeparators(body)
}

// htmlSeparators scans for <hr> tags at tag nesting depth zero. Tags inside
// open elements, comments, or code listings do not count.
func htmlSeparators(body string) []span {
	var seps []span
	depth := 0
	i := 0
	for i < len(body) {
		lt := strings.IndexByte(body[i:], '<')
		if lt == -1 {
			break
		}
		i += lt
		if strings.HasPrefix(body[i:], "<!--") {
			end := strings.Index(body[i:], "-->")
			if end == -1 {
				break
			}
			i += end + len("-->")
			continue
		}
		gt := strings.IndexByte(body[i:], '>')
		if gt == -1 {
			break
		}
		tag := body[i : i+gt+1]
		name, isEnd := tagName(tag)
		switch {
		case name == "":
			i++
			continue
		case isEnd:
			if depth > 0 {
				depth--
			}
		case name == "hr":
			if depth == 0 {
				seps = append(seps, span{start: i, end: i + gt + 1})
			}
		case isVoid(name) || strings.HasSuffix(tag, "/>"):
			// no depth change
		default:
			depth++
		}
		i += gt + 1
	}
	return seps
}

// tagName extracts the lowercased element name from a raw tag and reports
// whether it is a closing tag. Non-tags yield an empty name.
func tagName(tag string) (string, bool) {
	inner := strings.TrimPrefix(tag, "<")
	inner = strings.TrimSuffix(inner, ">")
	isEnd := strings.HasPrefix(inner, "/")
	if isEnd {
		inner = inner[1:]
	}
	end := 0
	for end < len(inner) {
		c := inner[end]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return "", false
	}
	first := inner[0]
	if (first < 'a' || first > 'z') && (first < 'A' || first > 'Z') {
		return "", false
	}
	return strings.ToLower(inner[:end]), isEnd
}

// isVoid reports whether an element never takes a closing tag.
func isVoid(name string) bool {
	_, ok := voidTags[name]
	return ok
}

// textSeparators scans for lines of three or more hyphens outside ```
// fenced code blocks.
func textSeparators(body string) []span {
	var seps []span
	inFence := false
	offset := 0
	for offset <= len(body) {
		lineEnd := strings.IndexByte(body[offset:], '\n')
		var line string
		next := len(body) + 1
		if lineEnd == -1 {
			line = body[offset:]
		} else {
			line = body[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "```"):
			inFence = !inFence
		case !inFence && isRuleLine(trimmed):
			seps = append(seps, span{start: offset, end: min(next, len(body))})
		}
		offset = next
	}
	return seps
}

// isRuleLine reports whether a trimmed line is a horizontal rule.
func isRuleLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '-' {
			return false
		}
	}
	return true
}
