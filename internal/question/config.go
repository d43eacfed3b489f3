package question

import (
	"fmt"
	"strings"
)

// ParseConfig parses the comma-separated configuration grammar: `key: value`
// items split on top-level commas. A value may be triple-quoted ("""..."""),
// quoted ('...' or "..."), or bare. Quoted values protect commas and quote
// characters; quoting is only recognized at the start of a value. Keys are
// lowercased. The third result is false when the text does not resemble
// this grammar and a fallback should be tried.
func ParseConfig(text string) (map[string]string, []Warning, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil, false
	}
	values := map[string]string{}
	var warnings []Warning
	for _, item := range splitConfigItems(trimmed) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, rawValue, ok := cutKeyValue(item)
		if !ok {
			warnings = append(warnings, Warning{
				Field:   "config",
				Message: fmt.Sprintf("unrecognized config item %q", truncateForMessage(item)),
			})
			continue
		}
		value, quoted, terminated := unquoteValue(rawValue)
		if !terminated {
			warnings = append(warnings, Warning{
				Field:   key,
				Message: "malformed quoted value",
			})
		}
		if !quoted && looksLineBased(value) {
			// A bare value spanning lines that themselves read as key: value
			// pairs belongs to the line-based grammar.
			return nil, nil, false
		}
		values[key] = value
	}
	if len(values) == 0 {
		return nil, nil, false
	}
	return values, warnings, true
}

// splitConfigItems splits config text on commas, keeping commas that appear
// inside values quoted from their start.
func splitConfigItems(s string) []string {
	var items []string
	var current strings.Builder
	atValueStart := false
	i := 0
	for i < len(s) {
		if atValueStart && strings.HasPrefix(s[i:], `"""`) {
			end := strings.Index(s[i+3:], `"""`)
			if end == -1 {
				current.WriteString(s[i:])
				i = len(s)
				continue
			}
			current.WriteString(s[i : i+3+end+3])
			i += 3 + end + 3
			atValueStart = false
			continue
		}
		c := s[i]
		if atValueStart && (c == '"' || c == '\'') {
			j := i + 1
			for j < len(s) && s[j] != c {
				if s[j] == '\\' && j+1 < len(s) {
					j++
				}
				j++
			}
			if j < len(s) {
				j++
			}
			current.WriteString(s[i:j])
			i = j
			atValueStart = false
			continue
		}
		switch c {
		case ',':
			items = append(items, current.String())
			current.Reset()
			atValueStart = false
		case ':':
			current.WriteByte(c)
			atValueStart = true
		default:
			if atValueStart && c != ' ' && c != '\t' {
				atValueStart = false
			}
			current.WriteByte(c)
		}
		i++
	}
	return append(items, current.String())
}

// cutKeyValue splits one config item at its first colon. The key must be an
// identifier (letters, digits, underscores, starting with a letter or
// underscore).
func cutKeyValue(item string) (key, value string, ok bool) {
	colon := strings.IndexByte(item, ':')
	if colon == -1 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(item[:colon]))
	if !isIdentifier(key) {
		return "", "", false
	}
	return key, item[colon+1:], true
}

// isIdentifier reports whether a key is a config identifier.
func isIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// unquoteValue strips value quoting. Triple-quoted values are extracted
// verbatim; quoted values have backslash escapes for the quote character
// and backslash undone; bare values are trimmed. The quoted result is true
// when the value carried quoting, terminated is false for an unclosed quote.
func unquoteValue(raw string) (value string, quoted, terminated bool) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, `"""`) {
		rest := trimmed[3:]
		if strings.HasSuffix(rest, `"""`) && len(rest) >= 3 {
			return rest[:len(rest)-3], true, true
		}
		return rest, true, false
	}
	if len(trimmed) >= 2 {
		first := trimmed[0]
		if first == '"' || first == '\'' {
			if trimmed[len(trimmed)-1] == first {
				return unescapeQuoted(trimmed[1:len(trimmed)-1], first), true, true
			}
			return unescapeQuoted(trimmed[1:], first), true, false
		}
	}
	return trimmed, false, true
}

// unescapeQuoted undoes backslash escapes for the quote character and the
// backslash itself.
func unescapeQuoted(s string, quote byte) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var builder strings.Builder
	builder.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == quote || s[i+1] == '\\') {
			i++
		}
		builder.WriteByte(s[i])
	}
	return builder.String()
}

// looksLineBased reports whether a bare value swallowed what reads as
// line-based key: value pairs.
func looksLineBased(value string) bool {
	if !strings.ContainsRune(value, '\n') {
		return false
	}
	lines := strings.Split(value, "\n")
	for _, line := range lines[1:] {
		if _, _, ok := cutKeyValue(strings.TrimSpace(line)); ok {
			return true
		}
	}
	return false
}

// truncateForMessage shortens long config items for warning messages.
func truncateForMessage(item string) string {
	const limit = 40
	if len(item) <= limit {
		return item
	}
	return item[:limit-3] + "..."
}
