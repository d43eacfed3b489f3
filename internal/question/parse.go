package question

import (
	"fmt"
	"strconv"
	"strings"

	"freetext/internal/htmltext"
)

// ParseQuestion parses one question body into a Question. The body is split
// at its last top-level separator; the trailing section is parsed with the
// comma grammar first and the line-based grammar as fallback. Bodies
// without a separator fall back to paragraph-carried configuration. Config
// problems never fail the parse: the defaults win and a Warning records
// what happened.
func ParseQuestion(body string, defaults Defaults) (Question, []Warning) {
	content, configText, found := SplitBody(body)
	values := map[string]string{}
	var warnings []Warning
	if found {
		flat := htmltext.Flatten(configText)
		if parsed, parseWarnings, ok := ParseConfig(flat); ok {
			values = parsed
			warnings = append(warnings, parseWarnings...)
		} else if parsed, ok := parseLegacyLines(flat, questionKeys); ok {
			values = parsed
		} else if strings.TrimSpace(flat) != "" {
			warnings = append(warnings, Warning{
				Field:   "config",
				Message: "config section could not be parsed, using defaults",
			})
		}
	} else if parsed, remaining, ok := extractParagraphConfig(body, questionKeys); ok {
		values = parsed
		content = remaining
	}

	q, coerceWarnings := buildQuestion(content, values, defaults)
	return q, append(warnings, coerceWarnings...)
}

// buildQuestion coerces raw config values onto the defaults. Each key is
// coerced independently; a failed coercion keeps the default and records a
// warning. Unrecognized keys are preserved in Extra.
func buildQuestion(content string, values map[string]string, defaults Defaults) (Question, []Warning) {
	var warnings []Warning
	warn := func(field, format string, args ...any) {
		warnings = append(warnings, Warning{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	q := Question{
		Body:        strings.TrimSpace(content),
		Type:        defaults.Type,
		Marks:       defaults.Marks,
		ShowAnswer:  defaults.ShowAnswer,
		Placeholder: defaults.Placeholder,
	}

	// Type first: the rows default depends on it.
	if raw, ok := values["type"]; ok {
		switch Type(strings.ToLower(strings.TrimSpace(raw))) {
		case TypeShort:
			q.Type = TypeShort
		case TypeLong:
			q.Type = TypeLong
		default:
			warn("type", "unknown question type %q, using %q", raw, string(defaults.Type))
		}
	}
	q.Rows = defaults.RowsFor(q.Type)
	if raw, ok := values["rows"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
			q.Rows = n
		} else {
			warn("rows", "invalid rows %q, using %d", raw, q.Rows)
		}
	}
	if raw, ok := values["marks"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n >= 0 {
			q.Marks = n
		} else {
			warn("marks", "invalid marks %q, using %d", raw, defaults.Marks)
		}
	}
	if raw, ok := values["show_answer"]; ok {
		if b, valid := parseBoolWord(raw); valid {
			q.ShowAnswer = b
		} else {
			warn("show_answer", "invalid boolean %q, using %t", raw, defaults.ShowAnswer)
		}
	}
	if raw, ok := values["placeholder"]; ok && strings.TrimSpace(raw) != "" {
		q.Placeholder = raw
	}
	if raw, ok := values["answer"]; ok {
		q.Answer = raw
	}

	for key, value := range values {
		if isQuestionKey(key) {
			continue
		}
		if q.Extra == nil {
			q.Extra = map[string]string{}
		}
		q.Extra[key] = value
	}

	if strings.TrimSpace(htmltext.Flatten(q.Body)) == "" {
		warnings = append(warnings, Warning{Field: "content", Message: "question has no content"})
	}
	return q, warnings
}

// parseBoolWord coerces the boolean words accepted in config values.
func parseBoolWord(raw string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	default:
		return false, false
	}
}
