package question

import (
	"errors"
	"fmt"
	"strings"

	"freetext/internal/htmltext"
)

// ErrNoQuestions reports an assessment whose body yielded no questions.
var ErrNoQuestions = errors.New("assessment has no questions")

// DefaultAssessmentTitle is used when no title: directive is present.
const DefaultAssessmentTitle = "Assessment"

// ParseAssessment parses an assessment body into its title, shuffle
// directive, and questions. The body is cut at every top-level separator;
// title: and shuffle: directives are read from the leading segment and
// removed from it. Segments whose content flattens to nothing are dropped.
// An assessment that ends up with zero questions is a structural problem
// and returns ErrNoQuestions.
func ParseAssessment(body string, defaults Defaults) (Assessment, []Warning, error) {
	segments := SplitSegments(body)
	assessment := Assessment{Title: DefaultAssessmentTitle}
	var warnings []Warning

	if len(segments) > 0 {
		remaining, directives, directiveWarnings := extractDirectives(segments[0])
		segments[0] = remaining
		warnings = append(warnings, directiveWarnings...)
		if raw, ok := directives["title"]; ok {
			if title := strings.TrimSpace(raw); title != "" {
				assessment.Title = title
			}
		}
		if raw, ok := directives["shuffle"]; ok {
			if value, valid := parseBoolWord(raw); valid {
				assessment.Shuffle = &value
			} else {
				warnings = append(warnings, Warning{
					Field:   "shuffle",
					Message: fmt.Sprintf("invalid boolean %q, inheriting global setting", raw),
				})
			}
		}
	}

	for _, segment := range segments {
		if strings.TrimSpace(htmltext.Flatten(segment)) == "" {
			continue
		}
		q, questionWarnings := ParseQuestion(segment, defaults)
		warnings = append(warnings, questionWarnings...)
		if strings.TrimSpace(htmltext.Flatten(q.Body)) == "" {
			continue
		}
		assessment.Questions = append(assessment.Questions, q)
	}

	if len(assessment.Questions) == 0 {
		return Assessment{}, warnings, ErrNoQuestions
	}
	return assessment, warnings, nil
}

// extractDirectives pulls assessment-level directives out of the leading
// segment. For HTML segments, whole paragraphs carrying only directives are
// consumed; for plain text, leading directive lines are consumed.
func extractDirectives(segment string) (remaining string, directives map[string]string, warnings []Warning) {
	if strings.Contains(segment, "<p") {
		values, content, ok := extractParagraphConfig(segment, assessmentKeys)
		if !ok {
			return segment, nil, nil
		}
		return content, values, nil
	}

	directives = map[string]string{}
	lines := strings.Split(segment, "\n")
	consumed := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			consumed++
			continue
		}
		key, rawValue, ok := cutKeyValue(trimmed)
		if !ok {
			break
		}
		if _, known := assessmentKeys[key]; !known {
			break
		}
		value, _, _ := unquoteValue(rawValue)
		directives[key] = value
		consumed++
	}
	if len(directives) == 0 {
		return segment, nil, nil
	}
	return strings.Join(lines[consumed:], "\n"), directives, nil
}
