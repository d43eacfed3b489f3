package widget

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"freetext/internal/options"
	"freetext/internal/question"
)

// QuestionWidget builds the interactive widget for a standalone question.
// The question body is written through as rendered HTML; all other text is
// escaped.
func QuestionWidget(q question.Question, id string, opts options.Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<div class=\"%s %s\" data-question-id=\"%s\">\n",
			templ.EscapeString(opts.ContainerClass), templ.EscapeString(opts.QuestionClass), templ.EscapeString(id))
		b.WriteString("<div class=\"question-header\">\n")
		fmt.Fprintf(&b, "<div class=\"question-text\">%s</div>\n", q.Body)
		writeMarksBadge(&b, "marks", q.Marks)
		b.WriteString("</div>\n")
		writeAnswerSection(&b, answerSectionParams{
			id:          id,
			answerClass: opts.AnswerClass,
			rows:        q.Rows,
			placeholder: q.Placeholder,
			charCount:   opts.ShowCharacterCount,
			oninput:     oninputAttr(id, opts.ShowCharacterCount, ""),
		})
		b.WriteString("<div class=\"button-group\">\n")
		fmt.Fprintf(&b, "<button onclick=\"submitAnswer_%s()\" class=\"submit-btn\">Submit Answer</button>\n", id)
		b.WriteString("</div>\n")
		fmt.Fprintf(&b, "<div id=\"feedback_%s\" class=\"feedback\" style=\"display: none;\"></div>\n", id)
		b.WriteString("</div>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// answerSectionParams bundles the shared answer box parameters.
type answerSectionParams struct {
	id          string
	answerClass string
	rows        int
	placeholder string
	charCount   bool
	oninput     string
}

// writeAnswerSection writes the textarea and optional character counter.
func writeAnswerSection(b *strings.Builder, p answerSectionParams) {
	b.WriteString("<div class=\"answer-section\">\n")
	fmt.Fprintf(b, "<textarea id=\"answer_%s\" class=\"%s\" rows=\"%d\" placeholder=\"%s\"%s></textarea>\n",
		p.id, templ.EscapeString(p.answerClass), p.rows, templ.EscapeString(p.placeholder), p.oninput)
	if p.charCount {
		fmt.Fprintf(b, "<div id=\"charCount_%s\" class=\"char-count\">0 characters</div>\n", p.id)
	}
	b.WriteString("</div>\n")
}

// oninputAttr assembles the oninput attribute for an answer box. The
// autoSaveID is empty for standalone questions.
func oninputAttr(id string, charCount bool, autoSaveID string) string {
	var calls []string
	if charCount {
		calls = append(calls, fmt.Sprintf("updateCharCount_%s();", id))
	}
	if autoSaveID != "" {
		calls = append(calls, fmt.Sprintf("autoSaveAssessment_%s();", autoSaveID))
	}
	if len(calls) == 0 {
		return ""
	}
	return fmt.Sprintf(" oninput=\"%s\"", strings.Join(calls, " "))
}

// writeMarksBadge writes a marks badge when marks are positive.
func writeMarksBadge(b *strings.Builder, class string, marks int) {
	if marks <= 0 {
		return
	}
	fmt.Fprintf(b, "<span class=\"%s\">(%d marks)</span>\n", class, marks)
}
