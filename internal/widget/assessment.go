package widget

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"freetext/internal/options"
	"freetext/internal/question"
)

// AssessmentWidget builds the interactive widget for an assessment. The
// questions are written in canonical order; shuffling happens client-side
// when the data-shuffle attribute is true, driven by the per-assessment
// directive or the global option.
func AssessmentWidget(a question.Assessment, id string, opts options.Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		shuffle := question.ShuffleEnabled(a, opts.ShuffleQuestions)
		var b strings.Builder
		fmt.Fprintf(&b, "<div class=\"%s %s\" data-assessment-id=\"%s\" data-shuffle=\"%s\">\n",
			templ.EscapeString(opts.ContainerClass), templ.EscapeString(opts.AssessmentClass),
			templ.EscapeString(id), strconv.FormatBool(shuffle))
		b.WriteString("<div class=\"assessment-header\">\n")
		fmt.Fprintf(&b, "<h3>%s</h3>\n", templ.EscapeString(a.Title))
		if total := a.TotalMarks(); total > 0 {
			fmt.Fprintf(&b, "<span class=\"total-marks\">Total: %d marks</span>\n", total)
		}
		b.WriteString("</div>\n")

		for i, q := range a.Questions {
			questionID := QuestionID(id, i)
			fmt.Fprintf(&b, "<div class=\"assessment-question\" data-question-id=\"%s\">\n", questionID)
			b.WriteString("<div class=\"question-header\">\n")
			fmt.Fprintf(&b, "<div class=\"question-number\">%d.</div>\n", i+1)
			fmt.Fprintf(&b, "<div class=\"question-text\">%s</div>\n", q.Body)
			writeMarksBadge(&b, "marks", q.Marks)
			b.WriteString("</div>\n")
			writeAnswerSection(&b, answerSectionParams{
				id:          questionID,
				answerClass: opts.AnswerClass,
				rows:        q.Rows,
				placeholder: q.Placeholder,
				charCount:   opts.ShowCharacterCount,
				oninput:     oninputAttr(questionID, opts.ShowCharacterCount, id),
			})
			fmt.Fprintf(&b, "<div id=\"feedback_%s\" class=\"feedback\" style=\"display: none;\"></div>\n", questionID)
			b.WriteString("</div>\n")
		}

		b.WriteString("<div class=\"assessment-buttons\">\n")
		fmt.Fprintf(&b, "<button onclick=\"submitAssessment_%s()\" class=\"submit-assessment-btn\">Submit Assessment</button>\n", id)
		b.WriteString("</div>\n")
		fmt.Fprintf(&b, "<div id=\"assessment_feedback_%s\" class=\"assessment-feedback\" style=\"display: none;\"></div>\n", id)
		b.WriteString("</div>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
