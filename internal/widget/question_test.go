package widget

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"freetext/internal/options"
	"freetext/internal/question"
)

// parseFragment parses rendered widget HTML for structural assertions.
func parseFragment(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse rendered widget: %v", err)
	}
	return doc
}

// TestQuestionWidgetMarkup verifies the structure of a fully configured
// standalone question widget.
func TestQuestionWidgetMarkup(t *testing.T) {
	q := question.Question{
		Body:        "<p>Explain pointers.</p>",
		Type:        question.TypeShort,
		Marks:       5,
		Rows:        4,
		Placeholder: "Type here...",
		ShowAnswer:  true,
		Answer:      "They hold addresses.",
	}
	html, err := Render(QuestionWidget(q, "abc12345", options.Default()))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc := parseFragment(t, html)

	container := doc.Find("div.freetext-container.freetext-question")
	if container.Length() != 1 {
		t.Fatalf("container count = %d, want 1", container.Length())
	}
	if got := container.AttrOr("data-question-id", ""); got != "abc12345" {
		t.Errorf("data-question-id = %q, want %q", got, "abc12345")
	}
	if got := doc.Find(".question-text p").Text(); got != "Explain pointers." {
		t.Errorf("question text = %q, want %q", got, "Explain pointers.")
	}
	if got := doc.Find(".marks").Text(); got != "(5 marks)" {
		t.Errorf("marks badge = %q, want %q", got, "(5 marks)")
	}

	box := doc.Find("#answer_abc12345")
	if box.Length() != 1 {
		t.Fatalf("answer box count = %d, want 1", box.Length())
	}
	if got := box.AttrOr("rows", ""); got != "4" {
		t.Errorf("rows = %q, want %q", got, "4")
	}
	if got := box.AttrOr("placeholder", ""); got != "Type here..." {
		t.Errorf("placeholder = %q, want %q", got, "Type here...")
	}
	if got := box.AttrOr("oninput", ""); !strings.Contains(got, "updateCharCount_abc12345();") {
		t.Errorf("oninput = %q, want character count call", got)
	}
	if got := doc.Find("#charCount_abc12345").Text(); got != "0 characters" {
		t.Errorf("character counter = %q, want %q", got, "0 characters")
	}

	if got := doc.Find(".submit-btn").AttrOr("onclick", ""); got != "submitAnswer_abc12345()" {
		t.Errorf("submit onclick = %q, want %q", got, "submitAnswer_abc12345()")
	}
	if doc.Find("#feedback_abc12345").Length() != 1 {
		t.Error("feedback element missing")
	}
}

// TestQuestionWidgetZeroMarks verifies that no marks badge is rendered for
// unmarked questions.
func TestQuestionWidgetZeroMarks(t *testing.T) {
	q := question.Question{Body: "<p>Q</p>", Rows: 3}
	html, err := Render(QuestionWidget(q, "abc12345", options.Default()))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if doc := parseFragment(t, html); doc.Find(".marks").Length() != 0 {
		t.Error("marks badge rendered for zero marks")
	}
}

// TestQuestionWidgetCounterDisabled verifies that disabling the character
// count removes both the counter element and the input hook.
func TestQuestionWidgetCounterDisabled(t *testing.T) {
	opts := options.Default()
	opts.ShowCharacterCount = false
	q := question.Question{Body: "<p>Q</p>", Rows: 3}
	html, err := Render(QuestionWidget(q, "abc12345", opts))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc := parseFragment(t, html)
	if doc.Find("#charCount_abc12345").Length() != 0 {
		t.Error("character counter rendered while disabled")
	}
	if got := doc.Find("#answer_abc12345").AttrOr("oninput", ""); got != "" {
		t.Errorf("oninput = %q, want empty", got)
	}
}

// TestQuestionWidgetEscapesPlaceholder verifies that attribute values pass
// through HTML escaping.
func TestQuestionWidgetEscapesPlaceholder(t *testing.T) {
	q := question.Question{Body: "<p>Q</p>", Rows: 3, Placeholder: `Say "why" & more`}
	html, err := Render(QuestionWidget(q, "abc12345", options.Default()))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc := parseFragment(t, html)
	if got := doc.Find("#answer_abc12345").AttrOr("placeholder", ""); got != `Say "why" & more` {
		t.Errorf("placeholder = %q, want original text restored", got)
	}
}

// TestQuestionWidgetCustomClasses verifies that the configured container and
// answer classes are applied.
func TestQuestionWidgetCustomClasses(t *testing.T) {
	opts := options.Default()
	opts.QuestionClass = "quiz-box"
	opts.ContainerClass = "site-widget"
	opts.AnswerClass = "quiz-answer"
	q := question.Question{Body: "<p>Q</p>", Rows: 3}
	html, err := Render(QuestionWidget(q, "abc12345", opts))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc := parseFragment(t, html)
	if doc.Find("div.site-widget.quiz-box").Length() != 1 {
		t.Error("custom container classes not applied")
	}
	if doc.Find("textarea.quiz-answer").Length() != 1 {
		t.Error("custom answer class not applied")
	}
}
