package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"freetext/internal/options"
)

// testProcessor returns a Processor with a deterministic ID sequence.
func testProcessor(opts options.Options) *Processor {
	p := New(opts, nil)
	n := 0
	p.NewID = func() string {
		n++
		return fmt.Sprintf("widget%02d", n)
	}
	return p
}

const questionPage = `<h1>Lesson</h1>
<div class="admonition freetext">
<p class="admonition-title">Freetext</p>
<p>Explain slices.</p>
<hr>
<p>marks: 3</p>
</div>
<p>After.</p>`

// TestOnPageContentQuestion verifies that a question admonition is replaced
// in place by a widget with parsed config applied.
func TestOnPageContentQuestion(t *testing.T) {
	result, err := testProcessor(options.Default()).OnPageContent(questionPage, "docs/page.md")
	if err != nil {
		t.Fatalf("OnPageContent() error = %v", err)
	}
	if !result.HasQuestions || result.Questions != 1 || result.Assessments != 0 {
		t.Fatalf("counts = %d questions, %d assessments, want 1, 0", result.Questions, result.Assessments)
	}
	if strings.Contains(result.HTML, "admonition") {
		t.Error("admonition markup survived the pass")
	}
	for _, want := range []string{
		"<h1>Lesson</h1>",
		`data-question-id="widget01"`,
		"<p>Explain slices.</p>",
		"(3 marks)",
		"<p>After.</p>",
	} {
		if !strings.Contains(result.HTML, want) {
			t.Errorf("page HTML missing %q", want)
		}
	}
	if len(result.Scripts) != 1 || !strings.Contains(result.Scripts[0], "function submitAnswer_widget01()") {
		t.Errorf("scripts = %q, want one block with the submit handler", result.Scripts)
	}
	if len(result.DOMReady) != 0 {
		t.Errorf("DOMReady = %q, want none for standalone questions", result.DOMReady)
	}
}

const assessmentPage = `<div class="admonition freetext-assessment">
<p class="admonition-title">Freetext-assessment</p>
<p>title: Quiz</p>
<p>What is 1+1?</p>
<hr>
<p>What is 2+2?</p>
</div>`

// TestOnPageContentAssessment verifies assessment replacement, numbering
// and the DOM-ready shuffle hook.
func TestOnPageContentAssessment(t *testing.T) {
	result, err := testProcessor(options.Default()).OnPageContent(assessmentPage, "docs/quiz.md")
	if err != nil {
		t.Fatalf("OnPageContent() error = %v", err)
	}
	if result.Assessments != 1 || result.Questions != 0 {
		t.Fatalf("counts = %d questions, %d assessments, want 0, 1", result.Questions, result.Assessments)
	}
	for _, want := range []string{
		`data-assessment-id="widget01"`,
		"<h3>Quiz</h3>",
		`data-question-id="widget01_q1"`,
		`data-question-id="widget01_q2"`,
	} {
		if !strings.Contains(result.HTML, want) {
			t.Errorf("page HTML missing %q", want)
		}
	}
	if len(result.DOMReady) != 1 || result.DOMReady[0] != "shuffleQuestions_widget01();" {
		t.Errorf("DOMReady = %q, want the shuffle invocation", result.DOMReady)
	}
}

// TestOnPageContentAssessmentsFirst verifies that assessments claim IDs
// before questions and that the question scan never matches an assessment
// opener.
func TestOnPageContentAssessmentsFirst(t *testing.T) {
	page := questionPage + "\n" + assessmentPage
	result, err := testProcessor(options.Default()).OnPageContent(page, "docs/mixed.md")
	if err != nil {
		t.Fatalf("OnPageContent() error = %v", err)
	}
	if result.Questions != 1 || result.Assessments != 1 {
		t.Fatalf("counts = %d questions, %d assessments, want 1, 1", result.Questions, result.Assessments)
	}
	if !strings.Contains(result.HTML, `data-assessment-id="widget01"`) {
		t.Error("assessment did not receive the first id")
	}
	if !strings.Contains(result.HTML, `data-question-id="widget02"`) {
		t.Error("question did not receive the second id")
	}
}

// TestOnPageContentIgnoresOtherAdmonitions verifies that unrelated
// admonitions pass through untouched.
func TestOnPageContentIgnoresOtherAdmonitions(t *testing.T) {
	page := `<div class="admonition note"><p class="admonition-title">Note</p><p>Keep me.</p></div>`
	result, err := testProcessor(options.Default()).OnPageContent(page, "docs/page.md")
	if err != nil {
		t.Fatalf("OnPageContent() error = %v", err)
	}
	if result.HasQuestions {
		t.Error("HasQuestions = true for a page without freetext admonitions")
	}
	if result.HTML != page {
		t.Errorf("HTML changed: %q", result.HTML)
	}
}

// TestOnPageContentNestedDivs verifies that nested markup inside an
// admonition stays part of the question body.
func TestOnPageContentNestedDivs(t *testing.T) {
	page := `<div class="admonition freetext">
<p>Read this code.</p>
<div class="highlight"><pre>x := 1</pre></div>
</div>
<p>Trailer.</p>`
	result, err := testProcessor(options.Default()).OnPageContent(page, "docs/page.md")
	if err != nil {
		t.Fatalf("OnPageContent() error = %v", err)
	}
	if !strings.Contains(result.HTML, `<div class="highlight"><pre>x := 1</pre></div>`) {
		t.Error("nested div lost from question body")
	}
	if !strings.Contains(result.HTML, "<p>Trailer.</p>") {
		t.Error("content after the admonition lost")
	}
}

// TestOnPageContentEmptyAssessment verifies the structural error for an
// assessment without questions.
func TestOnPageContentEmptyAssessment(t *testing.T) {
	page := `<div class="admonition freetext-assessment"><p>title: Empty</p></div>`
	_, err := testProcessor(options.Default()).OnPageContent(page, "docs/empty.md")
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want StructuralError", err)
	}
	if serr.Page != "docs/empty.md" {
		t.Errorf("error page = %q, want %q", serr.Page, "docs/empty.md")
	}
}

// TestOnPageContentDuplicateIDs verifies the structural error when the ID
// source repeats itself.
func TestOnPageContentDuplicateIDs(t *testing.T) {
	p := New(options.Default(), nil)
	p.NewID = func() string { return "samesame" }
	page := questionPage + "\n" + questionPage
	_, err := p.OnPageContent(page, "docs/page.md")
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want StructuralError", err)
	}
	if !strings.Contains(serr.Reason, "duplicate") {
		t.Errorf("reason = %q, want duplicate id report", serr.Reason)
	}
}

// TestOnPageContentDebugDumps verifies before and after dumps are written
// when debugging is on.
func TestOnPageContentDebugDumps(t *testing.T) {
	opts := options.Default()
	opts.Debug = true
	opts.DebugDir = t.TempDir()
	result, err := testProcessor(opts).OnPageContent(questionPage, "docs/page.md")
	if err != nil {
		t.Fatalf("OnPageContent() error = %v", err)
	}

	before, err := os.ReadFile(filepath.Join(opts.DebugDir, "docs_page_before.html"))
	if err != nil {
		t.Fatalf("read before dump: %v", err)
	}
	if string(before) != questionPage {
		t.Error("before dump does not match the input page")
	}
	after, err := os.ReadFile(filepath.Join(opts.DebugDir, "docs_page_after.html"))
	if err != nil {
		t.Fatalf("read after dump: %v", err)
	}
	if string(after) != result.HTML {
		t.Error("after dump does not match the transformed page")
	}
}

// TestFindBlocks verifies opener matching and balanced extraction.
func TestFindBlocks(t *testing.T) {
	src := `<div id="x" class="admonition freetext"><p>A</p><div><span>inner</span></div></div><div class="admonition freetext-assessment"><p>B</p></div>`
	blocks := findBlocks(src, isQuestionAdmonition)
	if len(blocks) != 1 {
		t.Fatalf("question blocks = %d, want 1", len(blocks))
	}
	if want := "<p>A</p><div><span>inner</span></div>"; blocks[0].inner != want {
		t.Errorf("inner = %q, want %q", blocks[0].inner, want)
	}
	if blocks := findBlocks(src, isAssessmentAdmonition); len(blocks) != 1 || blocks[0].inner != "<p>B</p>" {
		t.Errorf("assessment blocks = %+v, want the B block", blocks)
	}
}

// TestFindBlocksUnclosed verifies that an unbalanced admonition is skipped
// rather than swallowing the rest of the page.
func TestFindBlocksUnclosed(t *testing.T) {
	src := `<div class="admonition freetext"><p>open` // no closing tag
	if blocks := findBlocks(src, isQuestionAdmonition); len(blocks) != 0 {
		t.Errorf("blocks = %d, want 0 for unbalanced markup", len(blocks))
	}
}

// TestStripAdmonitionTitle verifies title removal.
func TestStripAdmonitionTitle(t *testing.T) {
	in := "\n<p class=\"admonition-title\">Freetext</p>\n<p>Body</p>\n"
	if got := stripAdmonitionTitle(in); got != "<p>Body</p>" {
		t.Errorf("stripAdmonitionTitle() = %q, want %q", got, "<p>Body</p>")
	}
	if got := stripAdmonitionTitle("\n<p>Body</p>\n"); got != "<p>Body</p>" {
		t.Errorf("stripAdmonitionTitle() without title = %q, want %q", got, "<p>Body</p>")
	}
}
