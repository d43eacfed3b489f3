package plugin

import (
	"strings"
	"testing"

	"freetext/internal/options"
)

const pageShell = `<html><head><title>T</title></head><body>B</body></html>`

func questionResult() PageResult {
	return PageResult{
		HasQuestions: true,
		Scripts:      []string{"function a() {}"},
		DOMReady:     []string{"a();"},
	}
}

// TestOnPostPageInjection verifies script placement at the start of head
// and stylesheet placement before the closing head tag.
func TestOnPostPageInjection(t *testing.T) {
	p := New(options.Default(), nil)
	out := p.OnPostPage(pageShell, questionResult())

	script := strings.Index(out, "<script>")
	title := strings.Index(out, "<title>")
	style := strings.Index(out, "<style>")
	headClose := strings.Index(out, "</head>")
	if script < 0 || title < 0 || style < 0 || headClose < 0 {
		t.Fatalf("missing injected blocks in %q", out)
	}
	if script > title {
		t.Error("script block not at the start of head")
	}
	if style < title || style > headClose {
		t.Error("stylesheet not inside head before its closing tag")
	}
	if !strings.Contains(out, "function a() {}") {
		t.Error("widget functions missing")
	}
	if !strings.Contains(out, "document.addEventListener('DOMContentLoaded', function() {\n    a();\n});") {
		t.Error("DOM-ready block missing or misassembled")
	}
}

// TestOnPostPageWithoutQuestions verifies pages without widgets pass
// through unchanged.
func TestOnPostPageWithoutQuestions(t *testing.T) {
	p := New(options.Default(), nil)
	if out := p.OnPostPage(pageShell, PageResult{}); out != pageShell {
		t.Errorf("output changed: %q", out)
	}
}

// TestOnPostPageCSSDisabled verifies the stylesheet is withheld when
// enable_css is off.
func TestOnPostPageCSSDisabled(t *testing.T) {
	opts := options.Default()
	opts.EnableCSS = false
	out := New(opts, nil).OnPostPage(pageShell, questionResult())
	if strings.Contains(out, "<style>") {
		t.Error("stylesheet injected while disabled")
	}
	if !strings.Contains(out, "<script>") {
		t.Error("script block missing")
	}
}

// TestOnPostPageWithoutHead verifies the prepend fallbacks for documents
// lacking head tags.
func TestOnPostPageWithoutHead(t *testing.T) {
	p := New(options.Default(), nil)
	out := p.OnPostPage("<body>B</body>", questionResult())
	script := strings.Index(out, "<script>")
	if script < 0 || script > strings.Index(out, "<body>") {
		t.Error("script block not prepended")
	}
	if !strings.Contains(out, "<style>") {
		t.Error("stylesheet missing")
	}
}

// TestConsolidateScripts verifies function joining and the single
// DOM-ready handler.
func TestConsolidateScripts(t *testing.T) {
	js := ConsolidateScripts(
		[]string{"function a() {}", "function b() {}"},
		[]string{"a();", "b();\nc();"},
	)
	if !strings.Contains(js, "function a() {}\n\nfunction b() {}") {
		t.Error("function blocks not joined")
	}
	if got := strings.Count(js, "DOMContentLoaded"); got != 1 {
		t.Errorf("DOMContentLoaded handlers = %d, want 1", got)
	}
	for _, want := range []string{"    a();", "    b();", "    c();"} {
		if !strings.Contains(js, want) {
			t.Errorf("DOM-ready block missing %q", want)
		}
	}
}

// TestConsolidateScriptsEmpty verifies that no handler is produced without
// DOM-ready statements.
func TestConsolidateScriptsEmpty(t *testing.T) {
	if js := ConsolidateScripts(nil, nil); js != "" {
		t.Errorf("ConsolidateScripts(nil, nil) = %q, want empty", js)
	}
	js := ConsolidateScripts([]string{"function a() {}"}, nil)
	if strings.Contains(js, "DOMContentLoaded") {
		t.Error("empty DOM-ready produced a handler")
	}
}
