package widget

import (
	"fmt"
	"strings"

	"freetext/internal/options"
)

// Stylesheet returns the widget stylesheet wrapped in a style tag,
// parameterized by the configured container classes. With dark mode support
// the colors reference Material theme variables so the widgets follow the
// active palette; without it the static fallback colors are used directly.
func Stylesheet(opts options.Options) string {
	css := fmt.Sprintf(stylesheetTemplate, opts.QuestionClass, opts.AssessmentClass)
	if !opts.DarkModeSupport {
		css = stripThemeVars(css)
	}
	return css
}

// stripThemeVars rewrites every var(--name, fallback) expression to its
// fallback value. Values here never contain nested parentheses.
func stripThemeVars(css string) string {
	var b strings.Builder
	b.Grow(len(css))
	for {
		start := strings.Index(css, "var(--")
		if start < 0 {
			b.WriteString(css)
			return b.String()
		}
		end := strings.IndexByte(css[start:], ')')
		if end < 0 {
			b.WriteString(css)
			return b.String()
		}
		expr := css[start : start+end]
		b.WriteString(css[:start])
		if comma := strings.IndexByte(expr, ','); comma >= 0 {
			b.WriteString(strings.TrimSpace(expr[comma+1:]))
		}
		css = css[start+end+1:]
	}
}

const stylesheetTemplate = `
<style>
.%[1]s, .%[2]s {
    margin: 20px 0;
    padding: 20px;
    background-color: var(--md-code-bg-color, #f5f5f5);
    border: 1px solid var(--md-default-fg-color--lighter, #e1e4e8);
    border-radius: 8px;
    color: var(--md-default-fg-color, #333333);
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
}

.question-header, .assessment-header {
    margin-bottom: 15px;
    display: flex;
    justify-content: space-between;
    align-items: center;
    flex-wrap: wrap;
    gap: 10px;
}

.question-header h4, .question-header h5, .assessment-header h3, .question-text {
    margin: 0;
    color: var(--md-default-fg-color, #333333) !important;
    font-weight: 600;
    font-size: 1.1em;
    line-height: 1.4;
    flex: 1;
    text-transform: none !important;
}

.question-text {
    font-size: 1em;
    line-height: 1.5;
}

.question-text p {
    margin: 0 0 10px 0;
}

.question-text p:last-child {
    margin-bottom: 0;
}

.question-text img {
    max-width: 100%%;
    height: auto;
    border-radius: 4px;
    margin: 10px 0;
}

.question-text a {
    color: var(--md-primary-fg-color, #0366d6) !important;
    text-decoration: none;
}

.question-text a:hover {
    text-decoration: underline;
}

.question-text pre {
    background-color: var(--md-code-bg-color, #ffffff);
    border: 1px solid var(--md-default-fg-color--lighter, #e1e4e8);
    border-radius: 4px;
    padding: 12px;
    margin: 10px 0;
    overflow-x: auto;
    font-size: 0.9em;
}

.question-text code {
    background-color: var(--md-code-bg-color, #ffffff);
    padding: 2px 4px;
    border-radius: 3px;
    font-size: 0.9em;
    font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
    border: 1px solid var(--md-default-fg-color--lighter, #e1e4e8);
}

.question-text .mermaid {
    text-align: center;
    margin: 15px 0;
    background-color: var(--md-default-bg-color, #ffffff);
    border: 1px solid var(--md-default-fg-color--lighter, #e1e4e8);
    border-radius: 4px;
    padding: 10px;
}

.question-number {
    font-weight: 600;
    margin-right: 8px;
    color: var(--md-default-fg-color, #333333);
}

.marks, .total-marks {
    background-color: var(--md-primary-fg-color, #0366d6);
    color: white;
    padding: 4px 8px;
    border-radius: 12px;
    font-size: 12px;
    font-weight: 600;
    white-space: nowrap;
}

.answer-section {
    margin: 15px 0;
}

.%[1]s textarea, .assessment-question textarea {
    width: 100%%;
    padding: 12px;
    border: 1px solid var(--md-default-fg-color--lighter, #d1d5da);
    border-radius: 4px;
    font-size: 14px;
    line-height: 1.5;
    resize: vertical;
    font-family: inherit;
    background-color: var(--md-default-bg-color, #ffffff);
    color: var(--md-default-fg-color, #333333);
    box-sizing: border-box;
    min-height: 80px;
}

.%[1]s textarea:focus, .assessment-question textarea:focus {
    outline: none;
    border-color: var(--md-primary-fg-color, #0366d6);
}

.char-count {
    text-align: right;
    font-size: 12px;
    color: var(--md-default-fg-color--light, #666666);
    margin-top: 5px;
}

.button-group, .assessment-buttons {
    margin-top: 15px;
}

.submit-btn, .submit-assessment-btn {
    padding: 8px 16px;
    border: none;
    border-radius: 4px;
    font-size: 14px;
    font-weight: 500;
    cursor: pointer;
    background-color: var(--md-primary-fg-color, #0366d6);
    color: white;
}

.submit-btn:hover, .submit-assessment-btn:hover {
    background-color: var(--md-primary-fg-color--dark, #0256cc);
}

.feedback, .assessment-feedback {
    margin-top: 15px;
    padding: 12px;
    border-radius: 4px;
}

.feedback .success, .assessment-feedback .success {
    background-color: var(--md-typeset-color, #d4edda);
    border: 1px solid var(--md-typeset-color, #c3e6cb);
    color: var(--md-typeset-color, #155724);
}

.feedback .warning, .assessment-feedback .warning {
    background-color: var(--md-code-bg-color, #fff3cd);
    border: 1px solid var(--md-default-fg-color--lighter, #ffeaa7);
    color: var(--md-default-fg-color, #856404);
}

.feedback .answer-display {
    background-color: var(--md-code-bg-color, #e2f3ff);
    border: 1px solid var(--md-primary-fg-color--light, #b6dbff);
    color: var(--md-primary-fg-color, #0366d6);
    margin-top: 10px;
}

.assessment-question {
    margin: 15px 0;
    padding: 15px;
    background-color: var(--md-code-bg-color, #f5f5f5);
    border-radius: 6px;
    color: var(--md-default-fg-color, #333333);
}

.assessment-header h3 {
    font-size: 1.2em;
    margin: 0;
    color: var(--md-default-fg-color, #333333) !important;
}

@media (max-width: 768px) {
    .%[1]s, .%[2]s {
        padding: 15px;
        margin: 15px 0;
    }

    .question-header, .assessment-header {
        flex-direction: column;
        align-items: flex-start;
        gap: 10px;
    }
}
</style>
`
