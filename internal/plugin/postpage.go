package plugin

import (
	"strings"

	"freetext/internal/widget"
)

// OnPostPage injects the consolidated script block and the stylesheet into
// a full page document. Pages without questions pass through untouched.
// Scripts go to the start of head so the handlers exist before the widgets
// that reference them; the stylesheet goes before the closing head tag.
func (p *Processor) OnPostPage(output string, page PageResult) string {
	if !page.HasQuestions {
		return output
	}

	if js := ConsolidateScripts(page.Scripts, page.DOMReady); js != "" {
		scriptBlock := "\n<script>\n" + js + "\n</script>\n"
		if idx := strings.Index(output, "<head>"); idx >= 0 {
			at := idx + len("<head>")
			output = output[:at] + scriptBlock + output[at:]
		} else if idx := strings.Index(output, "</head>"); idx >= 0 {
			output = output[:idx] + scriptBlock + output[idx:]
		} else {
			output = scriptBlock + output
		}
	}

	if p.opts.EnableCSS {
		css := widget.Stylesheet(p.opts)
		if idx := strings.Index(output, "</head>"); idx >= 0 {
			output = output[:idx] + css + "\n" + output[idx:]
		} else {
			output = css + "\n" + output
		}
	}
	return output
}

// ConsolidateScripts joins widget function blocks and folds all DOM-ready
// statements into a single DOMContentLoaded handler.
func ConsolidateScripts(functions, domReady []string) string {
	parts := make([]string, 0, len(functions)+1)
	for _, fn := range functions {
		if strings.TrimSpace(fn) != "" {
			parts = append(parts, fn)
		}
	}

	var ready []string
	for _, r := range domReady {
		for _, line := range strings.Split(r, "\n") {
			if strings.TrimSpace(line) != "" {
				ready = append(ready, "    "+line)
			}
		}
	}
	if len(ready) > 0 {
		parts = append(parts,
			"document.addEventListener('DOMContentLoaded', function() {\n"+
				strings.Join(ready, "\n")+"\n});")
	}
	return strings.Join(parts, "\n\n")
}
