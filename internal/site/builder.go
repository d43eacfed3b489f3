package site

import (
	"fmt"
	"html"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"freetext/internal/htmltext"
	"freetext/internal/options"
	"freetext/internal/plugin"
)

// Builder renders markdown pages and applies the widget transform.
type Builder struct {
	renderer  *Renderer
	processor *plugin.Processor
	logger    *zap.Logger

	// Observer receives build progress events; nil disables reporting.
	Observer BuildObserver
}

// NewBuilder returns a Builder for the given options. A nil logger disables
// logging.
func NewBuilder(opts options.Options, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		renderer:  NewRenderer(),
		processor: plugin.New(opts, logger),
		logger:    logger,
	}
}

// BuildPage renders one markdown page into a complete HTML document:
// markdown to body HTML, widget transform, document shell, script and
// style injection.
func (b *Builder) BuildPage(markdown []byte, pagePath string) (string, plugin.PageResult, error) {
	body, err := b.renderer.Render(markdown)
	if err != nil {
		return "", plugin.PageResult{}, err
	}
	result, err := b.processor.OnPageContent(body, pagePath)
	if err != nil {
		return "", plugin.PageResult{}, err
	}
	doc := documentShell(pageTitle(result.HTML, pagePath), result.HTML)
	return b.processor.OnPostPage(doc, result), result, nil
}

// BuildDir builds every markdown page under srcDir into outDir, mirroring
// the directory layout. Page failures are reported and counted; the build
// continues and returns an error only in the final summary.
func (b *Builder) BuildDir(srcDir, outDir string) (Summary, error) {
	pages, err := listPages(srcDir)
	if err != nil {
		return Summary{}, err
	}
	start := time.Now()
	if b.Observer != nil {
		b.Observer.OnBuildStart(len(pages))
	}

	summary := Summary{Pages: len(pages)}
	for _, rel := range pages {
		result := b.buildOne(srcDir, outDir, rel)
		summary.Questions += result.Questions
		summary.Assessments += result.Assessments
		summary.Warnings += result.Warnings
		if result.Err != nil {
			summary.Failed++
			b.logger.Error("page build failed",
				zap.String("page", rel), zap.Error(result.Err))
		}
		if b.Observer != nil {
			b.Observer.OnPageDone(result)
		}
	}
	summary.Duration = time.Since(start)
	if b.Observer != nil {
		b.Observer.OnBuildEnd(summary)
	}
	if summary.Failed > 0 {
		return summary, fmt.Errorf("%d of %d pages failed", summary.Failed, summary.Pages)
	}
	return summary, nil
}

func (b *Builder) buildOne(srcDir, outDir, rel string) (result PageBuild) {
	if b.Observer != nil {
		b.Observer.OnPageStart(rel)
	}
	start := time.Now()
	result = PageBuild{Page: rel}
	defer func() { result.Duration = time.Since(start) }()

	markdown, err := os.ReadFile(filepath.Join(srcDir, rel))
	if err != nil {
		result.Err = fmt.Errorf("read page: %w", err)
		return result
	}
	doc, page, err := b.BuildPage(markdown, rel)
	if err != nil {
		result.Err = err
		return result
	}

	outRel := strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
	outPath := filepath.Join(outDir, outRel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		result.Err = fmt.Errorf("create output directory: %w", err)
		return result
	}
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		result.Err = fmt.Errorf("write page: %w", err)
		return result
	}

	result.OutputPath = outRel
	result.Questions = page.Questions
	result.Assessments = page.Assessments
	result.Warnings = len(page.Warnings)
	return result
}

// listPages returns the markdown files under root as relative paths.
func listPages(root string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		pages = append(pages, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return pages, nil
}

// documentShell wraps body HTML in a minimal HTML5 document.
func documentShell(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// pageTitle takes the first top-level heading, falling back to the file
// name.
func pageTitle(body, pagePath string) string {
	if start := strings.Index(body, "<h1"); start >= 0 {
		rest := body[start:]
		if gt := strings.IndexByte(rest, '>'); gt >= 0 {
			rest = rest[gt+1:]
			if end := strings.Index(rest, "</h1>"); end >= 0 {
				if title := htmltext.FlattenLine(rest[:end]); title != "" {
					return title
				}
			}
		}
	}
	stem := filepath.Base(pagePath)
	return strings.TrimSuffix(stem, filepath.Ext(stem))
}
