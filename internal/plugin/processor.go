package plugin

import (
	"fmt"

	"go.uber.org/zap"

	"freetext/internal/options"
	"freetext/internal/question"
	"freetext/internal/widget"
)

// Processor transforms rendered page HTML, replacing freetext admonitions
// with interactive widgets. One Processor serves a whole build; it keeps no
// per-page state.
type Processor struct {
	opts   options.Options
	logger *zap.Logger

	// NewID generates widget identifiers. Tests override it for
	// deterministic markup.
	NewID func() string
}

// New returns a Processor for the given options. A nil logger disables
// logging.
func New(opts options.Options, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{opts: opts, logger: logger, NewID: widget.NewID}
}

// PageResult carries everything OnPageContent produced for one page.
type PageResult struct {
	// HTML is the page body with admonitions replaced by widgets.
	HTML string
	// Scripts holds one function block per widget.
	Scripts []string
	// DOMReady holds statements for the consolidated DOMContentLoaded
	// handler.
	DOMReady []string
	// HasQuestions reports whether any widget was generated.
	HasQuestions bool
	Questions    int
	Assessments  int
	Warnings     []question.Warning
}

// StructuralError reports a page whose widgets cannot be generated safely.
type StructuralError struct {
	Page   string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("page %s: %s", e.Page, e.Reason)
}

// questionDefaults maps the option surface onto parser defaults.
func questionDefaults(opts options.Options) question.Defaults {
	return question.Defaults{
		Marks:       opts.DefaultMarks,
		Type:        question.Type(opts.DefaultType),
		ShortRows:   opts.DefaultAnswerRows,
		LongRows:    opts.DefaultLongRows,
		Placeholder: opts.DefaultPlaceholder,
		ShowAnswer:  opts.DefaultShowAnswer,
	}
}

// logWarnings reports recovered config problems with page context.
func (p *Processor) logWarnings(pagePath string, warns []question.Warning) {
	for _, w := range warns {
		p.logger.Warn("config warning",
			zap.String("page", pagePath),
			zap.String("field", w.Field),
			zap.String("message", w.Message))
	}
}
