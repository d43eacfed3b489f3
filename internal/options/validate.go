package options

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with an option field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates option validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "options validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks option values for correctness.
func Validate(opts *Options) error {
	collector := &issueCollector{}

	validateClass(collector, "question_class", opts.QuestionClass)
	validateClass(collector, "assessment_class", opts.AssessmentClass)
	validateClass(collector, "answer_class", opts.AnswerClass)
	validateClass(collector, "container_class", opts.ContainerClass)
	if opts.AssessmentClass != "" && opts.AssessmentClass == opts.QuestionClass {
		collector.add("assessment_class", "must differ from question_class")
	}

	if opts.DefaultAnswerRows <= 0 {
		collector.add("default_answer_rows", fmt.Sprintf("must be positive, got %d", opts.DefaultAnswerRows))
	}
	if opts.DefaultLongRows <= 0 {
		collector.add("default_long_answer_rows", fmt.Sprintf("must be positive, got %d", opts.DefaultLongRows))
	}
	if opts.DefaultMarks < 0 {
		collector.add("default_marks", fmt.Sprintf("must not be negative, got %d", opts.DefaultMarks))
	}
	if opts.DefaultType != TypeShort && opts.DefaultType != TypeLong {
		collector.add("default_question_type", fmt.Sprintf("unknown type %q (expected short or long)", opts.DefaultType))
	}
	if opts.Debug && strings.TrimSpace(opts.DebugDir) == "" {
		collector.add("debug_dir", "is required when debug is enabled")
	}

	return collector.result()
}

// validateClass checks that a CSS class option is a usable class token.
func validateClass(collector *issueCollector, field, value string) {
	if strings.TrimSpace(value) == "" {
		collector.add(field, "is required")
		return
	}
	if strings.ContainsAny(value, " \t\n\"'<>") {
		collector.add(field, fmt.Sprintf("invalid class name %q", value))
	}
}
