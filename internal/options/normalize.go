package options

import "strings"

// Normalize fills empty or zero option values from the defaults.
func Normalize(opts *Options) {
	defaults := Default()
	if strings.TrimSpace(opts.QuestionClass) == "" {
		opts.QuestionClass = defaults.QuestionClass
	}
	if strings.TrimSpace(opts.AssessmentClass) == "" {
		opts.AssessmentClass = defaults.AssessmentClass
	}
	if strings.TrimSpace(opts.AnswerClass) == "" {
		opts.AnswerClass = defaults.AnswerClass
	}
	if strings.TrimSpace(opts.ContainerClass) == "" {
		opts.ContainerClass = defaults.ContainerClass
	}
	if opts.DefaultAnswerRows == 0 {
		opts.DefaultAnswerRows = defaults.DefaultAnswerRows
	}
	if opts.DefaultLongRows == 0 {
		opts.DefaultLongRows = defaults.DefaultLongRows
	}
	if opts.DefaultPlaceholder == "" {
		opts.DefaultPlaceholder = defaults.DefaultPlaceholder
	}
	if strings.TrimSpace(opts.DefaultType) == "" {
		opts.DefaultType = defaults.DefaultType
	}
	if strings.TrimSpace(opts.DebugDir) == "" {
		opts.DebugDir = defaults.DebugDir
	}
}
