package site

import "time"

// PageBuild reports the outcome of building one page.
type PageBuild struct {
	// Page is the source path relative to the build root.
	Page string
	// OutputPath is the written file relative to the output root, empty
	// when the page failed.
	OutputPath  string
	Questions   int
	Assessments int
	Warnings    int
	Err         error
	Duration    time.Duration
}

// Summary aggregates a directory build.
type Summary struct {
	Pages       int
	Failed      int
	Questions   int
	Assessments int
	Warnings    int
	Duration    time.Duration
}

// BuildObserver receives build lifecycle events for UI or logging.
type BuildObserver interface {
	// OnBuildStart signals the start of a build with the page count.
	OnBuildStart(pages int)
	// OnPageStart signals that a page build began.
	OnPageStart(page string)
	// OnPageDone delivers the outcome of one page.
	OnPageDone(result PageBuild)
	// OnBuildEnd signals build completion.
	OnBuildEnd(summary Summary)
}
