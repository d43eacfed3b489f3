package live

import "time"

// PageStatus tracks where a page is in the build.
type PageStatus string

const (
	// StatusPending marks a page that has not started building yet.
	StatusPending PageStatus = "pending"
	// StatusBuilding marks a page that is currently being built.
	StatusBuilding PageStatus = "building"
	// StatusBuilt marks a page that was built successfully.
	StatusBuilt PageStatus = "built"
	// StatusFailed marks a page whose build failed.
	StatusFailed PageStatus = "failed"
)

// PageRow holds UI state for a single page build.
type PageRow struct {
	Index       int
	Page        string
	Status      PageStatus
	Questions   int
	Assessments int
	Warnings    int
	StartedAt   time.Time
	FinishedAt  time.Time
	Duration    time.Duration
	Err         string
}

// StatusCounts aggregates counts across all page rows.
type StatusCounts struct {
	Pending     int
	Building    int
	Built       int
	Failed      int
	Questions   int
	Assessments int
	Warnings    int
}

// State captures the live UI state for a site build.
type State struct {
	TotalPages int
	StartedAt  time.Time
	LastEvent  string
	Rows       []PageRow
	Counts     StatusCounts
}
