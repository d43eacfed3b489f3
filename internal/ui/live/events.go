package live

import (
	"time"

	"freetext/internal/site"
)

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventBuildStart signals the start of a site build.
	EventBuildStart EventKind = iota
	// EventPageStart signals that a page has started building.
	EventPageStart
	// EventPageDone delivers a finished page result.
	EventPageDone
	// EventBuildEnd signals build completion.
	EventBuildEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind    EventKind
	At      time.Time
	Pages   int
	Page    string
	Result  site.PageBuild
	Summary site.Summary
}
