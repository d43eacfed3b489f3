package live

import "fmt"

// Reduce applies a page build event to the UI state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventPageStart:
		state = ensureRow(state, event.Page)
		state = applyPageStart(state, event)
	case EventPageDone:
		state = ensureRow(state, event.Result.Page)
		state = applyPageDone(state, event)
	}
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the named page.
func ensureRow(state State, page string) State {
	if page == "" || rowIndex(state.Rows, page) >= 0 {
		return state
	}
	rows := make([]PageRow, len(state.Rows)+1)
	copy(rows, state.Rows)
	rows[len(rows)-1] = PageRow{Index: len(rows) - 1, Page: page, Status: StatusPending}
	state.Rows = rows
	return state
}

// rowIndex locates the row for a page, returning -1 when absent.
func rowIndex(rows []PageRow, page string) int {
	for i := range rows {
		if rows[i].Page == page {
			return i
		}
	}
	return -1
}

// applyPageStart marks a page row as building.
func applyPageStart(state State, event Event) State {
	i := rowIndex(state.Rows, event.Page)
	if i < 0 {
		return state
	}
	row := state.Rows[i]
	row.Status = StatusBuilding
	if row.StartedAt.IsZero() {
		row.StartedAt = event.At
	}
	state.Rows[i] = row
	return state
}

// applyPageDone records a finished page result on its row.
func applyPageDone(state State, event Event) State {
	i := rowIndex(state.Rows, event.Result.Page)
	if i < 0 {
		return state
	}
	row := state.Rows[i]
	row.Questions = event.Result.Questions
	row.Assessments = event.Result.Assessments
	row.Warnings = event.Result.Warnings
	row.Duration = event.Result.Duration
	if !event.At.IsZero() {
		row.FinishedAt = event.At
	}
	if event.Result.Err != nil {
		row.Status = StatusFailed
		row.Err = event.Result.Err.Error()
	} else {
		row.Status = StatusBuilt
	}
	state.Rows[i] = row
	return state
}

// recount recomputes aggregate counts for the current rows.
func recount(rows []PageRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		counts.Questions += row.Questions
		counts.Assessments += row.Assessments
		counts.Warnings += row.Warnings
		switch row.Status {
		case StatusPending:
			counts.Pending++
		case StatusBuilding:
			counts.Building++
		case StatusBuilt:
			counts.Built++
		case StatusFailed:
			counts.Failed++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event Event) string {
	switch event.Kind {
	case EventPageStart:
		return "building " + event.Page
	case EventPageDone:
		result := event.Result
		if result.Err != nil {
			return fmt.Sprintf("%s failed: %s", result.Page, result.Err)
		}
		if result.Warnings > 0 {
			return fmt.Sprintf("%s built (%d warnings)", result.Page, result.Warnings)
		}
		return result.Page + " built"
	}
	return ""
}
