package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the column layout used before the first resize.
func defaultColumns() []table.Column {
	return columnsForWidth(96)
}

// columnsForWidth sizes the column layout for a terminal width.
func columnsForWidth(width int) []table.Column {
	page := width - 48
	if page < 24 {
		page = 24
	}
	return []table.Column{
		{Title: "Page", Width: page},
		{Title: "Status", Width: 8},
		{Title: "Questions", Width: 9},
		{Title: "Assessments", Width: 11},
		{Title: "Warnings", Width: 8},
		{Title: "Time", Width: 8},
	}
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatPage(row.Page),
			formatStatus(row, noColor),
			formatCount(row.Questions),
			formatCount(row.Assessments),
			formatWarnings(row.Warnings),
			formatRowDuration(row, now),
		})
	}
	return rows
}
