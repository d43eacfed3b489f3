package live

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"freetext/internal/site"
)

// formatPage truncates long page paths for display.
func formatPage(page string) string {
	const limit = 48
	if len(page) <= limit {
		return page
	}
	return "..." + page[len(page)-limit+3:]
}

// formatStatus renders the status cell for a row.
func formatStatus(row PageRow, noColor bool) string {
	return stylizeStatus(string(row.Status), row.Status, noColor)
}

// formatCount formats a widget count for display.
func formatCount(value int) string {
	if value <= 0 {
		return "-"
	}
	return fmtInt(value)
}

// formatWarnings formats a warning count for display.
func formatWarnings(value int) string {
	if value <= 0 {
		return ""
	}
	return fmtInt(value)
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row PageRow, now time.Time) string {
	if row.Duration > 0 {
		return formatDuration(row.Duration)
	}
	if row.Status == StatusBuilding && !row.StartedAt.IsZero() {
		return formatDuration(now.Sub(row.StartedAt))
	}
	return ""
}

// formatDuration renders a rounded duration for display.
func formatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	return duration.Round(time.Millisecond).String()
}

// formatBuildEnd formats a build completion message.
func formatBuildEnd(summary site.Summary) string {
	line := fmt.Sprintf("Build finished: %d pages in %s", summary.Pages, formatDuration(summary.Duration))
	if summary.Failed > 0 {
		line += fmt.Sprintf(" (%d failed)", summary.Failed)
	}
	return line
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status PageStatus, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status PageStatus) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case StatusBuilt:
		color = lipgloss.Color("42")
	case StatusFailed:
		color = lipgloss.Color("196")
	case StatusBuilding:
		color = lipgloss.Color("33")
	case StatusPending:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}
