package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the build header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	finished := state.Counts.Built + state.Counts.Failed
	line := "Building site"
	if state.TotalPages > 0 {
		line += " | Pages: " + fmtInt(finished) + "/" + fmtInt(state.TotalPages)
	}
	if !state.StartedAt.IsZero() {
		elapsed := now.Sub(state.StartedAt).Round(100 * time.Millisecond)
		line += " | Elapsed: " + elapsed.String()
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the aggregate counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Building: " + fmtInt(counts.Building) +
		" Built: " + fmtInt(counts.Built) +
		" Failed: " + fmtInt(counts.Failed) +
		" Questions: " + fmtInt(counts.Questions) +
		" Assessments: " + fmtInt(counts.Assessments) +
		" Warnings: " + fmtInt(counts.Warnings)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
