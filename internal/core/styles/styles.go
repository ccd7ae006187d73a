// Package styles provides shared lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title styles section headers in command output.
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))

	// Muted styles secondary detail like paths and timestamps.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))

	// Success styles completed/archived markers.
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))

	// Warning styles skipped or partial results.
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))

	// Error styles failures.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
)

// StatusIcon maps a result status to a one-glyph marker.
func StatusIcon(status string) string {
	switch status {
	case "completed", "archived":
		return Success.Render("✓")
	case "failed":
		return Error.Render("✗")
	case "skipped":
		return Warning.Render("-")
	default:
		return Muted.Render("·")
	}
}
