// Package styles provides shared lipgloss styles for the todoloop TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7"))

	PendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))

	DoneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("#565f89"))

	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7dcfff"))

	FilterOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9ece6a"))

	FilterOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e"))
)
