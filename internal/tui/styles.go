// Package tui provides a Bubble Tea terminal view of the album catalog: a
// paged strip of cover cards above the expandable album/song outline.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C757D")).
			Padding(0, 1).
			Width(cardWidth)

	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	albumStyle = lipgloss.NewStyle().
			Bold(true)

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	flashStyle = lipgloss.NewStyle().
			Reverse(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

const (
	// cardWidth is the inner width of one cover card
	cardWidth = 18
	// cardOuterWidth adds the border and one column of spacing
	cardOuterWidth = cardWidth + 3
	// songIndent nests song rows under their album
	songIndent = "    "
)
