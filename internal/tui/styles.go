// Package tui holds the lipgloss styles shared by the command output.
package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the taskwell theme.
const (
	ColorPrimaryText   = "#E6EAF2" // titles, field labels
	ColorSecondaryText = "#B1B8C7" // metadata, descriptions
	ColorDisabledText  = "#6D7383" // completed/trashed items
	ColorAccent        = "#7C3AED" // headers, highlights
	ColorError         = "#EF4444"
	ColorSuccess       = "#22C55E"
	ColorWarning       = "#F59E0B"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent))

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	DoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Strikethrough(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))
)

// PriorityStyle picks a color per priority name.
func PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	case "medium":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	}
	return MutedStyle
}
