package tui

import "github.com/charmbracelet/lipgloss"

var (
	// HeaderStyle styles headline text.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// FaintStyle styles secondary detail text.
	FaintStyle = lipgloss.NewStyle().Faint(true)

	// SuccessStyle styles positive outcomes.
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// ErrorStyle styles failures.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
