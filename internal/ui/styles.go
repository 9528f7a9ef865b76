package ui

import "github.com/charmbracelet/lipgloss"

// Styles are the text styles used when rendering command output.
type Styles struct {
	Highlight lipgloss.Style
	Dim       lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
}

// DefaultStyles returns the terminal styles. lipgloss drops the colours
// when stdout is not a terminal.
func DefaultStyles() Styles {
	return Styles{
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Bold:      lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() Styles {
	return Styles{
		Highlight: lipgloss.NewStyle(),
		Dim:       lipgloss.NewStyle(),
		Bold:      lipgloss.NewStyle(),
		Muted:     lipgloss.NewStyle(),
	}
}
