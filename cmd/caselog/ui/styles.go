package ui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used by the form.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Value    lipgloss.Style
	Hint     lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22),
		Focused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Width(22),
		Value:    lipgloss.NewStyle(),
		Hint:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
	}
}
