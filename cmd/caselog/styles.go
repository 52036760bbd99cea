package main

import "github.com/charmbracelet/lipgloss"

// Terminal styles for list and stats output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("63")).
			PaddingLeft(1).
			MarginBottom(1)

	doneCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("35")).
			Faint(true)

	badgeDone = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35")).
			SetString("[done]")

	badgeTodo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			SetString("[to finish]")

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("63"))

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("245"))
)
