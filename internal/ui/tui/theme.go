package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	StepActive  lipgloss.Style
	StepDone    lipgloss.Style
	StepPending lipgloss.Style

	Label   lipgloss.Style
	Focused lipgloss.Style
	Toast   lipgloss.Style
	Error   lipgloss.Style

	// GlamourStyle names the glamour style used for the export preview.
	GlamourStyle string
}

func DefaultTheme() Theme {
	accent := lipgloss.Color("63")
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),

		StepActive:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		StepDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StepPending: lipgloss.NewStyle().Faint(true),

		Label:   lipgloss.NewStyle().Bold(true),
		Focused: lipgloss.NewStyle().Foreground(accent),
		Toast:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		GlamourStyle: "dark",
	}
}
