package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header     lipgloss.Style
	UserName   lipgloss.Style
	BotName    lipgloss.Style
	Body       lipgloss.Style
	Bold       lipgloss.Style
	Disclaimer lipgloss.Style
	Suggestion lipgloss.Style
	Status     lipgloss.Style
	Input      lipgloss.Style
}

func DefaultStyles() Styles {
	accent := lipgloss.Color("#7D56F4")
	muted := lipgloss.Color("#8A8A8A")

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(accent).
			Padding(0, 1),
		UserName:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		BotName:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Body:       lipgloss.NewStyle(),
		Bold:       lipgloss.NewStyle().Bold(true),
		Disclaimer: lipgloss.NewStyle().Italic(true).Foreground(muted),
		Suggestion: lipgloss.NewStyle().Foreground(accent),
		Status:     lipgloss.NewStyle().Foreground(muted),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
	}
}
