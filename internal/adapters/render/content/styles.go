package content

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	section  lipgloss.Style
	artifact lipgloss.Style
	heading  lipgloss.Style
	subhead  lipgloss.Style
	bullet   lipgloss.Style
	emphasis lipgloss.Style
	body     lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:  lipgloss.NewStyle().MarginTop(1),
		artifact: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		subhead:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		emphasis: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("173")),
		body:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
