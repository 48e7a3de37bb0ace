package studio

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	subtitle  lipgloss.Style
	hint      lipgloss.Style
	label     lipgloss.Style
	focused   lipgloss.Style
	notice    lipgloss.Style
	errNotice lipgloss.Style
	tabActive lipgloss.Style
	tab       lipgloss.Style
	pane      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		hint:      lipgloss.NewStyle().Faint(true),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		focused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("173")),
		notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		errNotice: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		tabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("173")).Underline(true),
		tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		pane:      lipgloss.NewStyle().MarginTop(1),
	}
}
