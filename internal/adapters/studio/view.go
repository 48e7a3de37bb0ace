package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marketcrew/mc-cli/internal/adapters/render/content"
	"github.com/marketcrew/mc-cli/internal/domain"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view.Screen {
	case domain.ScreenHome:
		return m.viewHome()
	case domain.ScreenAuth:
		return m.viewAuth()
	default:
		return m.viewApp()
	}
}

func (m Model) viewHome() string {
	lines := []string{
		m.styles.title.Render("MarketCrew Studio"),
		m.styles.subtitle.Render("AI marketing content for your brand"),
		"",
	}
	if m.session.IsLoggedIn() {
		lines = append(lines, m.styles.label.Render("a")+"  back to the studio ("+m.session.Email+")")
	}
	lines = append(lines,
		m.styles.label.Render("l")+"  sign in",
		m.styles.label.Render("s")+"  create an account",
		m.styles.label.Render("q")+"  quit",
		"",
		m.styles.hint.Render("No account yet? Run `mc request-access` to ask for one."),
	)
	lines = append(lines, m.statusLines()...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewAuth() string {
	heading := "Sign In"
	toggle := "ctrl+t sign up instead"
	if m.view.Mode == domain.AuthModeSignup {
		heading = "Create Account"
		toggle = "ctrl+t sign in instead"
	}

	lines := []string{
		m.styles.title.Render(heading),
		"",
		m.authInputs[0].View(),
		m.authInputs[1].View(),
		"",
		m.styles.hint.Render("enter submit • tab switch field • " + toggle + " • esc back"),
	}
	if m.authBusy {
		lines = append(lines, m.styles.subtitle.Render("Contacting server..."))
	}
	lines = append(lines, m.statusLines()...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewApp() string {
	lines := []string{
		m.styles.title.Render("MarketCrew Studio") + m.styles.subtitle.Render("  "+m.session.Email),
		"",
	}

	lines = append(lines, m.formLines()...)
	lines = append(lines, "")

	if m.generating {
		lines = append(lines, m.spinner.View()+m.styles.subtitle.Render(" Generating content..."))
	} else {
		lines = append(lines, m.styles.hint.Render("ctrl+g generate • ctrl+d download • ctrl+e email • ctrl+l sign out • esc home"))
	}

	if m.emailActive {
		lines = append(lines,
			"",
			m.styles.label.Render("Email content to:"),
			m.emailInput.View(),
			m.styles.hint.Render("enter send • esc cancel"),
		)
	}

	lines = append(lines, m.statusLines()...)

	if pane := m.resultsPane(); pane != "" {
		lines = append(lines, m.styles.pane.Render(pane))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) formLines() []string {
	labels := []string{"Brand", "Industry", "Audience", "Goals", "Products"}
	lines := make([]string, 0, fieldCount+1)

	for i := range m.fields {
		label := m.styles.label.Render(fmt.Sprintf("%-10s", labels[i]))
		if i == m.appFocus {
			label = m.styles.focused.Render(fmt.Sprintf("%-10s", labels[i]))
		}
		lines = append(lines, label+m.fields[i].View())
	}

	tone := m.styles.label.Render(fmt.Sprintf("%-10s", "Tone"))
	value := string(domain.Tones[m.toneIndex])
	if m.appFocus == focusTone {
		tone = m.styles.focused.Render(fmt.Sprintf("%-10s", "Tone"))
		value = "◀ " + value + " ▶"
	}
	lines = append(lines, tone+value)

	return lines
}

// resultsPane renders the artifact tabs and the active artifact body; empty
// until a generation has succeeded.
func (m Model) resultsPane() string {
	kinds := m.services.Orchestrator.Kinds()
	if len(kinds) == 0 {
		return ""
	}

	active, text, ok := m.services.Orchestrator.Active()
	if !ok {
		return ""
	}

	tabs := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		if kind == active {
			tabs = append(tabs, m.styles.tabActive.Render(kind.Title()))
			continue
		}
		tabs = append(tabs, m.styles.tab.Render(kind.Title()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tabs, m.styles.hint.Render(" │ ")),
		m.styles.hint.Render("ctrl+p previous tab • ctrl+n next tab"),
		"",
		content.FormatBody(text),
	)
}

func (m Model) statusLines() []string {
	var lines []string
	if m.failure != "" {
		lines = append(lines, "", m.styles.errNotice.Render(m.failure))
	}
	if m.notice != "" {
		lines = append(lines, "", m.styles.notice.Render(m.notice))
	}
	return lines
}
