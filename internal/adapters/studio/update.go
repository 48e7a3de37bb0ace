package studio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marketcrew/mc-cli/internal/domain"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case authDoneMsg:
		return m.handleAuthDone(msg)

	case generateDoneMsg:
		return m.handleGenerateDone(msg)

	case emailDoneMsg:
		m.emailBusy = false
		if msg.err != nil {
			m.failure = msg.err.Error()
			return m, nil
		}
		m.emailActive = false
		m.emailInput.SetValue("")
		m.failure = ""
		m.notice = fmt.Sprintf("Content emailed to %s", msg.to)
		return m, nil

	case downloadDoneMsg:
		if msg.err != nil {
			m.failure = msg.err.Error()
			return m, nil
		}
		m.failure = ""
		m.notice = fmt.Sprintf("Saved %s", msg.path)
		return m, nil

	case logoutDoneMsg:
		return m.handleLogoutDone(msg)
	}

	switch m.view.Screen {
	case domain.ScreenHome:
		return m.updateHome(msg)
	case domain.ScreenAuth:
		return m.updateAuth(msg)
	default:
		return m.updateApp(msg)
	}
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// A signed-in visit to Home keeps the session; "a" or enter returns to
	// the studio without re-authenticating.
	if m.session.IsLoggedIn() && (key.String() == "a" || key.String() == "enter") {
		m.view = domain.AppView()
		m.failure = ""
		return m, nil
	}

	switch key.String() {
	case "l", "enter":
		m.view = domain.AuthView(domain.AuthModeLogin)
		m.notice = ""
		m.failure = ""
		return m, nil
	case "s":
		m.view = domain.AuthView(domain.AuthModeSignup)
		m.notice = ""
		m.failure = ""
		return m, nil
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateAuthInputs(msg)
	}

	if m.authBusy {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.view = domain.HomeView()
		m.failure = ""
		return m, nil

	case "ctrl+t":
		mode := domain.AuthModeLogin
		if m.view.Mode == domain.AuthModeLogin {
			mode = domain.AuthModeSignup
		}
		m.view = domain.AuthView(mode)
		m.failure = ""
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.authFocus = (m.authFocus + 1) % len(m.authInputs)
		cmds := make([]tea.Cmd, 0, len(m.authInputs))
		for i := range m.authInputs {
			if i == m.authFocus {
				cmds = append(cmds, m.authInputs[i].Focus())
				continue
			}
			m.authInputs[i].Blur()
		}
		return m, tea.Batch(cmds...)

	case "enter":
		email := strings.TrimSpace(m.authInputs[0].Value())
		password := m.authInputs[1].Value()
		m.authBusy = true
		m.failure = ""
		return m, m.authCmd(m.view.Mode, email, password)
	}

	return m.updateAuthInputs(msg)
}

func (m Model) updateAuthInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.authInputs))
	for i := range m.authInputs {
		m.authInputs[i], cmds[i] = m.authInputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.authBusy = false

	if msg.err != nil {
		m.failure = msg.err.Error()
		return m, nil
	}

	if msg.mode == domain.AuthModeSignup {
		m.view = domain.AuthView(domain.AuthModeLogin)
		m.authInputs[1].SetValue("")
		m.failure = ""
		m.notice = "Account created. Sign in to continue."
		return m, nil
	}

	m.session = msg.result.Session
	if msg.result.Profile != nil {
		m.profile = *msg.result.Profile
		m.syncProfileInputs()
	}
	m.view = domain.AppView()
	m.authInputs[1].SetValue("")
	m.failure = ""
	m.notice = fmt.Sprintf("Signed in as %s", m.session.Email)
	return m, nil
}

func (m Model) updateApp(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateAppInputs(msg)
	}

	if m.emailActive {
		return m.updateEmailPrompt(key)
	}

	switch key.String() {
	case "tab", "down":
		return m.focusAppField(m.appFocus + 1)
	case "shift+tab", "up":
		return m.focusAppField(m.appFocus - 1)

	case "left", "right":
		if m.appFocus != focusTone {
			break
		}
		step := 1
		if key.String() == "left" {
			step = len(domain.Tones) - 1
		}
		m.toneIndex = (m.toneIndex + step) % len(domain.Tones)
		return m, nil

	case "ctrl+n", "ctrl+p":
		return m.cycleArtifact(key.String() == "ctrl+n"), nil

	case "ctrl+g":
		return m.startGenerate()

	case "ctrl+d":
		m.collectProfile()
		if m.profile.BrandName == "" {
			m.failure = domain.ErrBrandNameRequired.Error()
			return m, nil
		}
		return m, m.downloadCmd(m.session, m.profile.BrandName)

	case "ctrl+e":
		m.emailActive = true
		m.failure = ""
		return m, m.emailInput.Focus()

	case "ctrl+l":
		return m, m.logoutCmd()

	// Navigating home is not a logout; the session and generation state
	// stay live.
	case "esc":
		m.view = domain.HomeView()
		m.failure = ""
		return m, nil
	}

	return m.updateAppInputs(msg)
}

func (m Model) updateEmailPrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.emailBusy {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.emailActive = false
		m.emailInput.SetValue("")
		m.failure = ""
		return m, nil
	case "enter":
		m.emailBusy = true
		m.failure = ""
		return m, m.emailCmd(m.session, strings.TrimSpace(m.emailInput.Value()))
	}

	var cmd tea.Cmd
	m.emailInput, cmd = m.emailInput.Update(key)
	return m, cmd
}

func (m Model) focusAppField(next int) (tea.Model, tea.Cmd) {
	total := fieldCount + 1
	m.appFocus = ((next % total) + total) % total

	var cmds []tea.Cmd
	for i := range m.fields {
		if i == m.appFocus {
			cmds = append(cmds, m.fields[i].Focus())
			continue
		}
		m.fields[i].Blur()
	}
	return m, tea.Batch(cmds...)
}

// startGenerate blocks empty brand names and overlapping requests before the
// orchestrator is ever invoked, so the form keeps its state on a refusal.
func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	if m.generating {
		m.notice = "Generation already in progress."
		return m, nil
	}

	m.collectProfile()
	if m.profile.BrandName == "" {
		m.failure = domain.ErrBrandNameRequired.Error()
		return m, nil
	}

	m.generating = true
	m.failure = ""
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, m.generateCmd(m.session, m.profile))
}

func (m Model) handleGenerateDone(msg generateDoneMsg) (tea.Model, tea.Cmd) {
	m.generating = false

	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrGenerationSuperseded) {
			return m, nil
		}
		m.failure = msg.err.Error()
		return m, nil
	}

	m.failure = ""
	m.notice = fmt.Sprintf("Generated %d artifacts.", len(m.services.Orchestrator.Kinds()))
	return m, nil
}

func (m Model) cycleArtifact(forward bool) Model {
	kinds := m.services.Orchestrator.Kinds()
	if len(kinds) == 0 {
		return m
	}

	active, _, ok := m.services.Orchestrator.Active()
	idx := 0
	if ok {
		for i, kind := range kinds {
			if kind == active {
				idx = i
				break
			}
		}
		if forward {
			idx = (idx + 1) % len(kinds)
		} else {
			idx = (idx + len(kinds) - 1) % len(kinds)
		}
	}

	if err := m.services.Orchestrator.Select(kinds[idx]); err != nil {
		m.failure = err.Error()
	}
	return m
}

// handleLogoutDone runs the full logout cascade: the session, the brand
// profile, the generation state and the view all reset together.
func (m Model) handleLogoutDone(msg logoutDoneMsg) (tea.Model, tea.Cmd) {
	m.session = domain.Session{}
	m.profile = domain.DefaultProfile()
	m.services.Orchestrator.Reset()
	m.syncProfileInputs()
	m.emailActive = false
	m.emailInput.SetValue("")
	m.view = domain.HomeView()
	m.notice = "Signed out."
	m.failure = ""
	if msg.err != nil {
		m.failure = msg.err.Error()
	}
	return m, nil
}

func (m Model) updateAppInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.fields))
	for i := range m.fields {
		m.fields[i], cmds[i] = m.fields[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}
