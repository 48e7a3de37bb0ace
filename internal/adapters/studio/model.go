package studio

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marketcrew/mc-cli/internal/application"
	"github.com/marketcrew/mc-cli/internal/domain"
)

// Services bundles the application services the studio drives. The model
// holds no business state of its own beyond the form inputs; session,
// profile and generation state live in the services and the domain types.
type Services struct {
	Sessions     *application.SessionService
	Orchestrator *application.Orchestrator
	Delivery     *application.DeliveryService
}

const (
	fieldBrand = iota
	fieldIndustry
	fieldAudience
	fieldGoals
	fieldProducts
	fieldCount
)

// focusTone is the pseudo-field after the last text input; left/right cycle
// the tone there instead of editing text.
const focusTone = fieldCount

type Model struct {
	services Services
	styles   styles

	view    domain.ViewState
	session domain.Session
	profile domain.BrandProfile

	authInputs []textinput.Model
	authFocus  int
	authBusy   bool

	fields    []textinput.Model
	toneIndex int
	appFocus  int

	spinner    spinner.Model
	generating bool

	emailInput  textinput.Model
	emailActive bool
	emailBusy   bool

	notice  string
	failure string

	width    int
	quitting bool
}

func New(services Services, restored domain.Session) Model {
	view := domain.HomeView()
	if restored.IsLoggedIn() {
		view = domain.AppView()
	}

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	labels := []string{"brand name", "industry", "audience", "goals", "products (comma separated)"}
	fields := make([]textinput.Model, fieldCount)
	for i := range fields {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 512
		fields[i] = in
	}
	fields[fieldBrand].Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "recipient email"
	emailInput.CharLimit = 254

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("173"))

	m := Model{
		services:   services,
		styles:     newStyles(),
		view:       view,
		session:    restored,
		profile:    domain.DefaultProfile(),
		authInputs: []textinput.Model{email, password},
		fields:     fields,
		emailInput: emailInput,
		spinner:    sp,
	}
	m.syncProfileInputs()

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// View accessor for callers that only need the current screen.
func (m Model) ViewState() domain.ViewState {
	return m.view
}

func (m Model) Session() domain.Session {
	return m.session
}

func (m Model) Profile() domain.BrandProfile {
	return m.profile
}

// collectProfile pulls the form inputs into the profile before a submit.
func (m *Model) collectProfile() {
	m.profile.BrandName = strings.TrimSpace(m.fields[fieldBrand].Value())
	m.profile.Industry = strings.TrimSpace(m.fields[fieldIndustry].Value())
	m.profile.Audience = strings.TrimSpace(m.fields[fieldAudience].Value())
	m.profile.Goals = strings.TrimSpace(m.fields[fieldGoals].Value())
	m.profile.Products = m.fields[fieldProducts].Value()
	m.profile.Tone = domain.Tones[m.toneIndex]
}

func (m *Model) syncProfileInputs() {
	m.fields[fieldBrand].SetValue(m.profile.BrandName)
	m.fields[fieldIndustry].SetValue(m.profile.Industry)
	m.fields[fieldAudience].SetValue(m.profile.Audience)
	m.fields[fieldGoals].SetValue(m.profile.Goals)
	m.fields[fieldProducts].SetValue(m.profile.Products)

	m.toneIndex = 0
	for i, tone := range domain.Tones {
		if tone == m.profile.Tone {
			m.toneIndex = i
			break
		}
	}
}

type authDoneMsg struct {
	mode   domain.AuthMode
	result application.LoginResult
	err    error
}

type generateDoneMsg struct {
	err error
}

type emailDoneMsg struct {
	to  string
	err error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type logoutDoneMsg struct {
	err error
}

func (m Model) authCmd(mode domain.AuthMode, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if mode == domain.AuthModeSignup {
			err := m.services.Sessions.Register(ctx, application.RegisterCommand{Email: email, Password: password})
			return authDoneMsg{mode: mode, err: err}
		}

		result, err := m.services.Sessions.Login(ctx, application.LoginCommand{Email: email, Password: password})
		return authDoneMsg{mode: mode, result: result, err: err}
	}
}

func (m Model) generateCmd(session domain.Session, profile domain.BrandProfile) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Orchestrator.Generate(context.Background(), session, profile)
		return generateDoneMsg{err: err}
	}
}

func (m Model) emailCmd(session domain.Session, to string) tea.Cmd {
	return func() tea.Msg {
		cmd := application.EmailCommand{
			To:               to,
			ContentAvailable: m.services.Orchestrator.HasContent(),
		}
		err := m.services.Delivery.Email(context.Background(), session, cmd)
		return emailDoneMsg{to: to, err: err}
	}
}

func (m Model) downloadCmd(session domain.Session, brandName string) tea.Cmd {
	return func() tea.Msg {
		path := downloadFileName(brandName)

		f, err := os.Create(path)
		if err != nil {
			return downloadDoneMsg{err: fmt.Errorf("create download file: %w", err)}
		}
		defer f.Close()

		if err := m.services.Delivery.Download(context.Background(), session, brandName, f); err != nil {
			os.Remove(path)
			return downloadDoneMsg{err: err}
		}

		return downloadDoneMsg{path: path}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: m.services.Sessions.Logout(context.Background())}
	}
}

func downloadFileName(brandName string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(brandName), " ", "-")
	return fmt.Sprintf("%s-content.txt", slug)
}
