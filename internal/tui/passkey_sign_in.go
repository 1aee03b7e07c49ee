package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PasskeySignInModel signs in with a passkey held by this device.
type PasskeySignInModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	email      textinput.Model
	submitting bool
	spinner    spinner.Model
	errMsg     string
}

func NewPasskeySignInModel(ctx context.Context, auth service.ClientAuthService) *PasskeySignInModel {
	email := newInput("email", 254)
	email.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &PasskeySignInModel{ctx: ctx, auth: auth, email: email, spinner: s}
}

func (m *PasskeySignInModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PasskeySignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signInDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.email.Reset()
		m.errMsg = ""
		session := msg.session
		return m, func() tea.Msg { return sessionStartedMsg{session: session} }

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.email.Reset()
			m.submitting, m.errMsg = false, ""
			return m, navigateCmd(pageMenu)
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

func (m *PasskeySignInModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	email := strings.TrimSpace(m.email.Value())
	if email == "" {
		m.errMsg = "Email обязателен"
		return nil
	}

	m.errMsg, m.submitting = "", true
	ctx, auth := m.ctx, m.auth
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		session, err := auth.SignInWithPasskey(ctx, email)
		return signInDoneMsg{session: session, err: err}
	})
}

func (m *PasskeySignInModel) View() string {
	var b strings.Builder
	b.WriteString("Email   │ [")
	b.WriteString(m.email.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n" + m.spinner.View() + " проверка ключа доступа...\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("ВХОД С КЛЮЧОМ ДОСТУПА", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: войти")
}
