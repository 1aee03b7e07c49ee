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

const (
	linkFieldEmail = iota
	linkFieldName
	linkFieldToken
)

// LinkModel runs magic-link sign-in in two steps: the email (and an optional
// name for first-time sign-in) is sent, then the token from the letter is
// redeemed.
type LinkModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	sent       bool
	submitting bool
	spinner    spinner.Model
	errMsg     string
}

func NewLinkModel(ctx context.Context, auth service.ClientAuthService) *LinkModel {
	email := newInput("email", 254)
	email.Focus()
	name := newInput("имя (необязательно)", 100)
	token := newInput("код из письма", 128)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &LinkModel{
		ctx:     ctx,
		auth:    auth,
		inputs:  []textinput.Model{email, name, token},
		spinner: s,
	}
}

func (m *LinkModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LinkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case linkSentMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.sent = true
		m.errMsg = ""
		m.setFocus(linkFieldToken)
		return m, textinput.Blink

	case signInDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
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
			m.reset()
			return m, navigateCmd(pageMenu)
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			if !m.sent {
				m.setFocus(1 - m.focus)
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LinkModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := strings.TrimSpace(m.inputs[linkFieldEmail].Value())
	if email == "" {
		m.errMsg = "Email обязателен"
		return nil
	}

	ctx, auth := m.ctx, m.auth
	if !m.sent {
		name := m.inputs[linkFieldName].Value()
		m.errMsg, m.submitting = "", true
		return tea.Batch(m.spinner.Tick, func() tea.Msg {
			return linkSentMsg{err: auth.RequestSignInLink(ctx, email, name)}
		})
	}

	token := strings.TrimSpace(m.inputs[linkFieldToken].Value())
	if token == "" {
		m.errMsg = "Введите код из письма"
		return nil
	}
	m.errMsg, m.submitting = "", true
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		session, err := auth.VerifySignInLink(ctx, email, token)
		return signInDoneMsg{session: session, err: err}
	})
}

func (m *LinkModel) View() string {
	var b strings.Builder
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[linkFieldEmail].View())
	b.WriteString("]\n")

	if !m.sent {
		b.WriteString("Имя     │ [")
		b.WriteString(m.inputs[linkFieldName].View())
		b.WriteString("]\n")
	} else {
		b.WriteString("\nПисьмо со ссылкой отправлено.\n")
		b.WriteString("Код     │ [")
		b.WriteString(m.inputs[linkFieldToken].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n" + m.spinner.View() + " отправка...\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("ВХОД ПО ССЫЛКЕ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LinkModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *LinkModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.sent, m.submitting, m.errMsg = false, false, ""
	m.setFocus(linkFieldEmail)
}
