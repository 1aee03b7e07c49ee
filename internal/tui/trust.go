package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const trustTickInterval = time.Second

// TrustModel is the signed-in page. It shows whether this device is elevated
// and for how long, and offers unlock, passkey enrollment, lock and sign-out.
type TrustModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	trust service.TrustGate

	subjectID string
	gen       int
	remaining time.Duration
	status    *models.PasskeyStatus

	enrolling bool
	label     textinput.Model

	busy    string
	spinner spinner.Model
	notice  string
	overlay *errorOverlayModel
}

func NewTrustModel(ctx context.Context, auth service.ClientAuthService, trust service.TrustGate, subjectID string) *TrustModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &TrustModel{
		ctx:       ctx,
		auth:      auth,
		trust:     trust,
		subjectID: subjectID,
		label:     newInput("название ключа (необязательно)", 64),
		spinner:   s,
	}
}

func (m *TrustModel) Init() tea.Cmd {
	if m.subjectID == "" {
		return nil
	}
	m.gen++
	return tea.Batch(m.refresh(), m.loadStatus())
}

func (m *TrustModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		m.subjectID = msg.session.SubjectID
		m.gen++
		m.status, m.notice, m.overlay = nil, "", nil
		return m, tea.Batch(m.refresh(), m.loadStatus())

	case trustTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m, m.refresh()

	case statusLoadedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		status := msg.status
		m.status = &status
		return m, nil

	case unlockDoneMsg:
		m.busy = ""
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNoCredentialsEnrolled) {
				m.notice = "На этом устройстве нет ключа доступа, нажмите e чтобы добавить"
				return m, nil
			}
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, m.refresh()
		}
		m.notice = "Устройство подтверждено"
		return m, m.refresh()

	case enrollDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.notice = "Ключ доступа добавлен"
		return m, m.loadStatus()

	case lockDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		}
		m.notice = "Устройство заблокировано"
		return m, m.refresh()

	case signedOutMsg:
		m.busy = ""
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		}
		return m, nil

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.enrolling {
		var cmd tea.Cmd
		m.label, cmd = m.label.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *TrustModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}
	if m.busy != "" {
		return m, nil
	}

	if m.enrolling {
		switch {
		case key.Matches(msg, keys.esc):
			m.enrolling = false
			m.label.Blur()
			return m, nil
		case key.Matches(msg, keys.enter):
			label := m.label.Value()
			m.enrolling = false
			m.label.Reset()
			m.label.Blur()
			return m, m.run("регистрация ключа доступа", func(ctx context.Context) tea.Msg {
				credential, err := m.auth.EnrollPasskey(ctx, label)
				return enrollDoneMsg{credential: credential, err: err}
			})
		}
		var cmd tea.Cmd
		m.label, cmd = m.label.Update(msg)
		return m, cmd
	}

	m.notice = ""
	switch {
	case key.Matches(msg, keys.unlock):
		return m, m.run("проверка ключа доступа", func(ctx context.Context) tea.Msg {
			return unlockDoneMsg{err: m.auth.Unlock(ctx)}
		})
	case key.Matches(msg, keys.enroll):
		m.enrolling = true
		return m, m.label.Focus()
	case key.Matches(msg, keys.lock):
		return m, m.run("блокировка", func(ctx context.Context) tea.Msg {
			return lockDoneMsg{err: m.trust.Clear(ctx)}
		})
	case key.Matches(msg, keys.profile):
		subjectID := m.subjectID
		return m, func() tea.Msg {
			return NavigateTo{Page: pageProfile, Payload: profileOpenMsg{subjectID: subjectID}}
		}
	case key.Matches(msg, keys.signOut):
		return m, m.run("выход", func(ctx context.Context) tea.Msg {
			return signedOutMsg{err: m.auth.SignOut(ctx)}
		})
	}
	return m, nil
}

// run starts a blocking service call with the spinner shown.
func (m *TrustModel) run(label string, call func(ctx context.Context) tea.Msg) tea.Cmd {
	m.busy = label
	ctx := m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return call(ctx) })
}

// refresh reads the remaining elevation now and schedules the next tick.
func (m *TrustModel) refresh() tea.Cmd {
	m.remaining = m.trust.Remaining(m.ctx, m.subjectID)

	gen := m.gen
	return tea.Tick(trustTickInterval, func(t time.Time) tea.Msg {
		return trustTickMsg{gen: gen, at: t}
	})
}

func (m *TrustModel) loadStatus() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		status, err := auth.PasskeyStatus(ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m *TrustModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	var b strings.Builder
	b.WriteString("Пользователь │ ")
	b.WriteString(m.subjectID)
	b.WriteString("\n")

	b.WriteString("Состояние    │ ")
	if m.remaining > 0 {
		b.WriteString(elevatedStyle.Render(fmt.Sprintf("подтверждено, осталось %s", m.remaining.Truncate(time.Second))))
	} else {
		b.WriteString(lockedStyle.Render("заблокировано"))
	}
	b.WriteString("\n")

	b.WriteString("Ключи доступа│ ")
	switch {
	case m.status == nil:
		b.WriteString("...")
	case !m.status.HasPasskey:
		b.WriteString("нет")
	default:
		b.WriteString(fmt.Sprintf("%d", m.status.Count))
	}
	b.WriteString("\n")

	if m.enrolling {
		b.WriteString("\nНазвание     │ [")
		b.WriteString(m.label.View())
		b.WriteString("]\n")
	}
	if m.busy != "" {
		b.WriteString("\n" + m.spinner.View() + " " + m.busy + "...\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}

	help := "u: разблокировать │ e: добавить ключ │ p: профиль │ l: заблокировать │ o: выйти"
	if m.enrolling {
		help = "enter: создать ключ │ esc: отмена"
	}
	return renderPage("ДОВЕРИЕ УСТРОЙСТВА", strings.TrimRight(b.String(), "\n"), help)
}
