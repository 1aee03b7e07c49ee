package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const profileTickInterval = time.Second

// ProfileModel shows the subject's profile only while the device is
// elevated. Elevation is re-read on every tick and the page locks again as
// soon as it runs out.
type ProfileModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	trust service.TrustGate

	subjectID string
	gen       int
	elevated  bool
	loading   bool
	profile   *models.Subject

	busy    string
	spinner spinner.Model
	overlay *errorOverlayModel
}

func NewProfileModel(ctx context.Context, auth service.ClientAuthService, trust service.TrustGate) *ProfileModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ProfileModel{ctx: ctx, auth: auth, trust: trust, spinner: s}
}

func (m *ProfileModel) Init() tea.Cmd {
	if m.subjectID == "" {
		return nil
	}
	return m.restart()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileOpenMsg:
		m.subjectID = msg.subjectID
		m.profile, m.overlay = nil, nil
		return m, m.restart()

	case profileTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m, tea.Batch(m.check(), m.schedule())

	case profileLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		switch {
		case errors.Is(msg.err, service.ErrNotElevated):
			m.elevated, m.profile = false, nil
		case msg.err != nil:
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		case m.elevated:
			profile := msg.profile
			m.profile = &profile
		}
		return m, nil

	case unlockDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		return m, m.restart()

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
	return m, nil
}

func (m *ProfileModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}
	if m.busy != "" {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigateCmd(pageTrust)
	case key.Matches(msg, keys.unlock) && !m.elevated:
		m.busy = "проверка ключа доступа"
		ctx, auth := m.ctx, m.auth
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			return unlockDoneMsg{err: auth.Unlock(ctx)}
		})
	}
	return m, nil
}

// restart drops the running tick chain, checks elevation now and starts a
// new chain.
func (m *ProfileModel) restart() tea.Cmd {
	m.gen++
	m.loading = false
	return tea.Batch(m.check(), m.schedule())
}

// check reads the elevation. A locked device forgets the profile; an
// elevated one without a profile starts fetching it.
func (m *ProfileModel) check() tea.Cmd {
	m.elevated = m.trust.IsElevated(m.ctx, m.subjectID)
	if !m.elevated {
		m.profile = nil
		return nil
	}
	if m.profile != nil || m.loading {
		return nil
	}

	m.loading = true
	ctx, auth, gen := m.ctx, m.auth, m.gen
	return func() tea.Msg {
		profile, err := auth.Profile(ctx)
		return profileLoadedMsg{gen: gen, profile: profile, err: err}
	}
}

func (m *ProfileModel) schedule() tea.Cmd {
	gen := m.gen
	return tea.Tick(profileTickInterval, func(time.Time) tea.Msg {
		return profileTickMsg{gen: gen}
	})
}

func (m *ProfileModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	var b strings.Builder
	switch {
	case !m.elevated:
		b.WriteString(lockedStyle.Render("Устройство заблокировано, профиль скрыт"))
		b.WriteString("\nПодтвердите вход ключом доступа")
	case m.profile == nil:
		b.WriteString("Загрузка профиля...")
	default:
		name := m.profile.Name
		if name == "" {
			name = "не указано"
		}
		verified := "нет"
		if m.profile.EmailVerifiedAt != nil {
			verified = m.profile.EmailVerifiedAt.Local().Format(time.DateTime)
		}
		b.WriteString("ID           │ " + m.profile.ID + "\n")
		b.WriteString("Email        │ " + m.profile.Email + "\n")
		b.WriteString("Имя          │ " + name + "\n")
		b.WriteString("Подтверждён  │ " + verified + "\n")
		b.WriteString("Создан       │ " + m.profile.CreatedAt.Local().Format(time.DateTime))
	}
	if m.busy != "" {
		b.WriteString("\n\n" + m.spinner.View() + " " + m.busy + "...")
	}

	help := "esc: назад"
	if !m.elevated {
		help = "u: разблокировать │ esc: назад"
	}
	return renderPage("ПРОФИЛЬ", b.String(), help)
}
