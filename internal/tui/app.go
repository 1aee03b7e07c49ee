package tui

import (
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu    = "menu"
	pageLink    = "link"
	pagePasskey = "passkey"
	pageTrust   = "trust"
	pageProfile = "profile"
)

// RootModel owns the page registry and routes messages to the active page.
// Quit and the build info window are handled here for every page; session
// start and sign out switch pages without the page's involvement.
type RootModel struct {
	pages    map[string]tea.Model
	page     string
	current  tea.Model
	logger   *logger.Logger
	about    models.AppBuildInfo
	showInfo bool

	quitByUser bool
}

// NewRootModel opens startPage. An unknown startPage leaves the router empty.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, logger *logger.Logger) RootModel {
	return RootModel{
		pages:   pages,
		page:    startPage,
		current: pages[startPage],
		about:   buildInfo,
		logger:  logger,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := r.globalKey(k); handled {
			return r, cmd
		}
		if r.showInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)
	case sessionStartedMsg:
		r.logger.WithSubject(msg.session.SubjectID).Info().Msg("session started")
		return r.navigate(NavigateTo{Page: pageTrust, Payload: msg})
	case signedOutMsg:
		if msg.err == nil {
			return r.navigate(NavigateTo{Page: pageMenu})
		}
	}

	return r.forward(msg)
}

// globalKey reports whether k was consumed by the router.
func (r *RootModel) globalKey(k tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(k, keys.quit):
		r.quitByUser = true
		return true, tea.Quit
	case key.Matches(k, keys.version) && r.page == pageMenu:
		r.showInfo = !r.showInfo
		return true, nil
	case key.Matches(k, keys.esc) && r.showInfo:
		r.showInfo = false
		return true, nil
	}
	return false, nil
}

func (r RootModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// navigate switches pages. A payload is delivered to the new page in place of
// its Init.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		r.logger.Warn().Str("page", nav.Page).Msg("navigation to unknown page")
		return r, nil
	}

	r.page, r.current, r.showInfo = nav.Page, next, false
	if nav.Payload == nil {
		return r, r.current.Init()
	}
	return r.forward(nav.Payload)
}

func (r RootModel) View() string {
	switch {
	case r.showInfo:
		return renderBuildInfoWindow(r.about)
	case r.current == nil:
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}
