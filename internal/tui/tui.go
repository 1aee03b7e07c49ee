// Package tui implements the terminal unlock screen of the trust client on
// top of bubbletea, bubbles and lipgloss.
package tui

import (
	"context"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/MKhiriev/go-trust-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run opens the trust page when session is set and the sign-in menu
// otherwise. It returns [ErrUserQuit] when the user closes the program.
func (t *TUI) Run(ctx context.Context, session *models.Session) error {
	root := t.newRoot(ctx, session)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context, session *models.Session) RootModel {
	auth := t.services.AuthService

	subjectID, start := "", pageMenu
	if session != nil {
		subjectID, start = session.SubjectID, pageTrust
	}

	pages := map[string]tea.Model{
		pageMenu:    NewMenuModel(),
		pageLink:    NewLinkModel(ctx, auth),
		pagePasskey: NewPasskeySignInModel(ctx, auth),
		pageTrust:   NewTrustModel(ctx, auth, t.services.TrustGate, subjectID),
		pageProfile: NewProfileModel(ctx, auth, t.services.TrustGate),
	}

	return NewRootModel(pages, start, t.buildInfo, t.logger)
}
