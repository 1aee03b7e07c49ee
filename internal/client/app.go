package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/MKhiriev/go-trust-keeper/internal/tui"
	"github.com/MKhiriev/go-trust-keeper/models"
)

// UI is the interactive front end the App hands control to.
type UI interface {
	// Run blocks until the user quits. session is nil when nobody is signed in.
	Run(ctx context.Context, session *models.Session) error
}

type App struct {
	auth service.ClientAuthService
	ui   UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("ui is not initialized")
	}

	return &App{auth: services.AuthService, ui: ui, logger: logger}, nil
}

// Run restores the saved session, if any, and runs the UI until the user
// quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	var session *models.Session

	restored, err := a.auth.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.WithSubject(restored.SubjectID).Info().Msg("session restored")
		session = &restored
	case errors.Is(err, service.ErrNotSignedIn):
		a.logger.Info().Msg("no saved session")
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	err = a.ui.Run(ctx, session)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
