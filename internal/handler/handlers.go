// Package handler assembles the transport handlers enabled by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-trust-keeper/internal/handler/http"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
)

// Handlers holds one handler per configured listener. A nil field means the
// transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the handlers whose addresses are set in cfg. At least
// one transport must be enabled.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	var h Handlers
	if cfg.HTTPAddress != "" {
		h.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		h.GRPC = grpc.NewHandler(services, logger)
	}
	if h.HTTP == nil && h.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", h.HTTP != nil).
		Bool("grpc", h.GRPC != nil).
		Msg("handlers created")
	return &h, nil
}
