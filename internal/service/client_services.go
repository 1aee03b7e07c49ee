package service

import (
	"github.com/MKhiriev/go-trust-keeper/internal/adapter"
	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
)

type ClientServices struct {
	TrustGate   TrustGate
	AuthService ClientAuthService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, authenticator PasskeyAuthenticator, cfg config.ClientTrust, logger *logger.Logger) *ClientServices {
	trust := NewTrustGate(localStore.TrustRepository, cfg, logger)

	return &ClientServices{
		TrustGate:   trust,
		AuthService: NewClientAuthService(localStore.SessionRepository, serverAdapter, authenticator, trust, logger),
	}
}
