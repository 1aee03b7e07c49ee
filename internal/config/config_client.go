package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientTrust holds the client's elevation settings.
type ClientTrust struct {
	// TTL is how long an unlock keeps the session elevated.
	TTL time.Duration
}

// ClientRelyingParty is the relying party the local software authenticator
// signs for.
type ClientRelyingParty struct {
	// ID is the relying-party id expected in ceremony options.
	ID string
	// Origin is the origin written into collected client data.
	Origin string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Trust contains elevation settings.
	Trust ClientTrust
	// RelyingParty contains the relying-party binding used by the
	// authenticator.
	RelyingParty ClientRelyingParty
	// Version is the client build version reported in logs.
	Version string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config from the same sources as [GetStructuredConfig],
// maps only the fields relevant to the client runtime, and validates the
// resulting [ClientConfig]. Server-only fields are not required.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Trust: ClientTrust{
			TTL: cfg.Trust.TTL,
		},
		RelyingParty: ClientRelyingParty{
			ID:     cfg.RelyingParty.ID,
			Origin: cfg.RelyingParty.Origin,
		},
		Version: cfg.App.Version,
	}
}
