package service

import (
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/internal/adapter"
	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
	"github.com/MKhiriev/go-trust-keeper/internal/validators"
)

type Services struct {
	IdentityService    IdentityService
	ChallengeLedger    ChallengeLedger
	CredentialRegistry CredentialRegistry
	CeremonyService    CeremonyService
	AuthService        AuthService
	SignInService      SignInService
	Sweeper            Sweeper
	AppInfoService     AppInfoService
}

// NewServices derives the field cipher from the master secret once and wires
// every server-side service.
func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewFieldCipher(cfg.App.MasterSecret)
	if err != nil {
		return nil, fmt.Errorf("field cipher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	identity := NewIdentityService(storages.SubjectRepository, cipher, utils.NewUUIDGenerator(), logger)
	ledger := NewChallengeLedger(storages.ChallengeRepository, cfg.Ceremony, logger)
	registry := NewCredentialRegistry(storages.CredentialRepository, logger)
	signIn := NewSignInService(identity, storages.VerificationTokenRepository, cipher, mailer, cfg.App, logger)

	return &Services{
		IdentityService:    identity,
		ChallengeLedger:    ledger,
		CredentialRegistry: registry,
		CeremonyService:    NewCeremonyService(identity, ledger, registry, cfg.RelyingParty, cfg.Ceremony, logger),
		AuthService:        NewAuthService(cfg.App, logger),
		SignInService:      NewSignInValidationService(signIn, validators.NewRequestValidator()),
		Sweeper:            NewSweeper(ledger, storages.VerificationTokenRepository, cfg.Ceremony.ChallengeTTL, logger),
		AppInfoService:     appInfo,
	}, nil
}
