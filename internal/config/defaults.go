package config

import "time"

// Default values applied to fields left unset by every source.
const (
	DefaultTokenIssuer     = "go-trust-keeper"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultSignInLinkTTL   = 10 * time.Minute
	DefaultRPName          = "Trust Keeper"
	DefaultChallengeTTL    = 5 * time.Minute
	DefaultCeremonyTimeout = time.Minute
	DefaultRequestTimeout  = 30 * time.Second
	DefaultAdapterTimeout  = 15 * time.Second
	DefaultTrustTTL        = 5 * time.Minute
	DefaultSweepInterval   = time.Minute
	DefaultMaxOpenConns    = 10
	DefaultMaxIdleConns    = 4
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			SignInLinkTTL: DefaultSignInLinkTTL,
		},
		RelyingParty: RelyingParty{
			Name: DefaultRPName,
		},
		Ceremony: Ceremony{
			ChallengeTTL: DefaultChallengeTTL,
			Timeout:      DefaultCeremonyTimeout,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: DefaultMaxOpenConns, MaxIdleConns: DefaultMaxIdleConns},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterTimeout,
		},
		Trust: Trust{
			TTL: DefaultTrustTTL,
		},
		Workers: Workers{
			SweepInterval: DefaultSweepInterval,
		},
	}
}
