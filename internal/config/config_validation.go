// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// server invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with details otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MasterSecret == "" {
		return fmt.Errorf("%w: master secret is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and positive token duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.HashKey == "" {
		return fmt.Errorf("%w: hash key is required", ErrInvalidAppConfigs)
	}

	if err := validateRelyingParty(cfg.RelyingParty); err != nil {
		return err
	}

	if cfg.Ceremony.ChallengeTTL <= 0 {
		return ErrInvalidCeremonyConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validateRelyingParty requires the origin host to equal the relying-party
// id or to be one of its subdomains.
func validateRelyingParty(rp RelyingParty) error {
	if rp.ID == "" || rp.Origin == "" {
		return fmt.Errorf("%w: id and origin are required", ErrInvalidRelyingPartyConfigs)
	}

	origin, err := url.Parse(rp.Origin)
	if err != nil || origin.Scheme == "" || origin.Host == "" {
		return fmt.Errorf("%w: origin %q is not an absolute URL", ErrInvalidRelyingPartyConfigs, rp.Origin)
	}

	host := origin.Hostname()
	if host != rp.ID && !strings.HasSuffix(host, "."+rp.ID) {
		return fmt.Errorf("%w: origin host %q is not covered by id %q", ErrInvalidRelyingPartyConfigs, host, rp.ID)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Trust.TTL <= 0 {
		return ErrInvalidTrustConfigs
	}

	return nil
}
