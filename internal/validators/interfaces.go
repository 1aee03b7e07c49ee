// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound identity and sign-in input
// before it reaches a service or a ceremony. It does not look at stored state:
// whether an email is taken or a token is still valid is decided by the
// services.
package validators

import "context"

// Validator validates obj. When fields are given, only those fields are
// checked; an unknown field name is an error.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
