// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authorization header failures. Both answer 401; they differ only in logs.
var (
	ErrEmptyAuthorizationHeader   = errors.New("no `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("malformed `Authorization` header")
)
