package adapter

import "errors"

// Transport errors, one per HTTP status class the server uses. The server's
// "error" message is appended after a colon.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("server unavailable")

	ErrNoTokenInResponse = errors.New("no bearer token in response")
)
