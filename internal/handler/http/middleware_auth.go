package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-trust-keeper/internal/app"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces a session.
//
// It reads the bearer token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the subject id in the request
// context with [utils.WithSubjectID]. Requests without a valid token are
// rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.FromRequest(r).Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		h.withSession(w, r, authHeader, next)
	})
}

// optionalAuth authenticates the request when it carries an "Authorization"
// header and passes it on anonymously otherwise. A header that is present but
// invalid is still rejected.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.withSession(w, r, authHeader, next)
	})
}

func (h *Handler) withSession(w http.ResponseWriter, r *http.Request, authHeader string, next http.Handler) {
	log := logger.FromRequest(r)

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		log.Err(err).Send()
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	ctx := r.Context()
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("session token rejected")
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	ctx = utils.WithSubjectID(ctx, token.SubjectID)
	ctx = log.WithSubject(token.SubjectID).WithContext(ctx)

	next.ServeHTTP(w, r.WithContext(ctx))
}

// getTokenFromAuthHeader extracts the token from a "Bearer <token>" header
// value. Any other shape is [ErrInvalidAuthorizationHeader].
func getTokenFromAuthHeader(authHeader string) (string, error) {
	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}
	return token, nil
}

// subjectFromRequest returns the subject id stored by [Handler.auth]. A
// missing id answers 401.
func subjectFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	subjectID, ok := utils.GetSubjectIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no subject id in request context")
		utils.WriteError(w, app.MsgNoSubjectIDProvided, http.StatusUnauthorized)
		return "", false
	}
	return subjectID, true
}
