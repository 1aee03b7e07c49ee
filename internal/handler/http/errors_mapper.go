package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trust-keeper/internal/app"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
	"github.com/MKhiriev/go-trust-keeper/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNoCredentialsEnrolled, http.StatusNotFound, app.MsgNoCredentialEnrolled},
	{service.ErrConflict, http.StatusConflict, app.MsgSubjectAlreadyExists},
	{service.ErrSignInLinkInvalid, http.StatusUnauthorized, app.MsgSignInLinkInvalid},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrMailDelivery, http.StatusBadGateway, app.MsgMailDeliveryFailed},
	{service.ErrNotFound, http.StatusNotFound, app.MsgNotFound},
}

// statusFromError maps a service error to a status code and the message the
// client is allowed to see. Ceremony failures only ever expose their kind.
func statusFromError(err error) (int, string) {
	var ceremonyErr *service.CeremonyError
	if errors.As(err, &ceremonyErr) {
		if ceremonyErr.Kind == models.CeremonyRegistration {
			return http.StatusBadRequest, app.MsgRegistrationFailed
		}
		return http.StatusBadRequest, app.MsgAuthenticationFailed
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, body, status)
}
