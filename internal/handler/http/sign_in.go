package http

import (
	"net/http"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
	"github.com/MKhiriev/go-trust-keeper/models"
)

// requestSignInLink mails a single-use link. It answers 202 whether or not
// the subject existed before.
func (h *Handler) requestSignInLink(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	if err := h.services.SignInService.RequestLink(r.Context(), req.Email, req.Name); err != nil {
		writeServiceError(w, r, err, "sign-in link request failed")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) verifySignInLink(w http.ResponseWriter, r *http.Request) {
	var req models.SignInVerification
	if !decodeJSON(w, r, &req, false) {
		return
	}

	subject, err := h.services.SignInService.VerifyLink(r.Context(), req.Email, req.Token)
	if err != nil {
		writeServiceError(w, r, err, "sign-in link verification failed")
		return
	}

	if !h.issueSession(w, r, subject.ID) {
		return
	}

	logger.FromRequest(r).WithSubject(subject.ID).Info().Msg("signed in with link")
	utils.WriteJSON(w, models.AuthenticationResult{SubjectID: subject.ID}, http.StatusOK)
}
