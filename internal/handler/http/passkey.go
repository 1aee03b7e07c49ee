package http

import (
	"net/http"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
	"github.com/MKhiriev/go-trust-keeper/models"
)

func (h *Handler) beginRegistration(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := subjectFromRequest(w, r)
	if !ok {
		return
	}

	opts, err := h.services.CeremonyService.BeginRegistration(r.Context(), subjectID)
	if err != nil {
		writeServiceError(w, r, err, "registration options failed")
		return
	}

	utils.WriteJSON(w, opts, http.StatusOK)
}

func (h *Handler) completeRegistration(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := subjectFromRequest(w, r)
	if !ok {
		return
	}

	var proof models.RegistrationProof
	if !decodeJSON(w, r, &proof, false) || !h.validate(w, r, proof) {
		return
	}

	credential, err := h.services.CeremonyService.CompleteRegistration(r.Context(), subjectID, proof)
	if err != nil {
		writeServiceError(w, r, err, "registration ceremony failed")
		return
	}

	utils.WriteJSON(w, credential, http.StatusCreated)
}

// beginAuthentication targets the session's subject when there is one and
// the claimed email otherwise.
func (h *Handler) beginAuthentication(w http.ResponseWriter, r *http.Request) {
	var claim models.AuthenticationClaim
	if !decodeJSON(w, r, &claim, true) || !h.validate(w, r, claim) {
		return
	}
	if subjectID, ok := utils.GetSubjectIDFromContext(r.Context()); ok {
		claim = models.AuthenticationClaim{SubjectID: subjectID}
	}

	opts, err := h.services.CeremonyService.BeginAuthentication(r.Context(), claim)
	if err != nil {
		writeServiceError(w, r, err, "authentication options failed")
		return
	}

	utils.WriteJSON(w, opts, http.StatusOK)
}

func (h *Handler) completeAuthentication(w http.ResponseWriter, r *http.Request) {
	var proof models.AssertionProof
	if !decodeJSON(w, r, &proof, false) {
		return
	}

	subjectID, err := h.services.CeremonyService.CompleteAuthentication(r.Context(), proof)
	if err != nil {
		writeServiceError(w, r, err, "authentication ceremony failed")
		return
	}

	if !h.issueSession(w, r, subjectID) {
		return
	}

	logger.FromRequest(r).WithSubject(subjectID).Info().Msg("signed in with passkey")
	utils.WriteJSON(w, models.AuthenticationResult{SubjectID: subjectID}, http.StatusOK)
}

func (h *Handler) passkeyStatus(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := subjectFromRequest(w, r)
	if !ok {
		return
	}

	count, err := h.services.CredentialRegistry.CountBySubject(r.Context(), subjectID)
	if err != nil {
		writeServiceError(w, r, err, "counting credentials failed")
		return
	}

	utils.WriteJSON(w, models.PasskeyStatus{HasPasskey: count > 0, Count: count}, http.StatusOK)
}
