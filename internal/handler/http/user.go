package http

import (
	"net/http"

	"github.com/MKhiriev/go-trust-keeper/internal/utils"
	"github.com/MKhiriev/go-trust-keeper/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := subjectFromRequest(w, r)
	if !ok {
		return
	}

	subject, err := h.services.IdentityService.FindByID(r.Context(), subjectID)
	if err != nil {
		writeServiceError(w, r, err, "loading subject failed")
		return
	}

	utils.WriteJSON(w, subject, http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := subjectFromRequest(w, r)
	if !ok {
		return
	}

	var upd models.SubjectUpdate
	if !decodeJSON(w, r, &upd, false) || !h.validate(w, r, upd) {
		return
	}

	subject, err := h.services.IdentityService.UpdateSubject(r.Context(), subjectID, upd)
	if err != nil {
		writeServiceError(w, r, err, "updating subject failed")
		return
	}

	utils.WriteJSON(w, subject, http.StatusOK)
}
