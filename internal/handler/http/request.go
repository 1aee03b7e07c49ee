package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-trust-keeper/internal/app"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
)

// maxBodySize bounds every JSON request body.
const maxBodySize = 64 << 10

// decodeJSON reads the request body into dst and answers 400 on failure. An
// empty body is accepted only when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(dst)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}

	logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
	utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	return false
}

// validate answers 400 when obj fails request validation.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request, obj any) bool {
	if err := h.validator.Validate(r.Context(), obj); err != nil {
		logger.FromRequest(r).Err(err).Msg("request validation failed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// issueSession signs a session token for subjectID and writes it to the
// "Authorization" response header.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, subjectID string) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), subjectID)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return false
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	return true
}
