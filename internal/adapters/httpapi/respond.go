// internal/adapters/httpapi/respond.go
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/shopcore/backend/internal/domain"
	"github.com/shopcore/backend/pkg/auth"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondFromError maps the domain error taxonomy onto status codes.
// Internal failures stay opaque to the caller.
func (h *Handler) respondFromError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateMail):
		respondError(w, http.StatusConflict, "mail already registered")
	case errors.Is(err, domain.ErrOTPMismatch):
		respondError(w, http.StatusBadRequest, "otp code mismatch")
	case errors.Is(err, domain.ErrOTPExpired):
		respondError(w, http.StatusGone, "otp code expired")
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		respondError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrOrderNotCancellable):
		respondError(w, http.StatusConflict, "order can no longer be cancelled")
	default:
		h.logger.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
