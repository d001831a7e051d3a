package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coursecatalog/backend/internal/apperrors"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// respondDomainError maps a domain error to its HTTP status and sends it.
// Errors outside the taxonomy are logged and hidden behind a generic 500.
func (h *BaseHandler) respondDomainError(w http.ResponseWriter, err error) {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			h.respondError(w, http.StatusBadRequest, domainErr.Message)
		case errors.Is(err, apperrors.ErrNotFound):
			h.respondError(w, http.StatusNotFound, domainErr.Message)
		case errors.Is(err, apperrors.ErrConflict):
			h.respondError(w, http.StatusConflict, domainErr.Message)
		default:
			h.logger.Error("unclassified domain error", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	h.logger.Error("unexpected error", zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, "Internal server error.")
}
