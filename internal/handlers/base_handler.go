package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/courseadmin/dashboard/internal/client"
	"github.com/courseadmin/dashboard/internal/middleware"
	"github.com/courseadmin/dashboard/internal/models"
	"github.com/courseadmin/dashboard/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// validationErrorResponse is returned for invalid drafts and parameters
type validationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
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
	if err := middleware.WriteError(w, status, message); err != nil {
		h.logger.Error("failed to encode error response", zap.Error(err))
	}
}

// respondServiceError maps a service error to a response.
//
// Validation errors are 400, upstream 404s are passed through, other upstream
// and transport failures are 502 and everything else is 500.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	var vErr *services.ValidationError
	var apiErr *client.APIError

	switch {
	case errors.As(err, &vErr):
		h.respondJSON(w, http.StatusBadRequest, validationErrorResponse{Error: "validation failed", Fields: vErr.Fields})
	case client.IsNotFound(err):
		h.respondError(w, http.StatusNotFound, "not found")
	case errors.As(err, &apiErr):
		h.logger.Error(message, zap.Error(err))
		h.respondError(w, http.StatusBadGateway, message+": "+apiErr.Message)
	case errors.Is(err, client.ErrNetwork), errors.Is(err, services.ErrCourseIDMissing):
		h.logger.Error(message, zap.Error(err))
		h.respondError(w, http.StatusBadGateway, message)
	default:
		h.logger.Error(message, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, message)
	}
}

// decodeJSON decodes the request body into v, responding 400 on failure
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.Debug("failed to decode request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID reads the {id} URL parameter
func (h *BaseHandler) pathID(w http.ResponseWriter, r *http.Request) (models.ID, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "id is required")
		return "", false
	}
	return models.ID(id), true
}

// queryInt reads an optional positive integer query parameter, 0 when absent
func (h *BaseHandler) queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		h.respondError(w, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return n, true
}
