package handlers

import (
	"context"
	"net/http"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OverviewService is the interface that wraps the overview aggregation
type OverviewService interface {
	// Get aggregates totals and recent items. Upstream failures degrade the result instead of failing it.
	Get(ctx context.Context) *models.Overview
}

// OverviewHandler handles HTTP requests for the dashboard overview
type OverviewHandler struct {
	BaseHandler
	service OverviewService
}

// NewOverviewHandler creates a new overview handler
func NewOverviewHandler(svc OverviewService, logger *zap.Logger) *OverviewHandler {
	return &OverviewHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the overview route
// Note: This assumes the router is already scoped to /api/v1
func (h *OverviewHandler) RegisterRoutes(r chi.Router) {
	r.Get("/overview", h.Get)
}

// Get handles GET /api/v1/overview
// @Summary Dashboard overview
// @Description Get totals, recent courses, students and companies, and the upstream API status
// @Tags overview
// @Produce json
// @Success 200 {object} models.Overview
// @Router /overview [get]
func (h *OverviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Get(r.Context()))
}
