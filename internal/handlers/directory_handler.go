package handlers

import (
	"context"
	"net/http"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DirectoryService is the interface that wraps methods for student and company reads
type DirectoryService interface {
	GetStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id models.ID) (*models.Student, error)
	GetCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, id models.ID) (*models.Company, error)
}

// DirectoryHandler handles HTTP requests for students and companies
type DirectoryHandler struct {
	BaseHandler
	service DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(svc DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all directory handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *DirectoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/students", func(r chi.Router) {
		r.Get("/", h.GetStudents)
		r.Get("/{id}", h.GetStudent)
	})
	r.Route("/companies", func(r chi.Router) {
		r.Get("/", h.GetCompanies)
		r.Get("/{id}", h.GetCompany)
	})
}

// GetStudents handles GET /api/v1/students
// @Summary List students
// @Tags directory
// @Produce json
// @Success 200 {array} models.Student
// @Failure 502 {object} map[string]string
// @Router /students [get]
func (h *DirectoryHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.GetStudents(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get students")
		return
	}
	h.respondJSON(w, http.StatusOK, students)
}

// GetStudent handles GET /api/v1/students/{id}
// @Summary Get student
// @Tags directory
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /students/{id} [get]
func (h *DirectoryHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	student, err := h.service.GetStudent(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get student")
		return
	}
	h.respondJSON(w, http.StatusOK, student)
}

// GetCompanies handles GET /api/v1/companies
// @Summary List companies
// @Tags directory
// @Produce json
// @Success 200 {array} models.Company
// @Failure 502 {object} map[string]string
// @Router /companies [get]
func (h *DirectoryHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.GetCompanies(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get companies")
		return
	}
	h.respondJSON(w, http.StatusOK, companies)
}

// GetCompany handles GET /api/v1/companies/{id}
// @Summary Get company
// @Tags directory
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} models.Company
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /companies/{id} [get]
func (h *DirectoryHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	company, err := h.service.GetCompany(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get company")
		return
	}
	h.respondJSON(w, http.StatusOK, company)
}
