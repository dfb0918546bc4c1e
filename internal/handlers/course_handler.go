package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/courseadmin/dashboard/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxImportSize = 10 << 20 // 10MB

// CourseService is the interface that wraps methods for course business logic
type CourseService interface {
	// List retrieves a filtered, sorted page of courses
	//
	// "filter" parameter holds the search query, status, sort order and paging.
	// Unknown status or sort values result in a validation error.
	List(ctx context.Context, filter models.CourseFilter) (*models.CoursePage, error)
	// Get retrieves a course with its lessons
	//
	// "id" parameter is used to identify the course.
	// An unknown id results in an upstream not found error.
	Get(ctx context.Context, id models.ID) (*models.Course, error)
	// Create validates a draft and creates the course with its lessons and quizzes
	//
	// "onProgress" may be nil.
	// Partial lesson or quiz failures are reported in the returned report, not as an error.
	Create(ctx context.Context, draft *models.CourseDraft, onProgress services.ProgressFunc) (*models.SaveResponse, error)
	// Save validates a draft and converges the stored course to it
	//
	// Please reference Create method for more information about parameters and error values.
	Save(ctx context.Context, id models.ID, draft *models.CourseDraft, onProgress services.ProgressFunc) (*models.SaveResponse, error)
	// Delete deletes a course
	Delete(ctx context.Context, id models.ID) error
	// SetPublished publishes or unpublishes a course
	SetPublished(ctx context.Context, id models.ID, published bool) (*models.Course, error)
	// Import forwards a CSV course import
	//
	// Files that are not CSV result in a validation error.
	Import(ctx context.Context, file *models.UploadFile) (*models.ImportResult, error)
	// SyncRuns retrieves the save history of a course
	//
	// "limit" parameter is the maximum number of runs, 0 for the default.
	SyncRuns(ctx context.Context, id models.ID, limit int) ([]models.SyncRun, error)
}

// CourseHandler handles HTTP requests for courses
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *CourseHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Get("/{id}/sync-runs", h.SyncRuns)

		// Mutations require the admin API key when one is configured
		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			r.Post("/", h.Create)
			r.Post("/import", h.Import)
			r.Put("/{id}", h.Save)
			r.Delete("/{id}", h.Delete)
			r.Patch("/{id}/publish", h.SetPublished)
		})
	})
}

// List handles GET /api/v1/courses
// @Summary List courses
// @Description Get a filtered, sorted and paginated list of courses
// @Tags courses
// @Produce json
// @Param search query string false "Case-insensitive search over title and description"
// @Param status query string false "all, published or draft, default: all"
// @Param sort query string false "newest, oldest or title, default: newest"
// @Param page query int false "Page number, default: 1"
// @Param pageSize query int false "Page size, default: 8"
// @Success 200 {object} models.CoursePage
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /courses [get]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := h.queryInt(w, r, "page")
	if !ok {
		return
	}
	pageSize, ok := h.queryInt(w, r, "pageSize")
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := models.CourseFilter{
		Search:   query.Get("search"),
		Status:   models.CourseStatusFilter(query.Get("status")),
		Sort:     models.CourseSort(query.Get("sort")),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, err, "failed to list courses")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Get handles GET /api/v1/courses/{id}
// @Summary Get course
// @Description Get a course with its lessons and quizzes
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	course, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// Create handles POST /api/v1/courses
// @Summary Create course
// @Description Create a course together with its lessons and quizzes. Lesson and quiz failures are listed in the report.
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param draft body models.CourseDraft true "Course draft"
// @Success 201 {object} models.SaveResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /courses [post]
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.CourseDraft
	if !h.decodeJSON(w, r, &draft) {
		return
	}

	result, err := h.service.Create(r.Context(), &draft, nil)
	if err != nil {
		h.respondServiceError(w, err, "failed to create course")
		return
	}

	h.logger.Info("course created",
		zap.String("course_id", result.Report.CourseID.String()),
		zap.Int("failures", result.Report.Failures),
	)
	h.respondJSON(w, http.StatusCreated, result)
}

// Save handles PUT /api/v1/courses/{id}
// @Summary Save course
// @Description Converge a stored course to the submitted draft. Lessons missing from the draft are deleted.
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Param draft body models.CourseDraft true "Course draft"
// @Success 200 {object} models.SaveResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /courses/{id} [put]
func (h *CourseHandler) Save(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var draft models.CourseDraft
	if !h.decodeJSON(w, r, &draft) {
		return
	}

	result, err := h.service.Save(r.Context(), id, &draft, nil)
	if err != nil {
		h.respondServiceError(w, err, "failed to save course")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/v1/courses/{id}
// @Summary Delete course
// @Tags courses
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err, "failed to delete course")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetPublished handles PATCH /api/v1/courses/{id}/publish
// @Summary Publish or unpublish course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID"
// @Param request body models.PublishRequest true "Publish flag"
// @Success 200 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /courses/{id}/publish [patch]
func (h *CourseHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req models.PublishRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	course, err := h.service.SetPublished(r.Context(), id, req.IsPublished)
	if err != nil {
		h.respondServiceError(w, err, "failed to update publish flag")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// Import handles POST /api/v1/courses/import
// @Summary Import courses
// @Description Bulk import courses from a CSV file
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} models.ImportResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /courses/import [post]
func (h *CourseHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		h.logger.Error("failed to parse multipart form", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read import file", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	result, err := h.service.Import(r.Context(), &models.UploadFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.respondServiceError(w, err, "failed to import courses")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// SyncRuns handles GET /api/v1/courses/{id}/sync-runs
// @Summary Course save history
// @Description Get the latest save runs of a course, newest first
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Param limit query int false "Maximum number of runs, default: 20"
// @Success 200 {array} models.SyncRun
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses/{id}/sync-runs [get]
func (h *CourseHandler) SyncRuns(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	limit, ok := h.queryInt(w, r, "limit")
	if !ok {
		return
	}

	runs, err := h.service.SyncRuns(r.Context(), id, limit)
	if err != nil {
		h.respondServiceError(w, err, "failed to get sync runs")
		return
	}

	h.respondJSON(w, http.StatusOK, runs)
}
