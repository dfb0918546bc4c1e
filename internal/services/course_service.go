package services

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/courseadmin/dashboard/internal/models"
	"go.uber.org/zap"
)

const (
	defaultPageSize     = 8
	defaultSyncRunLimit = 20
	maxSyncRunLimit     = 100
)

// CourseRepository defines methods for course reads and single-call writes
type CourseRepository interface {
	// GetAll retrieves all courses
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of courses and an error if any.
	GetAll(ctx context.Context) ([]models.Course, error)
	// GetByID retrieves a course by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course and an error if any.
	GetByID(ctx context.Context, id models.ID) (*models.Course, error)
	// Delete deletes a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns an error if any.
	Delete(ctx context.Context, id models.ID) error
	// SetPublished sets the publish flag of a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	// "published" is the new value of the flag.
	//
	// Returns the updated course and an error if any.
	SetPublished(ctx context.Context, id models.ID, published bool) (*models.Course, error)
	// Import uploads a course import file
	//
	// "ctx" is the context for the request.
	// "file" is the CSV file.
	//
	// Returns the import result and an error if any.
	Import(ctx context.Context, file *models.UploadFile) (*models.ImportResult, error)
}

// CourseLessonRepository defines methods for lesson reads
type CourseLessonRepository interface {
	// GetByCourseID retrieves the lessons of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns a list of lessons and an error if any.
	GetByCourseID(ctx context.Context, courseID models.ID) ([]models.Lesson, error)
}

// CourseSyncer defines the orchestration runs used to save drafts
type CourseSyncer interface {
	// Create creates a course with its lessons and quizzes
	Create(ctx context.Context, desired *models.CourseDraft, onProgress ProgressFunc) (*models.SyncReport, error)
	// Update converges an existing course to the desired draft
	Update(ctx context.Context, courseID models.ID, desired *models.CourseDraft, initial *models.Course, onProgress ProgressFunc) (*models.SyncReport, error)
	// GetRuns retrieves the latest recorded runs of a course
	GetRuns(ctx context.Context, courseID models.ID, limit int) ([]models.SyncRun, error)
}

type courseService struct {
	courses   CourseRepository
	lessons   CourseLessonRepository
	syncer    CourseSyncer
	validator *Validator
	logger    *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(courses CourseRepository, lessons CourseLessonRepository, syncer CourseSyncer, validator *Validator, logger *zap.Logger) *courseService {
	return &courseService{
		courses:   courses,
		lessons:   lessons,
		syncer:    syncer,
		validator: validator,
		logger:    logger,
	}
}

// List retrieves a filtered, sorted page of courses
//
// "filter" parameter holds the search query, status, sort order and paging.
// Empty values fall back to all statuses, newest first, page 1 of 8.
// Unknown status or sort values return a *ValidationError.
func (s *courseService) List(ctx context.Context, filter models.CourseFilter) (*models.CoursePage, error) {
	if err := normalizeFilter(&filter); err != nil {
		return nil, err
	}

	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return paginate(sortCourses(filterCourses(courses, filter), filter.Sort), filter.Page, filter.PageSize), nil
}

// Get retrieves a course with its lessons.
// Lessons are fetched separately when the course detail does not embed them.
func (s *courseService) Get(ctx context.Context, id models.ID) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(course.Lessons) == 0 {
		lessons, err := s.lessons.GetByCourseID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get course lessons: %w", err)
		}
		course.Lessons = lessons
	}

	slices.SortStableFunc(course.Lessons, func(a, b models.Lesson) int {
		return a.Order - b.Order
	})

	return course, nil
}

// Create validates a draft and creates the course with its lessons.
// A nil onProgress logs progress instead.
func (s *courseService) Create(ctx context.Context, draft *models.CourseDraft, onProgress ProgressFunc) (*models.SaveResponse, error) {
	if err := s.validator.Struct(draft); err != nil {
		return nil, err
	}

	report, err := s.syncer.Create(ctx, draft, s.progress("", onProgress))
	if err != nil {
		return nil, err
	}

	return &models.SaveResponse{
		Course: s.reload(ctx, report.CourseID),
		Report: report,
	}, nil
}

// Save validates a draft and converges the stored course to it.
//
// The initial snapshot is always fetched from upstream right before syncing so a
// repeated save never re-creates lessons created by the previous one.
func (s *courseService) Save(ctx context.Context, id models.ID, draft *models.CourseDraft, onProgress ProgressFunc) (*models.SaveResponse, error) {
	if err := s.validator.Struct(draft); err != nil {
		return nil, err
	}

	initial, err := s.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}

	report, err := s.syncer.Update(ctx, id, draft, initial, s.progress(id, onProgress))
	if err != nil {
		return nil, err
	}

	return &models.SaveResponse{
		Course: s.reload(ctx, id),
		Report: report,
	}, nil
}

// Delete deletes a course
func (s *courseService) Delete(ctx context.Context, id models.ID) error {
	return s.courses.Delete(ctx, id)
}

// SetPublished publishes or unpublishes a course
func (s *courseService) SetPublished(ctx context.Context, id models.ID, published bool) (*models.Course, error) {
	return s.courses.SetPublished(ctx, id, published)
}

// Import forwards a CSV course import
func (s *courseService) Import(ctx context.Context, file *models.UploadFile) (*models.ImportResult, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, &ValidationError{Fields: map[string]string{"file": "file is required"}}
	}
	if !isCSV(file) {
		return nil, &ValidationError{Fields: map[string]string{"file": "file must be a CSV"}}
	}
	if file.ContentType == "" || file.ContentType == "application/octet-stream" {
		file.ContentType = "text/csv"
	}

	return s.courses.Import(ctx, file)
}

// SyncRuns retrieves the save history of a course
//
// "limit" parameter is clamped to [1, 100] and defaults to 20.
func (s *courseService) SyncRuns(ctx context.Context, id models.ID, limit int) ([]models.SyncRun, error) {
	if limit <= 0 {
		limit = defaultSyncRunLimit
	}
	if limit > maxSyncRunLimit {
		limit = maxSyncRunLimit
	}
	return s.syncer.GetRuns(ctx, id, limit)
}

// reload fetches the stored course after a save. A failed fetch is logged and yields nil.
func (s *courseService) reload(ctx context.Context, id models.ID) *models.Course {
	course, err := s.Get(ctx, id)
	if err != nil {
		s.logger.Warn("failed to reload course after save", zap.String("course_id", id.String()), zap.Error(err))
		return nil
	}
	return course
}

func (s *courseService) progress(id models.ID, onProgress ProgressFunc) ProgressFunc {
	if onProgress != nil {
		return onProgress
	}
	return func(step models.SyncStep, status models.SyncStatus, message string) {
		s.logger.Debug("course sync progress",
			zap.String("course_id", id.String()),
			zap.String("step", string(step)),
			zap.String("status", string(status)),
			zap.String("message", message),
		)
	}
}

func normalizeFilter(filter *models.CourseFilter) error {
	filter.Search = strings.TrimSpace(filter.Search)

	switch filter.Status {
	case "":
		filter.Status = models.CourseStatusAll
	case models.CourseStatusAll, models.CourseStatusPublished, models.CourseStatusDraft:
	default:
		return &ValidationError{Fields: map[string]string{"status": "status must be one of [all published draft]"}}
	}

	switch filter.Sort {
	case "":
		filter.Sort = models.CourseSortNewest
	case models.CourseSortNewest, models.CourseSortOldest, models.CourseSortTitle:
	default:
		return &ValidationError{Fields: map[string]string{"sort": "sort must be one of [newest oldest title]"}}
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	return nil
}

// filterCourses applies the case-insensitive search over title and description and the status filter
func filterCourses(courses []models.Course, filter models.CourseFilter) []models.Course {
	query := strings.ToLower(filter.Search)
	filtered := make([]models.Course, 0, len(courses))

	for _, course := range courses {
		if query != "" &&
			!strings.Contains(strings.ToLower(course.Title), query) &&
			!strings.Contains(strings.ToLower(course.Description), query) {
			continue
		}

		switch filter.Status {
		case models.CourseStatusPublished:
			if !course.IsPublished {
				continue
			}
		case models.CourseStatusDraft:
			if course.IsPublished {
				continue
			}
		}

		filtered = append(filtered, course)
	}

	return filtered
}

func sortCourses(courses []models.Course, order models.CourseSort) []models.Course {
	switch order {
	case models.CourseSortOldest:
		slices.SortStableFunc(courses, func(a, b models.Course) int {
			return strings.Compare(a.CreatedAt, b.CreatedAt)
		})
	case models.CourseSortTitle:
		slices.SortStableFunc(courses, func(a, b models.Course) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	default:
		slices.SortStableFunc(courses, func(a, b models.Course) int {
			return strings.Compare(b.CreatedAt, a.CreatedAt)
		})
	}
	return courses
}

func paginate(courses []models.Course, page, pageSize int) *models.CoursePage {
	total := len(courses)
	totalPages := max(1, (total+pageSize-1)/pageSize)

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	items := make([]models.Course, end-start)
	copy(items, courses[start:end])

	return &models.CoursePage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func isCSV(file *models.UploadFile) bool {
	if strings.EqualFold(filepath.Ext(file.Filename), ".csv") {
		return true
	}
	contentType := strings.ToLower(file.ContentType)
	return strings.HasPrefix(contentType, "text/csv") || strings.HasPrefix(contentType, "application/vnd.ms-excel")
}
