package services

import (
	"context"

	"github.com/courseadmin/dashboard/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentCoursesLimit   = 6
	recentStudentsLimit  = 5
	recentCompaniesLimit = 5
)

// OverviewCourseRepository defines the course reads of the overview
type OverviewCourseRepository interface {
	// GetAll retrieves all courses
	GetAll(ctx context.Context) ([]models.Course, error)
	// Count retrieves the total number of courses
	Count(ctx context.Context) (int, error)
}

// OverviewStudentRepository defines the student reads of the overview
type OverviewStudentRepository interface {
	// GetAll retrieves all students
	GetAll(ctx context.Context) ([]models.Student, error)
	// Count retrieves the total number of students
	Count(ctx context.Context) (int, error)
}

// OverviewCompanyRepository defines the company reads of the overview
type OverviewCompanyRepository interface {
	// GetAll retrieves all companies
	GetAll(ctx context.Context) ([]models.Company, error)
	// Count retrieves the total number of companies
	Count(ctx context.Context) (int, error)
}

type overviewService struct {
	courses   OverviewCourseRepository
	students  OverviewStudentRepository
	companies OverviewCompanyRepository
	logger    *zap.Logger
}

// NewOverviewService creates a new overview service
func NewOverviewService(courses OverviewCourseRepository, students OverviewStudentRepository, companies OverviewCompanyRepository, logger *zap.Logger) *overviewService {
	return &overviewService{
		courses:   courses,
		students:  students,
		companies: companies,
		logger:    logger,
	}
}

// Get aggregates the dashboard overview.
//
// The six upstream reads run concurrently and fail independently: a failed count
// falls back to the length of its list and a failed list is empty. The API status is
// "ok" only when the course count succeeded. Get never returns an error.
func (s *overviewService) Get(ctx context.Context) *models.Overview {
	var (
		courseCount, studentCount, companyCount *int
		courses                                 []models.Course
		students                                []models.Student
		companies                               []models.Company
	)

	// Reads report failures through their own result and never return an error.
	var g errgroup.Group
	g.Go(func() error {
		courseCount = s.count(ctx, "courses", s.courses.Count)
		return nil
	})
	g.Go(func() error {
		studentCount = s.count(ctx, "students", s.students.Count)
		return nil
	})
	g.Go(func() error {
		companyCount = s.count(ctx, "companies", s.companies.Count)
		return nil
	})
	g.Go(func() error {
		list, err := s.courses.GetAll(ctx)
		if err != nil {
			s.logger.Warn("overview: failed to list courses", zap.Error(err))
		}
		courses = list
		return nil
	})
	g.Go(func() error {
		list, err := s.students.GetAll(ctx)
		if err != nil {
			s.logger.Warn("overview: failed to list students", zap.Error(err))
		}
		students = list
		return nil
	})
	g.Go(func() error {
		list, err := s.companies.GetAll(ctx)
		if err != nil {
			s.logger.Warn("overview: failed to list companies", zap.Error(err))
		}
		companies = list
		return nil
	})
	_ = g.Wait()

	if courses == nil {
		courses = []models.Course{}
	}
	if students == nil {
		students = []models.Student{}
	}
	if companies == nil {
		companies = []models.Company{}
	}

	published := 0
	for _, course := range courses {
		if course.IsPublished {
			published++
		}
	}
	totalCourses := valueOr(courseCount, len(courses))

	apiStatus := models.APIStatusError
	if courseCount != nil {
		apiStatus = models.APIStatusOK
	}

	return &models.Overview{
		Totals: models.OverviewTotals{
			Courses:   totalCourses,
			Published: published,
			Drafts:    max(0, totalCourses-published),
			Students:  valueOr(studentCount, len(students)),
			Companies: valueOr(companyCount, len(companies)),
		},
		RecentCourses:   courses[:min(recentCoursesLimit, len(courses))],
		RecentStudents:  students[:min(recentStudentsLimit, len(students))],
		RecentCompanies: companies[:min(recentCompaniesLimit, len(companies))],
		APIStatus:       apiStatus,
	}
}

// count runs a count read and returns nil when it failed
func (s *overviewService) count(ctx context.Context, resource string, fn func(context.Context) (int, error)) *int {
	n, err := fn(ctx)
	if err != nil {
		s.logger.Warn("overview: failed to count "+resource, zap.Error(err))
		return nil
	}
	return &n
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
