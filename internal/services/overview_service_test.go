package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockOverviewCourseRepository is a mock implementation of OverviewCourseRepository
type mockOverviewCourseRepository struct {
	courses  []models.Course
	count    int
	listErr  error
	countErr error
}

func (m *mockOverviewCourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	return m.courses, m.listErr
}

func (m *mockOverviewCourseRepository) Count(ctx context.Context) (int, error) {
	return m.count, m.countErr
}

// mockStudentRepository is a mock implementation of OverviewStudentRepository and StudentRepository
type mockStudentRepository struct {
	students []models.Student
	count    int
	listErr  error
	countErr error
}

func (m *mockStudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	return m.students, m.listErr
}

func (m *mockStudentRepository) GetByID(ctx context.Context, id models.ID) (*models.Student, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	for _, s := range m.students {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, errors.New("student not found")
}

func (m *mockStudentRepository) Count(ctx context.Context) (int, error) {
	return m.count, m.countErr
}

// mockCompanyRepository is a mock implementation of OverviewCompanyRepository and CompanyRepository
type mockCompanyRepository struct {
	companies []models.Company
	count     int
	listErr   error
	countErr  error
}

func (m *mockCompanyRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	return m.companies, m.listErr
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, id models.ID) (*models.Company, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	for _, c := range m.companies {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errors.New("company not found")
}

func (m *mockCompanyRepository) Count(ctx context.Context) (int, error) {
	return m.count, m.countErr
}

func makeCourses(n, published int) []models.Course {
	courses := make([]models.Course, n)
	for i := range courses {
		courses[i] = models.Course{ID: models.ID(fmt.Sprint(i + 1)), IsPublished: i < published}
	}
	return courses
}

func makeStudents(n int) []models.Student {
	students := make([]models.Student, n)
	for i := range students {
		students[i] = models.Student{ID: models.ID(fmt.Sprint(i + 1))}
	}
	return students
}

func makeCompanies(n int) []models.Company {
	companies := make([]models.Company, n)
	for i := range companies {
		companies[i] = models.Company{ID: models.ID(fmt.Sprint(i + 1))}
	}
	return companies
}

func TestOverviewService_Get(t *testing.T) {
	upstreamErr := errors.New("upstream down")

	tests := []struct {
		name           string
		courses        *mockOverviewCourseRepository
		students       *mockStudentRepository
		companies      *mockCompanyRepository
		expectedTotals models.OverviewTotals
		expectedStatus models.APIStatus
		expectedRecent [3]int
	}{
		{
			name:           "all reads succeed",
			courses:        &mockOverviewCourseRepository{courses: makeCourses(8, 3), count: 42},
			students:       &mockStudentRepository{students: makeStudents(7), count: 120},
			companies:      &mockCompanyRepository{companies: makeCompanies(2), count: 2},
			expectedTotals: models.OverviewTotals{Courses: 42, Published: 3, Drafts: 39, Students: 120, Companies: 2},
			expectedStatus: models.APIStatusOK,
			expectedRecent: [3]int{6, 5, 2},
		},
		{
			name:           "failed counts fall back to list length",
			courses:        &mockOverviewCourseRepository{courses: makeCourses(4, 1), countErr: upstreamErr},
			students:       &mockStudentRepository{students: makeStudents(3), countErr: upstreamErr},
			companies:      &mockCompanyRepository{companies: makeCompanies(9), countErr: upstreamErr},
			expectedTotals: models.OverviewTotals{Courses: 4, Published: 1, Drafts: 3, Students: 3, Companies: 9},
			expectedStatus: models.APIStatusError,
			expectedRecent: [3]int{4, 3, 5},
		},
		{
			name:           "failed lists are empty",
			courses:        &mockOverviewCourseRepository{listErr: upstreamErr, count: 10},
			students:       &mockStudentRepository{listErr: upstreamErr, count: 5},
			companies:      &mockCompanyRepository{listErr: upstreamErr, count: 1},
			expectedTotals: models.OverviewTotals{Courses: 10, Published: 0, Drafts: 10, Students: 5, Companies: 1},
			expectedStatus: models.APIStatusOK,
			expectedRecent: [3]int{0, 0, 0},
		},
		{
			name:           "everything fails",
			courses:        &mockOverviewCourseRepository{listErr: upstreamErr, countErr: upstreamErr},
			students:       &mockStudentRepository{listErr: upstreamErr, countErr: upstreamErr},
			companies:      &mockCompanyRepository{listErr: upstreamErr, countErr: upstreamErr},
			expectedTotals: models.OverviewTotals{},
			expectedStatus: models.APIStatusError,
			expectedRecent: [3]int{0, 0, 0},
		},
		{
			name:           "drafts never go negative",
			courses:        &mockOverviewCourseRepository{courses: makeCourses(5, 5), count: 2},
			students:       &mockStudentRepository{},
			companies:      &mockCompanyRepository{},
			expectedTotals: models.OverviewTotals{Courses: 2, Published: 5, Drafts: 0},
			expectedStatus: models.APIStatusOK,
			expectedRecent: [3]int{5, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOverviewService(tt.courses, tt.students, tt.companies, zap.NewNop())

			overview := svc.Get(context.Background())

			assert.Equal(t, tt.expectedTotals, overview.Totals)
			assert.Equal(t, tt.expectedStatus, overview.APIStatus)
			assert.Len(t, overview.RecentCourses, tt.expectedRecent[0])
			assert.Len(t, overview.RecentStudents, tt.expectedRecent[1])
			assert.Len(t, overview.RecentCompanies, tt.expectedRecent[2])
			assert.NotNil(t, overview.RecentCourses)
			assert.NotNil(t, overview.RecentStudents)
			assert.NotNil(t, overview.RecentCompanies)
		})
	}
}

func TestOverviewService_RecentKeepsUpstreamOrder(t *testing.T) {
	courses := makeCourses(8, 0)
	svc := NewOverviewService(&mockOverviewCourseRepository{courses: courses, count: 8}, &mockStudentRepository{}, &mockCompanyRepository{}, zap.NewNop())

	overview := svc.Get(context.Background())

	assert.Equal(t, courses[:6], overview.RecentCourses)
}

func TestDirectoryService(t *testing.T) {
	students := &mockStudentRepository{students: makeStudents(2)}
	companies := &mockCompanyRepository{companies: makeCompanies(3)}
	svc := NewDirectoryService(students, companies)
	ctx := context.Background()

	studentList, err := svc.GetStudents(ctx)
	assert.NoError(t, err)
	assert.Len(t, studentList, 2)

	student, err := svc.GetStudent(ctx, "2")
	assert.NoError(t, err)
	assert.Equal(t, models.ID("2"), student.ID)

	companyList, err := svc.GetCompanies(ctx)
	assert.NoError(t, err)
	assert.Len(t, companyList, 3)

	_, err = svc.GetCompany(ctx, "99")
	assert.Error(t, err)
}
