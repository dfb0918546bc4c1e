package services

import (
	"context"

	"github.com/courseadmin/dashboard/internal/models"
)

// StudentRepository defines methods for student reads
type StudentRepository interface {
	// GetAll retrieves all students
	GetAll(ctx context.Context) ([]models.Student, error)
	// GetByID retrieves a student by ID
	GetByID(ctx context.Context, id models.ID) (*models.Student, error)
}

// CompanyRepository defines methods for company reads
type CompanyRepository interface {
	// GetAll retrieves all companies
	GetAll(ctx context.Context) ([]models.Company, error)
	// GetByID retrieves a company by ID
	GetByID(ctx context.Context, id models.ID) (*models.Company, error)
}

type directoryService struct {
	students  StudentRepository
	companies CompanyRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(students StudentRepository, companies CompanyRepository) *directoryService {
	return &directoryService{
		students:  students,
		companies: companies,
	}
}

// GetStudents retrieves all students
func (s *directoryService) GetStudents(ctx context.Context) ([]models.Student, error) {
	return s.students.GetAll(ctx)
}

// GetStudent retrieves a student by ID
func (s *directoryService) GetStudent(ctx context.Context, id models.ID) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// GetCompanies retrieves all companies
func (s *directoryService) GetCompanies(ctx context.Context) ([]models.Company, error) {
	return s.companies.GetAll(ctx)
}

// GetCompany retrieves a company by ID
func (s *directoryService) GetCompany(ctx context.Context, id models.ID) (*models.Company, error) {
	return s.companies.GetByID(ctx, id)
}
