package repositories

import (
	"context"
	"fmt"
	"net/url"

	"github.com/courseadmin/dashboard/internal/client"
	"github.com/courseadmin/dashboard/internal/models"
)

// studentRepository implements student reads against the upstream API
type studentRepository struct {
	client *client.Client
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(c *client.Client) *studentRepository {
	return &studentRepository{client: c}
}

// GetAll retrieves all students
func (r *studentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	if err := r.client.Get(ctx, "/students", &students); err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id models.ID) (*models.Student, error) {
	var student models.Student
	if err := r.client.Get(ctx, "/students/"+url.PathEscape(id.String()), &student); err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

// Count retrieves the total number of students
func (r *studentRepository) Count(ctx context.Context) (int, error) {
	count, err := getCount(ctx, r.client, "/students/count")
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// companyRepository implements company reads against the upstream API
type companyRepository struct {
	client *client.Client
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(c *client.Client) *companyRepository {
	return &companyRepository{client: c}
}

// GetAll retrieves all companies
func (r *companyRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	companies := []models.Company{}
	if err := r.client.Get(ctx, "/companies", &companies); err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}
	return companies, nil
}

// GetByID retrieves a company by ID
func (r *companyRepository) GetByID(ctx context.Context, id models.ID) (*models.Company, error) {
	var company models.Company
	if err := r.client.Get(ctx, "/companies/"+url.PathEscape(id.String()), &company); err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

// Count retrieves the total number of companies
func (r *companyRepository) Count(ctx context.Context) (int, error) {
	count, err := getCount(ctx, r.client, "/companies/count")
	if err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return count, nil
}
