package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/courseadmin/dashboard/internal/client"
	"github.com/courseadmin/dashboard/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockOverviewService struct {
	overview *models.Overview
}

func (m *mockOverviewService) Get(ctx context.Context) *models.Overview {
	return m.overview
}

type mockDirectoryService struct {
	students  []models.Student
	companies []models.Company
	err       error
}

func (m *mockDirectoryService) GetStudents(ctx context.Context) ([]models.Student, error) {
	return m.students, m.err
}

func (m *mockDirectoryService) GetStudent(ctx context.Context, id models.ID) (*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.students {
		if m.students[i].ID == id {
			return &m.students[i], nil
		}
	}
	return nil, &client.APIError{StatusCode: http.StatusNotFound, Message: "Not Found"}
}

func (m *mockDirectoryService) GetCompanies(ctx context.Context) ([]models.Company, error) {
	return m.companies, m.err
}

func (m *mockDirectoryService) GetCompany(ctx context.Context, id models.ID) (*models.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.companies {
		if m.companies[i].ID == id {
			return &m.companies[i], nil
		}
	}
	return nil, &client.APIError{StatusCode: http.StatusNotFound, Message: "Not Found"}
}

func TestOverviewHandler_Get(t *testing.T) {
	svc := &mockOverviewService{overview: &models.Overview{
		Totals:          models.OverviewTotals{Courses: 3, Published: 2, Drafts: 1, Students: 4},
		RecentCourses:   []models.Course{{ID: "c1"}},
		RecentStudents:  []models.Student{},
		RecentCompanies: []models.Company{},
		APIStatus:       models.APIStatusOK,
	}}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		NewOverviewHandler(svc, zap.NewNop()).RegisterRoutes(r)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 3, got.Totals.Courses)
	assert.Equal(t, models.APIStatusOK, got.APIStatus)
	assert.Len(t, got.RecentCourses, 1)
}

func TestDirectoryHandler(t *testing.T) {
	svc := &mockDirectoryService{
		students:  []models.Student{{ID: "s1", FirstName: "Ada", LastName: "Lovelace"}},
		companies: []models.Company{{ID: "co1", Name: "Acme"}},
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		NewDirectoryHandler(svc, zap.NewNop()).RegisterRoutes(r)
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "students", path: "/api/v1/students", expectedStatus: http.StatusOK, expectedBody: `"firstName":"Ada"`},
		{name: "student", path: "/api/v1/students/s1", expectedStatus: http.StatusOK, expectedBody: `"lastName":"Lovelace"`},
		{name: "unknown student", path: "/api/v1/students/s9", expectedStatus: http.StatusNotFound},
		{name: "companies", path: "/api/v1/companies", expectedStatus: http.StatusOK, expectedBody: `"name":"Acme"`},
		{name: "company", path: "/api/v1/companies/co1", expectedStatus: http.StatusOK, expectedBody: `"id":"co1"`},
		{name: "unknown company", path: "/api/v1/companies/co9", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestDirectoryHandler_UpstreamDown(t *testing.T) {
	svc := &mockDirectoryService{err: errors.Join(client.ErrNetwork, errors.New("dial tcp"))}

	r := chi.NewRouter()
	NewDirectoryHandler(svc, zap.NewNop()).RegisterRoutes(r)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/companies", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"failed to get companies"}`, w.Body.String())
}
