package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coursecatalog/backend/internal/apperrors"
	"github.com/coursecatalog/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockInstructorService is a mock implementation of InstructorService
type mockInstructorService struct {
	instructors []models.Instructor
	instructor  *models.Instructor
	createdID   int
	err         error
}

func (m *mockInstructorService) Create(ctx context.Context, req *models.CreateInstructorRequest) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.createdID, nil
}

func (m *mockInstructorService) GetByID(ctx context.Context, id int) (*models.Instructor, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.instructor, nil
}

func (m *mockInstructorService) GetAll(ctx context.Context) ([]models.Instructor, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.instructors, nil
}

func (m *mockInstructorService) Update(ctx context.Context, id int, req *models.CreateInstructorRequest) error {
	return m.err
}

func (m *mockInstructorService) Delete(ctx context.Context, id int) error {
	return m.err
}

// setupInstructorRouter builds a chi router with instructor routes backed by the mock
func setupInstructorRouter(svc *mockInstructorService) *chi.Mux {
	r := chi.NewRouter()
	h := NewInstructorHandler(svc, zap.NewNop())
	h.RegisterRoutes(r)
	return r
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestInstructorHandler_Create(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		svc             *mockInstructorService
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success",
			body:            `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:             &mockInstructorService{createdID: 7},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "Instructor Added Successfully",
		},
		{
			name:            "malformed body",
			body:            `{"firstName":`,
			svc:             &mockInstructorService{},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid Request",
		},
		{
			name:            "missing field",
			body:            `{"firstName":"Ada"}`,
			svc:             &mockInstructorService{err: apperrors.Validation("Invalid Request")},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid Request",
		},
		{
			name:            "duplicate email",
			body:            `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:             &mockInstructorService{err: apperrors.Conflict("Email already exists")},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Email already exists",
		},
		{
			name:            "store error",
			body:            `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:             &mockInstructorService{err: assert.AnError},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupInstructorRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/instructor/", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.expectedMessage, body["message"])
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, float64(7), body["data"])
			}
		})
	}
}

func TestInstructorHandler_Get(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		svc             *mockInstructorService
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:   "single by id",
			target: "/api/v1/instructor/?id=1",
			svc: &mockInstructorService{
				instructor: &models.Instructor{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Success getting instructor data",
		},
		{
			name:   "full list",
			target: "/api/v1/instructor/",
			svc: &mockInstructorService{
				instructors: []models.Instructor{{ID: 1}, {ID: 2}},
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Success getting instructor data",
		},
		{
			name:            "empty list",
			target:          "/api/v1/instructor/",
			svc:             &mockInstructorService{},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Success getting instructor data",
		},
		{
			name:            "malformed id",
			target:          "/api/v1/instructor/?id=abc",
			svc:             &mockInstructorService{},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid Request",
		},
		{
			name:            "not found",
			target:          "/api/v1/instructor/?id=999",
			svc:             &mockInstructorService{err: apperrors.NotFound("Instructor not found")},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Instructor not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupInstructorRouter(tt.svc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}

func TestInstructorHandler_GetEmptyListIsArray(t *testing.T) {
	router := setupInstructorRouter(&mockInstructorService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/instructor/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].([]any)
	require.True(t, ok, "data must be a JSON array, not null")
	assert.Empty(t, data)
}

func TestInstructorHandler_Update(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		body            string
		svc             *mockInstructorService
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success",
			target:          "/api/v1/instructor/?id=1",
			body:            `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:             &mockInstructorService{},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Instructor updated successfully",
		},
		{
			name:            "missing id",
			target:          "/api/v1/instructor/",
			body:            `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:             &mockInstructorService{},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid Request",
		},
		{
			name:            "missing field",
			target:          "/api/v1/instructor/?id=1",
			body:            `{"firstName":"Ada","lastName":"Lovelace"}`,
			svc:             &mockInstructorService{err: apperrors.Validation("Invalid Request")},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid Request",
		},
		{
			name:            "not found",
			target:          "/api/v1/instructor/?id=999",
			body:            `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:             &mockInstructorService{err: apperrors.NotFound("Instructor not found")},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Instructor not found",
		},
		{
			name:            "duplicate email",
			target:          "/api/v1/instructor/?id=1",
			body:            `{"firstName":"Ada","lastName":"Lovelace","email":"taken@example.com"}`,
			svc:             &mockInstructorService{err: apperrors.Conflict("Email already exists")},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupInstructorRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPut, tt.target, bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}

func TestInstructorHandler_Delete(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		svc             *mockInstructorService
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success",
			target:          "/api/v1/instructor/?id=1",
			svc:             &mockInstructorService{},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Instructor deleted successfully",
		},
		{
			name:            "missing id",
			target:          "/api/v1/instructor/",
			svc:             &mockInstructorService{},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid Request",
		},
		{
			name:            "not found",
			target:          "/api/v1/instructor/?id=999",
			svc:             &mockInstructorService{err: apperrors.NotFound("Instructor not found")},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Instructor not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupInstructorRouter(tt.svc)

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}
