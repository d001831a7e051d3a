package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coursecatalog/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for course business logic.
type CourseService interface {
	// Create validates the request, verifies the instructor reference and
	// stores a new course, returning its ID.
	Create(ctx context.Context, req *models.CreateCourseRequest) (int, error)
	// GetByID retrieves a course by ID, enriched with instructor data.
	GetByID(ctx context.Context, id int) (*models.CourseResponse, error)
	// GetAll retrieves all courses in insertion order, enriched with instructor data.
	GetAll(ctx context.Context) ([]models.CourseResponse, error)
	// Update validates the request, verifies the instructor reference and
	// replaces all writable fields of a course.
	Update(ctx context.Context, id int, req *models.CreateCourseRequest) error
	// Delete deletes a course by ID.
	Delete(ctx context.Context, id int) error
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
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/course", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

// Create handles POST /api/v1/course
// @Summary Create a course
// @Description Create a new course referencing an existing instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param course body models.CreateCourseRequest true "Course data"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/course [post]
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Course Added Successfully",
		"data":    id,
	})
}

// Get handles GET /api/v1/course
//
// With an "id" query parameter a single enriched course is returned, otherwise
// the full enriched list. Both are sent without an envelope.
// @Summary Get courses
// @Description Get a single course by ID or the full list when no ID is given, each enriched with instructor data
// @Tags courses
// @Accept json
// @Produce json
// @Param id query int false "Course ID"
// @Success 200 {array} models.CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/course [get]
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")

	if idParam == "" {
		courses, err := h.service.GetAll(r.Context())
		if err != nil {
			h.respondDomainError(w, err)
			return
		}
		if courses == nil {
			courses = []models.CourseResponse{}
		}

		h.respondJSON(w, http.StatusOK, courses)
		return
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	course, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// Update handles PUT /api/v1/course
// @Summary Update a course
// @Description Replace all writable fields of an existing course. The creation timestamp is kept.
// @Tags courses
// @Accept json
// @Produce json
// @Param id query int true "Course ID"
// @Param course body models.CreateCourseRequest true "Course data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/course [put]
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.courseID(w, r)
	if !ok {
		return
	}

	var req models.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Course updated successfully",
	})
}

// Delete handles DELETE /api/v1/course
// @Summary Delete a course
// @Description Delete a course by ID
// @Tags courses
// @Accept json
// @Produce json
// @Param id query int true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/course [delete]
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.courseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Course deleted successfully",
	})
}

// courseID extracts the required "id" query parameter.
// On a missing or malformed value a 400 is written and ok is false.
func (h *CourseHandler) courseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		h.respondError(w, http.StatusBadRequest, "Invalid Request")
		return 0, false
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid Request")
		return 0, false
	}

	return id, true
}
