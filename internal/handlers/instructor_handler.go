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

// InstructorService is the interface that wraps methods for instructor business logic.
type InstructorService interface {
	// Create validates the request and stores a new instructor, returning its ID.
	// Returns a validation error on missing fields and a conflict error on a duplicate email.
	Create(ctx context.Context, req *models.CreateInstructorRequest) (int, error)
	// GetByID retrieves an instructor by ID.
	// Returns a not-found error when no instructor has that ID.
	GetByID(ctx context.Context, id int) (*models.Instructor, error)
	// GetAll retrieves all instructors in insertion order.
	GetAll(ctx context.Context) ([]models.Instructor, error)
	// Update validates the request and replaces all fields of an instructor.
	Update(ctx context.Context, id int, req *models.CreateInstructorRequest) error
	// Delete deletes an instructor by ID.
	Delete(ctx context.Context, id int) error
}

// InstructorHandler handles HTTP requests for instructors
type InstructorHandler struct {
	BaseHandler
	service InstructorService
}

// NewInstructorHandler creates a new instructor handler
func NewInstructorHandler(svc InstructorService, logger *zap.Logger) *InstructorHandler {
	return &InstructorHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all instructor handler routes
func (h *InstructorHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/instructor", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

// Create handles POST /api/v1/instructor
// @Summary Create an instructor
// @Description Create a new instructor with a unique email
// @Tags instructors
// @Accept json
// @Produce json
// @Param instructor body models.CreateInstructorRequest true "Instructor data"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/instructor [post]
func (h *InstructorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInstructorRequest
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
		"message": "Instructor Added Successfully",
		"data":    id,
	})
}

// Get handles GET /api/v1/instructor
//
// With an "id" query parameter a single instructor is returned, otherwise the
// full list.
// @Summary Get instructors
// @Description Get a single instructor by ID or the full list when no ID is given
// @Tags instructors
// @Accept json
// @Produce json
// @Param id query int false "Instructor ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/instructor [get]
func (h *InstructorHandler) Get(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")

	if idParam == "" {
		instructors, err := h.service.GetAll(r.Context())
		if err != nil {
			h.respondDomainError(w, err)
			return
		}
		if instructors == nil {
			instructors = []models.Instructor{}
		}

		h.respondJSON(w, http.StatusOK, map[string]any{
			"message": "Success getting instructor data",
			"data":    instructors,
		})
		return
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	instructor, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "Success getting instructor data",
		"data":    instructor,
	})
}

// Update handles PUT /api/v1/instructor
// @Summary Update an instructor
// @Description Replace all fields of an existing instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Param id query int true "Instructor ID"
// @Param instructor body models.CreateInstructorRequest true "Instructor data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/instructor [put]
func (h *InstructorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.instructorID(w, r)
	if !ok {
		return
	}

	var req models.CreateInstructorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Instructor updated successfully",
	})
}

// Delete handles DELETE /api/v1/instructor
// @Summary Delete an instructor
// @Description Delete an instructor by ID. Courses referencing it are kept.
// @Tags instructors
// @Accept json
// @Produce json
// @Param id query int true "Instructor ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/instructor [delete]
func (h *InstructorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.instructorID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Instructor deleted successfully",
	})
}

// instructorID extracts the required "id" query parameter.
// On a missing or malformed value a 400 is written and ok is false.
func (h *InstructorHandler) instructorID(w http.ResponseWriter, r *http.Request) (int, bool) {
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
