package services

import (
	"context"

	"github.com/coursecatalog/backend/internal/apperrors"
	"github.com/coursecatalog/backend/internal/models"
	"go.uber.org/zap"
)

// InstructorRepository is the interface that wraps methods for instructors table data access
type InstructorRepository interface {
	// Create inserts a new instructor and sets its generated ID.
	// Returns a conflict error when the email is already taken.
	Create(ctx context.Context, instructor *models.Instructor) error
	// GetByID retrieves an instructor by ID.
	// Returns a not-found error when no instructor has that ID.
	GetByID(ctx context.Context, id int) (*models.Instructor, error)
	// GetAll retrieves all instructors in insertion order.
	GetAll(ctx context.Context) ([]models.Instructor, error)
	// Update replaces all fields of an instructor.
	// Returns a not-found error when no instructor has that ID.
	Update(ctx context.Context, instructor *models.Instructor) error
	// Delete deletes an instructor by ID.
	// Returns a not-found error when no instructor has that ID.
	Delete(ctx context.Context, id int) error
}

type instructorService struct {
	repo   InstructorRepository
	logger *zap.Logger
}

// NewInstructorService creates a new instructor service
func NewInstructorService(repo InstructorRepository, logger *zap.Logger) *instructorService {
	return &instructorService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates the request and stores a new instructor, returning its ID
func (s *instructorService) Create(ctx context.Context, req *models.CreateInstructorRequest) (int, error) {
	if err := s.validateRequest(req); err != nil {
		return 0, err
	}

	instructor := &models.Instructor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if err := s.repo.Create(ctx, instructor); err != nil {
		return 0, err
	}

	return instructor.ID, nil
}

// GetByID retrieves an instructor by its ID
func (s *instructorService) GetByID(ctx context.Context, id int) (*models.Instructor, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves all instructors
func (s *instructorService) GetAll(ctx context.Context) ([]models.Instructor, error) {
	return s.repo.GetAll(ctx)
}

// Update validates the request and replaces all fields of an instructor
func (s *instructorService) Update(ctx context.Context, id int, req *models.CreateInstructorRequest) error {
	if err := s.validateRequest(req); err != nil {
		return err
	}

	instructor := &models.Instructor{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	return s.repo.Update(ctx, instructor)
}

// Delete deletes an instructor by its ID.
// Courses referencing the instructor are not touched.
func (s *instructorService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// validateRequest checks that all required fields are present
func (s *instructorService) validateRequest(req *models.CreateInstructorRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return apperrors.Validation("Invalid Request")
	}
	return nil
}
