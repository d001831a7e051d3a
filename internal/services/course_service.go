package services

import (
	"context"

	"github.com/coursecatalog/backend/internal/apperrors"
	"github.com/coursecatalog/backend/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps methods for courses table data access
type CourseRepository interface {
	// Create inserts a new course, stamping its creation time and setting its generated ID.
	Create(ctx context.Context, course *models.Course) error
	// GetByID retrieves a course by ID, enriched with its instructor's data.
	// Returns a not-found error when no course has that ID.
	GetByID(ctx context.Context, id int) (*models.CourseResponse, error)
	// GetAll retrieves all courses in insertion order, enriched with instructor data.
	GetAll(ctx context.Context) ([]models.CourseResponse, error)
	// Update replaces all writable fields of a course, leaving created_at intact.
	// Returns a not-found error when no course has that ID.
	Update(ctx context.Context, course *models.Course) error
	// Delete deletes a course by ID.
	// Returns a not-found error when no course has that ID.
	Delete(ctx context.Context, id int) error
}

// InstructorChecker is the interface for verifying instructor references
type InstructorChecker interface {
	// ExistsByID checks if an instructor with the given ID exists
	ExistsByID(ctx context.Context, id int) (bool, error)
}

type courseService struct {
	repo           CourseRepository
	instructorRepo InstructorChecker
	logger         *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(repo CourseRepository, instructorRepo InstructorChecker, logger *zap.Logger) *courseService {
	return &courseService{
		repo:           repo,
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// Create validates the request, verifies the instructor reference and stores a
// new course, returning its ID. Nothing is written when validation fails.
func (s *courseService) Create(ctx context.Context, req *models.CreateCourseRequest) (int, error) {
	if err := s.validateRequest(ctx, req); err != nil {
		return 0, err
	}

	course := &models.Course{
		Title:        req.Title,
		InstructorID: req.Instructor,
		Category:     req.Category,
		Thumbnail:    req.Thumbnail,
		Video:        req.Video,
		Description:  req.Description,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return 0, err
	}

	return course.ID, nil
}

// GetByID retrieves a course by its ID, enriched with instructor data
func (s *courseService) GetByID(ctx context.Context, id int) (*models.CourseResponse, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves all courses, enriched with instructor data
func (s *courseService) GetAll(ctx context.Context) ([]models.CourseResponse, error) {
	return s.repo.GetAll(ctx)
}

// Update validates the request, verifies the instructor reference and replaces
// all writable fields of a course. The creation timestamp is never modified.
func (s *courseService) Update(ctx context.Context, id int, req *models.CreateCourseRequest) error {
	if err := s.validateRequest(ctx, req); err != nil {
		return err
	}

	course := &models.Course{
		ID:           id,
		Title:        req.Title,
		InstructorID: req.Instructor,
		Category:     req.Category,
		Thumbnail:    req.Thumbnail,
		Video:        req.Video,
		Description:  req.Description,
	}

	return s.repo.Update(ctx, course)
}

// Delete deletes a course by its ID
func (s *courseService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// validateRequest checks that all required fields are present and that the
// referenced instructor exists. The existence check is not transactional with
// the subsequent write.
func (s *courseService) validateRequest(ctx context.Context, req *models.CreateCourseRequest) error {
	if req.Title == "" || req.Instructor == 0 || req.Category == "" ||
		req.Thumbnail == "" || req.Video == "" || req.Description == "" {
		return apperrors.Validation("Invalid Request")
	}

	exists, err := s.instructorRepo.ExistsByID(ctx, req.Instructor)
	if err != nil {
		s.logger.Error("failed to verify instructor reference", zap.Error(err), zap.Int("instructor", req.Instructor))
		return err
	}
	if !exists {
		return apperrors.NotFound("Instructor not found")
	}

	return nil
}
