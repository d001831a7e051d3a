package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/coursecatalog/backend/internal/apperrors"
	"github.com/coursecatalog/backend/internal/models"
	"go.uber.org/zap"
)

type courseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB, logger *zap.Logger) *courseRepository {
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new course and stamps its creation time
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, instructor, category, thumbnail, video, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	course.CreatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		course.Title,
		course.InstructorID,
		course.Category,
		course.Thumbnail,
		course.Video,
		course.Description,
		course.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create course", zap.Error(err))
		return fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	course.ID = int(id)
	return nil
}

// GetByID retrieves a course by its ID, enriched with its instructor's data.
// The join is a left outer join: a course whose instructor was deleted is
// still returned, with InstructorInfo left nil.
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.CourseResponse, error) {
	query := `
		SELECT c.id, c.title, c.instructor, c.category, c.thumbnail, c.video, c.description, c.created_at,
		       i.id, i.first_name, i.last_name, i.email
		FROM courses c
		LEFT JOIN instructors i ON i.id = c.instructor
		WHERE c.id = ?
		LIMIT 1
	`

	course := &models.CourseResponse{}
	var (
		instructorID    sql.NullInt64
		instructorFirst sql.NullString
		instructorLast  sql.NullString
		instructorEmail sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.InstructorID,
		&course.Category,
		&course.Thumbnail,
		&course.Video,
		&course.Description,
		&course.CreatedAt,
		&instructorID,
		&instructorFirst,
		&instructorLast,
		&instructorEmail,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("Course not found")
	}
	if err != nil {
		r.logger.Error("failed to get course by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	if instructorID.Valid {
		course.InstructorInfo = &models.Instructor{
			ID:        int(instructorID.Int64),
			FirstName: instructorFirst.String,
			LastName:  instructorLast.String,
			Email:     instructorEmail.String,
		}
	}

	return course, nil
}

// GetAll retrieves all courses in insertion order, each enriched with its
// instructor's data where the instructor still exists
func (r *courseRepository) GetAll(ctx context.Context) ([]models.CourseResponse, error) {
	query := `
		SELECT c.id, c.title, c.instructor, c.category, c.thumbnail, c.video, c.description, c.created_at,
		       i.id, i.first_name, i.last_name, i.email
		FROM courses c
		LEFT JOIN instructors i ON i.id = c.instructor
		ORDER BY c.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query courses", zap.Error(err))
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.CourseResponse
	for rows.Next() {
		var course models.CourseResponse
		var (
			instructorID    sql.NullInt64
			instructorFirst sql.NullString
			instructorLast  sql.NullString
			instructorEmail sql.NullString
		)

		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.InstructorID,
			&course.Category,
			&course.Thumbnail,
			&course.Video,
			&course.Description,
			&course.CreatedAt,
			&instructorID,
			&instructorFirst,
			&instructorLast,
			&instructorEmail,
		)
		if err != nil {
			r.logger.Error("failed to scan course", zap.Error(err))
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}

		if instructorID.Valid {
			course.InstructorInfo = &models.Instructor{
				ID:        int(instructorID.Int64),
				FirstName: instructorFirst.String,
				LastName:  instructorLast.String,
				Email:     instructorEmail.String,
			}
		}

		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// Update replaces all writable fields of a course. created_at is immutable.
func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = ?, instructor = ?, category = ?, thumbnail = ?, video = ?, description = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		course.Title,
		course.InstructorID,
		course.Category,
		course.Thumbnail,
		course.Video,
		course.Description,
		course.ID,
	)
	if err != nil {
		r.logger.Error("failed to update course", zap.Error(err), zap.Int("id", course.ID))
		return fmt.Errorf("failed to update course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("Course not found")
	}

	return nil
}

// Delete deletes a course by ID
func (r *courseRepository) Delete(ctx context.Context, id int) error {
	query := "DELETE FROM courses WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete course", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("Course not found")
	}

	return nil
}
