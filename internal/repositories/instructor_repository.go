package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coursecatalog/backend/internal/apperrors"
	"github.com/coursecatalog/backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation
const mysqlDuplicateEntry = 1062

type instructorRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *sql.DB, logger *zap.Logger) *instructorRepository {
	return &instructorRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new instructor into the database.
// A duplicate email violates the unique index and is reported as a conflict.
func (r *instructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (first_name, last_name, email)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, instructor.FirstName, instructor.LastName, instructor.Email)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return apperrors.Conflict("Email already exists")
		}
		r.logger.Error("failed to create instructor", zap.Error(err))
		return fmt.Errorf("failed to create instructor: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	instructor.ID = int(id)
	return nil
}

// GetByID retrieves an instructor by its ID
func (r *instructorRepository) GetByID(ctx context.Context, id int) (*models.Instructor, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM instructors
		WHERE id = ?
		LIMIT 1
	`

	instructor := &models.Instructor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&instructor.ID,
		&instructor.FirstName,
		&instructor.LastName,
		&instructor.Email,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("Instructor not found")
	}
	if err != nil {
		r.logger.Error("failed to get instructor by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get instructor by id: %w", err)
	}

	return instructor, nil
}

// GetAll retrieves all instructors in insertion order
func (r *instructorRepository) GetAll(ctx context.Context) ([]models.Instructor, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM instructors
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query instructors", zap.Error(err))
		return nil, fmt.Errorf("failed to query instructors: %w", err)
	}
	defer rows.Close()

	var instructors []models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		if err := rows.Scan(&instructor.ID, &instructor.FirstName, &instructor.LastName, &instructor.Email); err != nil {
			r.logger.Error("failed to scan instructor", zap.Error(err))
			return nil, fmt.Errorf("failed to scan instructor: %w", err)
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return instructors, nil
}

// ExistsByID checks if an instructor with the given ID exists
func (r *instructorRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM instructors WHERE id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check instructor existence", zap.Error(err), zap.Int("id", id))
		return false, fmt.Errorf("failed to check instructor existence: %w", err)
	}

	return exists, nil
}

// Update replaces all fields of an instructor (full replace)
func (r *instructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	query := `
		UPDATE instructors
		SET first_name = ?, last_name = ?, email = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		instructor.FirstName,
		instructor.LastName,
		instructor.Email,
		instructor.ID,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return apperrors.Conflict("Email already exists")
		}
		r.logger.Error("failed to update instructor", zap.Error(err), zap.Int("id", instructor.ID))
		return fmt.Errorf("failed to update instructor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("Instructor not found")
	}

	return nil
}

// Delete deletes an instructor by ID.
// Courses referencing the instructor are left untouched; their reads tolerate
// the dangling reference.
func (r *instructorRepository) Delete(ctx context.Context, id int) error {
	query := "DELETE FROM instructors WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete instructor", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete instructor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("Instructor not found")
	}

	return nil
}
