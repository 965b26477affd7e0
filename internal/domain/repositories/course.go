package repositories

import (
	"context"

	"forumhub/internal/domain/models"
)

// CourseRepository defines data access operations for courses
type CourseRepository interface {
	// Create creates a new course and returns it with generated ID
	Create(ctx context.Context, course *models.Course) error

	// GetByID retrieves a course by ID
	GetByID(ctx context.Context, id int64) (*models.Course, error)

	// List retrieves all courses ordered by name
	List(ctx context.Context) ([]models.Course, error)
}
