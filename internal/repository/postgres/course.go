package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
	"forumhub/internal/domain/repositories"
)

// PostgresCourseRepository implements the CourseRepository interface
type PostgresCourseRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(config *RepositoryConfig) repositories.CourseRepository {
	return &PostgresCourseRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new course
func (r *PostgresCourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, category)
		VALUES ($1, $2)
		RETURNING id
	`, r.tables.Courses)

	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		course.Name,
		course.Category,
	).Scan(&course.ID)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("course '%s' already exists", course.Name),
				ResourceType: "course",
			}
		}
		return fmt.Errorf("create course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *PostgresCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT id, name, category
		FROM %s
		WHERE id = $1
	`, r.tables.Courses)

	var course models.Course
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Category,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("course %d not found", id)}
		}
		return nil, fmt.Errorf("get course: %w", err)
	}

	return &course, nil
}

// List retrieves all courses ordered by name
func (r *PostgresCourseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := fmt.Sprintf(`
		SELECT id, name, category
		FROM %s
		ORDER BY name ASC
	`, r.tables.Courses)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Category); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}

	if courses == nil {
		courses = []models.Course{}
	}

	return courses, nil
}
