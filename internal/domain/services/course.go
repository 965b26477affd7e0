package services

import (
	"context"

	"forumhub/internal/domain/models"
)

// CreateCourseRequest represents a request to register a new course
type CreateCourseRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// CourseService defines business logic operations for courses
type CourseService interface {
	// CreateCourse registers a new course. Admin only; the category must be
	// one of the fixed catalog values.
	CreateCourse(ctx context.Context, actorID int64, req *CreateCourseRequest) (*models.Course, error)

	// GetCourse retrieves a course by ID
	GetCourse(ctx context.Context, id int64) (*models.Course, error)

	// ListCourses retrieves all courses ordered by name
	ListCourses(ctx context.Context) ([]models.Course, error)
}
