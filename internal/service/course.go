package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"forumhub/internal/catalog"
	"forumhub/internal/config"
	"forumhub/internal/directory"
	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
	"forumhub/internal/domain/repositories"
	"forumhub/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// courseService implements the CourseService interface
type courseService struct {
	courseRepo repositories.CourseRepository
	categories *catalog.Registry
	users      directory.Client
	logger     *slog.Logger
}

// NewCourseService creates a new course service
func NewCourseService(
	courseRepo repositories.CourseRepository,
	categories *catalog.Registry,
	users directory.Client,
	logger *slog.Logger,
) services.CourseService {
	return &courseService{
		courseRepo: courseRepo,
		categories: categories,
		users:      users,
		logger:     logger,
	}
}

// CreateCourse registers a new course. Admin only.
func (s *courseService) CreateCourse(ctx context.Context, actorID int64, req *services.CreateCourseRequest) (*models.Course, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	actor, err := s.users.Resolve(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	if actor.Role != models.RoleAdmin {
		return nil, &domain.PermissionDeniedError{
			Message: "insufficient privilege to manage courses",
		}
	}

	course := &models.Course{
		Name:     strings.TrimSpace(req.Name),
		Category: req.Category,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info("course created",
		"id", course.ID,
		"name", course.Name,
		"category", course.Category,
		"actor_id", actor.ID,
	)

	return course, nil
}

// GetCourse retrieves a course by ID
func (s *courseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses retrieves all courses
func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.List(ctx)
}

// validateCreateRequest validates a create course request
func (s *courseService) validateCreateRequest(req *services.CreateCourseRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxCourseNameLength),
		),
		validation.Field(&req.Category,
			validation.Required,
			validation.By(s.validateCategory),
		),
	)
}

// validateCategory checks the category against the embedded catalog
func (s *courseService) validateCategory(value interface{}) error {
	name, ok := value.(string)
	if !ok {
		return fmt.Errorf("category must be a string")
	}
	if !s.categories.IsValid(name) {
		return fmt.Errorf("unknown course category %q", name)
	}
	return nil
}
