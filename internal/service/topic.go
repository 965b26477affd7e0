package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"forumhub/internal/config"
	"forumhub/internal/directory"
	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
	"forumhub/internal/domain/repositories"
	"forumhub/internal/domain/services"
	"forumhub/internal/service/authz"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// topicService implements the TopicService interface
type topicService struct {
	topicRepo  repositories.TopicRepository
	answerRepo repositories.AnswerRepository
	courseRepo repositories.CourseRepository
	users      directory.Client
	logger     *slog.Logger
}

// NewTopicService creates a new topic service
func NewTopicService(
	topicRepo repositories.TopicRepository,
	answerRepo repositories.AnswerRepository,
	courseRepo repositories.CourseRepository,
	users directory.Client,
	logger *slog.Logger,
) services.TopicService {
	return &topicService{
		topicRepo:  topicRepo,
		answerRepo: answerRepo,
		courseRepo: courseRepo,
		users:      users,
		logger:     logger,
	}
}

// CreateTopic opens a new UNSOLVED topic.
// Order matters: course and actor are resolved before anything is written, so
// a directory failure leaves no partial topic behind.
func (s *topicService) CreateTopic(ctx context.Context, actorID int64, req *services.CreateTopicRequest) (*models.Topic, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	actor, err := s.users.Resolve(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	authorID := actor.ID
	topic := &models.Topic{
		Title:     strings.TrimSpace(req.Title),
		Question:  strings.TrimSpace(req.Question),
		Status:    models.TopicUnsolved,
		AuthorID:  &authorID,
		CourseID:  req.CourseID,
		CreatedAt: time.Now(),
	}

	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}

	s.logger.Info("topic created",
		"id", topic.ID,
		"course_id", topic.CourseID,
		"author_id", actor.ID,
	)

	return topic, nil
}

// GetTopic retrieves a topic with its answers
func (s *topicService) GetTopic(ctx context.Context, id int64) (*services.TopicDetail, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.ListByTopic(ctx, id)
	if err != nil {
		return nil, err
	}

	return &services.TopicDetail{Topic: topic, Answers: answers}, nil
}

// ListTopicsByCourse retrieves all topics for a course
func (s *topicService) ListTopicsByCourse(ctx context.Context, courseID int64) ([]models.Topic, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.topicRepo.ListByCourse(ctx, courseID)
}

// UpdateTopic edits a topic's fields
func (s *topicService) UpdateTopic(ctx context.Context, id, actorID int64, req *services.UpdateTopicRequest) (*models.Topic, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	courseID := topic.CourseID
	if req.CourseID != nil {
		courseID = *req.CourseID
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	actor, err := s.users.Resolve(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("update topic %d: %w", id, err)
	}

	if decision := authz.Evaluate(actor, topic.AuthorID, authz.OperationEdit); !decision.Allowed {
		return nil, decision.Deny()
	}

	// Checked after the permission evaluation and independent of role: a
	// topic whose author no longer exists rejects edits unconditionally.
	if topic.Orphaned() {
		return nil, &domain.BusinessRuleError{
			Message: "topic belongs to a nonexistent author, cannot be edited",
		}
	}

	topic.Title = strings.TrimSpace(req.Title)
	topic.Question = strings.TrimSpace(req.Question)
	topic.CourseID = courseID
	if req.Status != nil {
		topic.Status = *req.Status
	}

	if err := s.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}

	s.logger.Info("topic updated",
		"id", topic.ID,
		"actor_id", actor.ID,
		"actor_role", actor.Role,
	)

	return topic, nil
}

// DeleteTopic removes a topic and, via storage cascade, its answers
func (s *topicService) DeleteTopic(ctx context.Context, id, actorID int64) error {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	actor, err := s.users.Resolve(ctx, actorID)
	if err != nil {
		return fmt.Errorf("delete topic %d: %w", id, err)
	}

	if decision := authz.Evaluate(actor, topic.AuthorID, authz.OperationDelete); !decision.Allowed {
		return decision.Deny()
	}

	if err := s.topicRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("topic deleted",
		"id", id,
		"actor_id", actor.ID,
		"actor_role", actor.Role,
	)

	return nil
}

// validateCreateRequest validates a create topic request
func (s *topicService) validateCreateRequest(req *services.CreateTopicRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.CourseID, validation.Required),
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTopicTitleLength),
		),
		validation.Field(&req.Question,
			validation.Required,
			validation.Length(1, config.MaxQuestionLength),
		),
	)
}

// validateUpdateRequest validates an update topic request
func (s *topicService) validateUpdateRequest(req *services.UpdateTopicRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTopicTitleLength),
		),
		validation.Field(&req.Question,
			validation.Required,
			validation.Length(1, config.MaxQuestionLength),
		),
		validation.Field(&req.Status, validation.By(validateStatus)),
	)
}

// validateStatus validates an optional explicit topic status
func validateStatus(value interface{}) error {
	status, ok := value.(*models.TopicStatus)
	if !ok || status == nil {
		return nil
	}
	switch *status {
	case models.TopicUnsolved, models.TopicSolved:
		return nil
	default:
		return fmt.Errorf("status must be %s or %s", models.TopicUnsolved, models.TopicSolved)
	}
}
