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

// answerService implements the AnswerService interface
type answerService struct {
	topicRepo  repositories.TopicRepository
	answerRepo repositories.AnswerRepository
	users      directory.Client
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewAnswerService creates a new answer service
func NewAnswerService(
	topicRepo repositories.TopicRepository,
	answerRepo repositories.AnswerRepository,
	users directory.Client,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.AnswerService {
	return &answerService{
		topicRepo:  topicRepo,
		answerRepo: answerRepo,
		users:      users,
		txManager:  txManager,
		logger:     logger,
	}
}

// AddAnswer posts a new answer on a topic
func (s *answerService) AddAnswer(ctx context.Context, topicID, actorID int64, req *services.AddAnswerRequest) (*models.Answer, error) {
	if err := s.validateSolution(req.Solution); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	topic, err := s.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	actor, err := s.users.Resolve(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("answer topic %d: %w", topicID, err)
	}

	answer := &models.Answer{
		Solution:  strings.TrimSpace(req.Solution),
		AuthorID:  actor.ID,
		TopicID:   topic.ID,
		IsBest:    false,
		CreatedAt: time.Now(),
	}

	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}

	s.logger.Info("answer created",
		"id", answer.ID,
		"topic_id", topic.ID,
		"author_id", actor.ID,
	)

	return answer, nil
}

// MarkBestAnswer flags an answer as the topic's accepted solution and moves
// the topic to SOLVED in one transaction.
//
// The "at most one best answer" check here is check-then-act; the partial
// unique index on answers(topic_id) WHERE is_best backstops concurrent calls.
func (s *answerService) MarkBestAnswer(ctx context.Context, topicID, answerID, actorID int64) (*models.Answer, error) {
	topic, err := s.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	actor, err := s.users.Resolve(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("mark best answer on topic %d: %w", topicID, err)
	}

	// Ownership of the topic, not role, gates this operation.
	if decision := authz.EvaluateTopicOwnership(actor, topic); !decision.Allowed {
		return nil, decision.Deny()
	}

	answers, err := s.answerRepo.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, &domain.BusinessRuleError{Message: "no answers yet for this topic"}
	}

	var target *models.Answer
	for i := range answers {
		if answers[i].IsBest {
			return nil, &domain.BusinessRuleError{Message: "a best answer already exists"}
		}
		if answers[i].ID == answerID {
			target = &answers[i]
		}
	}
	if target == nil {
		return nil, &domain.NotFoundError{
			Message: fmt.Sprintf("answer %d not found on topic %d", answerID, topicID),
		}
	}

	target.IsBest = true
	topic.Status = models.TopicSolved

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.answerRepo.Update(txCtx, target); err != nil {
			return err
		}
		return s.topicRepo.Update(txCtx, topic)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("best answer marked",
		"topic_id", topic.ID,
		"answer_id", target.ID,
		"actor_id", actor.ID,
	)

	return target, nil
}

// UpdateAnswer edits an answer's solution
func (s *answerService) UpdateAnswer(ctx context.Context, topicID, answerID, actorID int64, req *services.UpdateAnswerRequest) (*models.Answer, error) {
	if err := s.validateSolution(req.Solution); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	topic, err := s.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer.TopicID != topic.ID {
		return nil, &domain.BusinessRuleError{Message: "answer does not belong to this topic"}
	}

	actor, err := s.users.Resolve(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("update answer %d: %w", answerID, err)
	}

	ownerID := answer.AuthorID
	if decision := authz.Evaluate(actor, &ownerID, authz.OperationEdit); !decision.Allowed {
		return nil, decision.Deny()
	}

	// Mirrors the topic guard: answers on an orphaned-author topic stay
	// frozen even for otherwise-authorized editors.
	if topic.Orphaned() {
		return nil, &domain.BusinessRuleError{
			Message: "topic belongs to a nonexistent author, cannot be edited",
		}
	}

	answer.Solution = strings.TrimSpace(req.Solution)

	if err := s.answerRepo.Update(ctx, answer); err != nil {
		return nil, err
	}

	s.logger.Info("answer updated",
		"id", answer.ID,
		"topic_id", topic.ID,
		"actor_id", actor.ID,
		"actor_role", actor.Role,
	)

	return answer, nil
}

// DeleteAnswer removes an answer
func (s *answerService) DeleteAnswer(ctx context.Context, topicID, answerID, actorID int64) error {
	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer.TopicID != topicID {
		return &domain.BusinessRuleError{Message: "answer does not belong to this topic"}
	}

	actor, err := s.users.Resolve(ctx, actorID)
	if err != nil {
		return fmt.Errorf("delete answer %d: %w", answerID, err)
	}

	ownerID := answer.AuthorID
	if decision := authz.Evaluate(actor, &ownerID, authz.OperationDelete); !decision.Allowed {
		return decision.Deny()
	}

	if err := s.answerRepo.Delete(ctx, answerID); err != nil {
		return err
	}

	s.logger.Info("answer deleted",
		"id", answerID,
		"topic_id", topicID,
		"actor_id", actor.ID,
		"actor_role", actor.Role,
	)

	return nil
}

// validateSolution validates an answer body
func (s *answerService) validateSolution(solution string) error {
	return validation.Validate(solution,
		validation.Required,
		validation.Length(1, config.MaxSolutionLength),
	)
}
