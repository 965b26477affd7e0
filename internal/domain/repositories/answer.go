package repositories

import (
	"context"

	"forumhub/internal/domain/models"
)

// AnswerRepository defines data access operations for answers
type AnswerRepository interface {
	// Create creates a new answer and returns it with generated ID and timestamp
	Create(ctx context.Context, answer *models.Answer) error

	// GetByID retrieves an answer by ID
	GetByID(ctx context.Context, id int64) (*models.Answer, error)

	// ListByTopic retrieves all answers for a topic, oldest first
	ListByTopic(ctx context.Context, topicID int64) ([]models.Answer, error)

	// Update persists the answer's solution and best-answer flag
	Update(ctx context.Context, answer *models.Answer) error

	// Delete deletes an answer
	Delete(ctx context.Context, id int64) error
}
