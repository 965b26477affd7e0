package repositories

import (
	"context"

	"forumhub/internal/domain/models"
)

// TopicRepository defines data access operations for topics
type TopicRepository interface {
	// Create creates a new topic and returns it with generated ID and timestamp
	Create(ctx context.Context, topic *models.Topic) error

	// GetByID retrieves a topic by ID
	GetByID(ctx context.Context, id int64) (*models.Topic, error)

	// ListByCourse retrieves all topics for a course, newest first
	ListByCourse(ctx context.Context, courseID int64) ([]models.Topic, error)

	// Update persists the topic's title, question, status and course
	Update(ctx context.Context, topic *models.Topic) error

	// Delete deletes a topic. Associated answers are removed by the
	// ON DELETE CASCADE constraint on answers.topic_id.
	Delete(ctx context.Context, id int64) error
}
