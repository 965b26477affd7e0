package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
	"forumhub/internal/domain/repositories"
)

// PostgresTopicRepository implements the TopicRepository interface
type PostgresTopicRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(config *RepositoryConfig) repositories.TopicRepository {
	return &PostgresTopicRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new topic
func (r *PostgresTopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, question, status, author_id, course_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, r.tables.Topics)

	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		topic.Title,
		topic.Question,
		topic.Status,
		topic.AuthorID,
		topic.CourseID,
		topic.CreatedAt,
	).Scan(&topic.ID, &topic.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("course %d: %w", topic.CourseID, domain.ErrNotFound)
		}
		return fmt.Errorf("create topic: %w", err)
	}

	return nil
}

// GetByID retrieves a topic by ID
func (r *PostgresTopicRepository) GetByID(ctx context.Context, id int64) (*models.Topic, error) {
	query := fmt.Sprintf(`
		SELECT id, title, question, status, author_id, course_id, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Topics)

	var topic models.Topic
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&topic.ID,
		&topic.Title,
		&topic.Question,
		&topic.Status,
		&topic.AuthorID,
		&topic.CourseID,
		&topic.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("topic %d not found", id)}
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}

	return &topic, nil
}

// ListByCourse retrieves all topics for a course, newest first
func (r *PostgresTopicRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Topic, error) {
	query := fmt.Sprintf(`
		SELECT id, title, question, status, author_id, course_id, created_at
		FROM %s
		WHERE course_id = $1
		ORDER BY created_at DESC
	`, r.tables.Topics)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var topic models.Topic
		err := rows.Scan(
			&topic.ID,
			&topic.Title,
			&topic.Question,
			&topic.Status,
			&topic.AuthorID,
			&topic.CourseID,
			&topic.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, topic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}

	// Return empty slice instead of nil if no topics
	if topics == nil {
		topics = []models.Topic{}
	}

	return topics, nil
}

// Update persists the topic's mutable fields
func (r *PostgresTopicRepository) Update(ctx context.Context, topic *models.Topic) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, question = $2, status = $3, course_id = $4
		WHERE id = $5
	`, r.tables.Topics)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		topic.Title,
		topic.Question,
		topic.Status,
		topic.CourseID,
		topic.ID,
	)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("course %d: %w", topic.CourseID, domain.ErrNotFound)
		}
		return fmt.Errorf("update topic: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("topic %d not found", topic.ID)}
	}

	return nil
}

// Delete deletes a topic; its answers are removed by the ON DELETE CASCADE
// constraint on answers.topic_id
func (r *PostgresTopicRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Topics)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("topic %d not found", id)}
	}

	return nil
}
