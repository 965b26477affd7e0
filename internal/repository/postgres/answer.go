package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
	"forumhub/internal/domain/repositories"
)

// PostgresAnswerRepository implements the AnswerRepository interface
type PostgresAnswerRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(config *RepositoryConfig) repositories.AnswerRepository {
	return &PostgresAnswerRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new answer
func (r *PostgresAnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (solution, author_id, topic_id, is_best, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, r.tables.Answers)

	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		answer.Solution,
		answer.AuthorID,
		answer.TopicID,
		answer.IsBest,
		answer.CreatedAt,
	).Scan(&answer.ID, &answer.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("topic %d: %w", answer.TopicID, domain.ErrNotFound)
		}
		return fmt.Errorf("create answer: %w", err)
	}

	return nil
}

// GetByID retrieves an answer by ID
func (r *PostgresAnswerRepository) GetByID(ctx context.Context, id int64) (*models.Answer, error) {
	query := fmt.Sprintf(`
		SELECT id, solution, author_id, topic_id, is_best, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Answers)

	var answer models.Answer
	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&answer.ID,
		&answer.Solution,
		&answer.AuthorID,
		&answer.TopicID,
		&answer.IsBest,
		&answer.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("answer %d not found", id)}
		}
		return nil, fmt.Errorf("get answer: %w", err)
	}

	return &answer, nil
}

// ListByTopic retrieves all answers for a topic, oldest first
func (r *PostgresAnswerRepository) ListByTopic(ctx context.Context, topicID int64) ([]models.Answer, error) {
	query := fmt.Sprintf(`
		SELECT id, solution, author_id, topic_id, is_best, created_at
		FROM %s
		WHERE topic_id = $1
		ORDER BY created_at ASC
	`, r.tables.Answers)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var answers []models.Answer
	for rows.Next() {
		var answer models.Answer
		err := rows.Scan(
			&answer.ID,
			&answer.Solution,
			&answer.AuthorID,
			&answer.TopicID,
			&answer.IsBest,
			&answer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, answer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}

	if answers == nil {
		answers = []models.Answer{}
	}

	return answers, nil
}

// Update persists the answer's solution and best-answer flag
func (r *PostgresAnswerRepository) Update(ctx context.Context, answer *models.Answer) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET solution = $1, is_best = $2
		WHERE id = $3
	`, r.tables.Answers)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		answer.Solution,
		answer.IsBest,
		answer.ID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			// The partial unique index on (topic_id) WHERE is_best fired:
			// a concurrent request marked another best answer first.
			return &domain.ConflictError{
				Message:      fmt.Sprintf("topic %d already has a best answer", answer.TopicID),
				ResourceType: "answer",
				ResourceID:   fmt.Sprintf("%d", answer.ID),
			}
		}
		return fmt.Errorf("update answer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("answer %d not found", answer.ID)}
	}

	return nil
}

// Delete deletes an answer
func (r *PostgresAnswerRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Answers)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("answer %d not found", id)}
	}

	return nil
}
