package services

import (
	"context"

	"forumhub/internal/domain/models"
)

// AddAnswerRequest represents a request to post an answer on a topic
type AddAnswerRequest struct {
	Solution string `json:"solution"`
}

// UpdateAnswerRequest represents a request to edit an answer's solution
type UpdateAnswerRequest struct {
	Solution string `json:"solution"`
}

// AnswerService defines business logic operations for answers.
//
// Like TopicService, every mutation resolves the acting user against the
// remote directory first and performs no writes until all checks pass.
type AnswerService interface {
	// AddAnswer posts a new answer on the topic, authored by actorID
	AddAnswer(ctx context.Context, topicID, actorID int64, req *AddAnswerRequest) (*models.Answer, error)

	// MarkBestAnswer flags the answer as the topic's accepted solution and
	// moves the topic to SOLVED, atomically. Only the topic's own author may
	// call it, regardless of role. Fails when the topic has no answers or
	// already has a best answer.
	MarkBestAnswer(ctx context.Context, topicID, answerID, actorID int64) (*models.Answer, error)

	// UpdateAnswer edits an answer's solution, subject to the ownership/role
	// policy and to the orphaned-author guard on the answer's topic
	UpdateAnswer(ctx context.Context, topicID, answerID, actorID int64, req *UpdateAnswerRequest) (*models.Answer, error)

	// DeleteAnswer removes an answer, subject to the ownership/role policy
	DeleteAnswer(ctx context.Context, topicID, answerID, actorID int64) error
}
