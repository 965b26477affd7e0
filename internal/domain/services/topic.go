package services

import (
	"context"

	"forumhub/internal/domain/models"
)

// CreateTopicRequest represents a request to open a new topic on a course
type CreateTopicRequest struct {
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
	Question string `json:"question"`
}

// UpdateTopicRequest represents a request to edit a topic.
// CourseID and Status are optional; omitted fields keep their current value.
type UpdateTopicRequest struct {
	Title    string              `json:"title"`
	Question string              `json:"question"`
	CourseID *int64              `json:"course_id"`
	Status   *models.TopicStatus `json:"status"`
}

// TopicDetail is a topic together with its answers, for read endpoints.
type TopicDetail struct {
	Topic   *models.Topic   `json:"topic"`
	Answers []models.Answer `json:"answers"`
}

// TopicService defines business logic operations for topics.
//
// All mutating operations resolve the acting user against the remote user
// directory before touching storage; a failed resolution aborts the operation
// with zero writes.
type TopicService interface {
	// CreateTopic opens a new UNSOLVED topic authored by actorID
	CreateTopic(ctx context.Context, actorID int64, req *CreateTopicRequest) (*models.Topic, error)

	// GetTopic retrieves a topic with its answers
	GetTopic(ctx context.Context, id int64) (*TopicDetail, error)

	// ListTopicsByCourse retrieves all topics for a course, newest first
	ListTopicsByCourse(ctx context.Context, courseID int64) ([]models.Topic, error)

	// UpdateTopic edits a topic's fields, subject to the ownership/role policy
	// and to the orphaned-author guard
	UpdateTopic(ctx context.Context, id, actorID int64, req *UpdateTopicRequest) (*models.Topic, error)

	// DeleteTopic removes a topic, subject to the ownership/role policy.
	// Its answers go with it (storage cascade).
	DeleteTopic(ctx context.Context, id, actorID int64) error
}
