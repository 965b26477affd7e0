package models

import "time"

// Answer is a proposed solution to a topic.
//
// At most one answer per topic may have IsBest set. The answer service
// enforces this with a check before writing; the partial unique index on
// (topic_id) WHERE is_best is the storage backstop under concurrent requests.
type Answer struct {
	ID        int64     `json:"id"`
	Solution  string    `json:"solution"`
	AuthorID  int64     `json:"authorId"`
	TopicID   int64     `json:"topicId"`
	IsBest    bool      `json:"isBestAnswer"`
	CreatedAt time.Time `json:"createdAt"`
}
