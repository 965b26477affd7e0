package models

import "time"

// TopicStatus is the resolution state of a topic.
type TopicStatus string

const (
	TopicUnsolved TopicStatus = "UNSOLVED"
	TopicSolved   TopicStatus = "SOLVED"
)

// Topic is a question posted against a course.
//
// AuthorID is nil when the recorded author no longer resolves to a real user
// (the account was deleted after the topic was created). Such orphaned topics
// stay readable but reject edits unconditionally.
type Topic struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Question  string      `json:"question"`
	Status    TopicStatus `json:"status"`
	AuthorID  *int64      `json:"authorId"`
	CourseID  int64       `json:"courseId"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Orphaned reports whether the topic's author no longer exists.
func (t *Topic) Orphaned() bool {
	return t.AuthorID == nil
}

// OwnedBy reports whether the given user is the topic's recorded author.
func (t *Topic) OwnedBy(userID int64) bool {
	return t.AuthorID != nil && *t.AuthorID == userID
}
