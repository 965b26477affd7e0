package service

import (
	"context"
	"errors"
	"testing"

	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
	"forumhub/internal/domain/services"
)

func ptr(v int64) *int64 { return &v }

func basicAuthor(id int64) models.Author {
	return models.Author{ID: id, Username: "user", Email: "user@example.com", Role: models.RoleBasic}
}

func adminAuthor(id int64) models.Author {
	return models.Author{ID: id, Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin}
}

func newTopicFixture(authors ...models.Author) (*fakeTopicRepo, *fakeAnswerRepo, *fakeCourseRepo, *fakeDirectory, services.TopicService) {
	topics := newFakeTopicRepo()
	answers := newFakeAnswerRepo()
	courses := newFakeCourseRepo()
	courses.put(models.Course{ID: 1, Name: "Go", Category: "BACKEND"})
	users := newFakeDirectory(authors...)
	svc := NewTopicService(topics, answers, courses, users, testLogger())
	return topics, answers, courses, users, svc
}

func TestCreateTopic(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture(basicAuthor(1))

	topic, err := svc.CreateTopic(context.Background(), 1, &services.CreateTopicRequest{
		CourseID: 1,
		Title:    "How do goroutines work?",
		Question: "I keep reading about goroutines but cannot tell them apart from threads.",
	})
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}

	if topic.Status != models.TopicUnsolved {
		t.Errorf("status = %q, want UNSOLVED", topic.Status)
	}
	if topic.AuthorID == nil || *topic.AuthorID != 1 {
		t.Errorf("authorID = %v, want 1", topic.AuthorID)
	}
	if _, ok := topics.topics[topic.ID]; !ok {
		t.Error("topic not persisted")
	}
}

func TestCreateTopicCourseMissing(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture(basicAuthor(1))

	_, err := svc.CreateTopic(context.Background(), 1, &services.CreateTopicRequest{
		CourseID: 99,
		Title:    "title",
		Question: "question",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(topics.topics) != 0 {
		t.Error("no topic should be persisted when the course is missing")
	}
}

func TestCreateTopicDirectoryUnavailable(t *testing.T) {
	topics, _, _, users, svc := newTopicFixture()
	users.forceErr = &domain.RemoteUnavailableError{Message: "user directory unreachable"}

	_, err := svc.CreateTopic(context.Background(), 1, &services.CreateTopicRequest{
		CourseID: 1,
		Title:    "title",
		Question: "question",
	})
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("err = %v, want ErrRemoteUnavailable", err)
	}
	if len(topics.topics) != 0 {
		t.Error("no topic should be persisted when the directory is down")
	}
}

func TestCreateTopicActorNotFoundRemotely(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture() // directory knows nobody

	_, err := svc.CreateTopic(context.Background(), 7, &services.CreateTopicRequest{
		CourseID: 1,
		Title:    "title",
		Question: "question",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(topics.topics) != 0 {
		t.Error("zero writes expected when the actor does not resolve")
	}
}

func TestCreateTopicValidation(t *testing.T) {
	_, _, _, users, svc := newTopicFixture(basicAuthor(1))

	_, err := svc.CreateTopic(context.Background(), 1, &services.CreateTopicRequest{
		CourseID: 1,
		Title:    "",
		Question: "question",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if users.calls != 0 {
		t.Error("validation failures should not reach the user directory")
	}
}

func TestUpdateTopicByOwner(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture(basicAuthor(1))
	topics.put(models.Topic{ID: 10, Title: "old", Question: "old?", Status: models.TopicUnsolved, AuthorID: ptr(1), CourseID: 1})

	updated, err := svc.UpdateTopic(context.Background(), 10, 1, &services.UpdateTopicRequest{
		Title:    "new title",
		Question: "new question",
	})
	if err != nil {
		t.Fatalf("UpdateTopic: %v", err)
	}
	if updated.Title != "new title" {
		t.Errorf("title = %q, want new title", updated.Title)
	}
	if topics.topics[10].Title != "new title" {
		t.Error("update not persisted")
	}
}

func TestUpdateTopicDeniedForBasicNonOwner(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture(basicAuthor(1))
	topics.put(models.Topic{ID: 10, Title: "old", Question: "old?", Status: models.TopicUnsolved, AuthorID: ptr(2), CourseID: 1})

	_, err := svc.UpdateTopic(context.Background(), 10, 1, &services.UpdateTopicRequest{
		Title:    "hijack",
		Question: "hijack",
	})
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	if topics.topics[10].Title != "old" {
		t.Error("topic must stay unchanged after a denial")
	}
}

func TestUpdateTopicAllowedForAdminNonOwner(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture(adminAuthor(3))
	topics.put(models.Topic{ID: 10, Title: "old", Question: "old?", Status: models.TopicUnsolved, AuthorID: ptr(1), CourseID: 1})

	_, err := svc.UpdateTopic(context.Background(), 10, 3, &services.UpdateTopicRequest{
		Title:    "moderated title",
		Question: "moderated question",
	})
	if err != nil {
		t.Fatalf("UpdateTopic as admin: %v", err)
	}
	if topics.topics[10].Title != "moderated title" {
		t.Error("admin edit not persisted")
	}
}

func TestUpdateOrphanedTopicRejectedEvenForAdmin(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture(adminAuthor(3))
	topics.put(models.Topic{ID: 10, Title: "old", Question: "old?", Status: models.TopicUnsolved, AuthorID: nil, CourseID: 1})

	_, err := svc.UpdateTopic(context.Background(), 10, 3, &services.UpdateTopicRequest{
		Title:    "new",
		Question: "new",
	})
	if !errors.Is(err, domain.ErrBusinessRule) {
		t.Fatalf("err = %v, want ErrBusinessRule", err)
	}
	if topics.topics[10].Title != "old" {
		t.Error("orphaned topic must stay frozen")
	}
}

func TestUpdateTopicExplicitStatus(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture(basicAuthor(1))
	topics.put(models.Topic{ID: 10, Title: "old", Question: "old?", Status: models.TopicUnsolved, AuthorID: ptr(1), CourseID: 1})

	solved := models.TopicSolved
	_, err := svc.UpdateTopic(context.Background(), 10, 1, &services.UpdateTopicRequest{
		Title:    "old",
		Question: "old?",
		Status:   &solved,
	})
	if err != nil {
		t.Fatalf("UpdateTopic: %v", err)
	}
	if topics.topics[10].Status != models.TopicSolved {
		t.Error("explicit status edit not applied")
	}
}

func TestDeleteTopicByAdmin(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture(adminAuthor(3))
	topics.put(models.Topic{ID: 1, Title: "t", Question: "q", Status: models.TopicUnsolved, AuthorID: ptr(1), CourseID: 1})

	if err := svc.DeleteTopic(context.Background(), 1, 3); err != nil {
		t.Fatalf("DeleteTopic as admin: %v", err)
	}
	if len(topics.topics) != 0 {
		t.Error("topic not removed")
	}
}

func TestDeleteTopicDeniedForBasicNonOwner(t *testing.T) {
	topics, _, _, _, svc := newTopicFixture(basicAuthor(1))
	topics.put(models.Topic{ID: 1, Title: "t", Question: "q", Status: models.TopicUnsolved, AuthorID: ptr(2), CourseID: 1})

	err := svc.DeleteTopic(context.Background(), 1, 1)
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	if topics.deletes != 0 {
		t.Error("no delete should happen after a denial")
	}
}

func TestDeleteTopicDirectoryUnavailable(t *testing.T) {
	topics, _, _, users, svc := newTopicFixture(basicAuthor(1))
	topics.put(models.Topic{ID: 1, Title: "t", Question: "q", Status: models.TopicUnsolved, AuthorID: ptr(1), CourseID: 1})
	users.forceErr = &domain.RemoteUnavailableError{Message: "timeout"}

	err := svc.DeleteTopic(context.Background(), 1, 1)
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("err = %v, want ErrRemoteUnavailable", err)
	}
	if topics.deletes != 0 {
		t.Error("no delete should happen when the directory is down")
	}
}

func TestGetTopicWithAnswers(t *testing.T) {
	topics, answers, _, _, svc := newTopicFixture()
	topics.put(models.Topic{ID: 1, Title: "t", Question: "q", Status: models.TopicUnsolved, AuthorID: ptr(1), CourseID: 1})
	answers.put(models.Answer{ID: 1, Solution: "a", AuthorID: 2, TopicID: 1})
	answers.put(models.Answer{ID: 2, Solution: "b", AuthorID: 3, TopicID: 1})
	answers.put(models.Answer{ID: 3, Solution: "other topic", AuthorID: 3, TopicID: 2})

	detail, err := svc.GetTopic(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetTopic: %v", err)
	}
	if len(detail.Answers) != 2 {
		t.Errorf("answers = %d, want 2", len(detail.Answers))
	}
}
