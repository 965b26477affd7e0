package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
	"forumhub/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTopicRepo is an in-memory TopicRepository. It hands out copies so that
// tests can assert that a failed workflow left the stored entity untouched.
type fakeTopicRepo struct {
	topics  map[int64]models.Topic
	nextID  int64
	updates int
	deletes int
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{topics: make(map[int64]models.Topic), nextID: 1}
}

func (r *fakeTopicRepo) put(t models.Topic) {
	if t.ID >= r.nextID {
		r.nextID = t.ID + 1
	}
	r.topics[t.ID] = t
}

func (r *fakeTopicRepo) Create(ctx context.Context, topic *models.Topic) error {
	topic.ID = r.nextID
	r.nextID++
	r.topics[topic.ID] = *topic
	return nil
}

func (r *fakeTopicRepo) GetByID(ctx context.Context, id int64) (*models.Topic, error) {
	topic, ok := r.topics[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("topic %d not found", id)}
	}
	copied := topic
	return &copied, nil
}

func (r *fakeTopicRepo) ListByCourse(ctx context.Context, courseID int64) ([]models.Topic, error) {
	var out []models.Topic
	for _, t := range r.topics {
		if t.CourseID == courseID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeTopicRepo) Update(ctx context.Context, topic *models.Topic) error {
	if _, ok := r.topics[topic.ID]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("topic %d not found", topic.ID)}
	}
	r.topics[topic.ID] = *topic
	r.updates++
	return nil
}

func (r *fakeTopicRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.topics[id]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("topic %d not found", id)}
	}
	delete(r.topics, id)
	r.deletes++
	return nil
}

// fakeAnswerRepo is an in-memory AnswerRepository
type fakeAnswerRepo struct {
	answers map[int64]models.Answer
	nextID  int64
	creates int
	updates int
	deletes int
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[int64]models.Answer), nextID: 1}
}

func (r *fakeAnswerRepo) put(a models.Answer) {
	if a.ID >= r.nextID {
		r.nextID = a.ID + 1
	}
	r.answers[a.ID] = a
}

func (r *fakeAnswerRepo) Create(ctx context.Context, answer *models.Answer) error {
	answer.ID = r.nextID
	r.nextID++
	r.answers[answer.ID] = *answer
	r.creates++
	return nil
}

func (r *fakeAnswerRepo) GetByID(ctx context.Context, id int64) (*models.Answer, error) {
	answer, ok := r.answers[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("answer %d not found", id)}
	}
	copied := answer
	return &copied, nil
}

func (r *fakeAnswerRepo) ListByTopic(ctx context.Context, topicID int64) ([]models.Answer, error) {
	var out []models.Answer
	for _, a := range r.answers {
		if a.TopicID == topicID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAnswerRepo) Update(ctx context.Context, answer *models.Answer) error {
	if _, ok := r.answers[answer.ID]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("answer %d not found", answer.ID)}
	}
	r.answers[answer.ID] = *answer
	r.updates++
	return nil
}

func (r *fakeAnswerRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.answers[id]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("answer %d not found", id)}
	}
	delete(r.answers, id)
	r.deletes++
	return nil
}

// fakeCourseRepo is an in-memory CourseRepository
type fakeCourseRepo struct {
	courses map[int64]models.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]models.Course), nextID: 1}
}

func (r *fakeCourseRepo) put(c models.Course) {
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	r.courses[c.ID] = c
}

func (r *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	course.ID = r.nextID
	r.nextID++
	r.courses[course.ID] = *course
	return nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("course %d not found", id)}
	}
	copied := course
	return &copied, nil
}

func (r *fakeCourseRepo) List(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range r.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// fakeDirectory resolves from a fixed map, or fails with a forced error.
// Mirrors the production client's contract: typed errors, no fallback author.
type fakeDirectory struct {
	authors  map[int64]models.Author
	forceErr error
	calls    int
}

func newFakeDirectory(authors ...models.Author) *fakeDirectory {
	d := &fakeDirectory{authors: make(map[int64]models.Author)}
	for _, a := range authors {
		d.authors[a.ID] = a
	}
	return d
}

func (d *fakeDirectory) Resolve(ctx context.Context, userID int64) (*models.Author, error) {
	d.calls++
	if d.forceErr != nil {
		return nil, d.forceErr
	}
	author, ok := d.authors[userID]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("user %d not found", userID)}
	}
	copied := author
	return &copied, nil
}

// fakeTxManager runs the function directly; the in-memory repositories have
// no transaction semantics to exercise.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.calls++
	return fn(ctx)
}
