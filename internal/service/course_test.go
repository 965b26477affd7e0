package service

import (
	"context"
	"errors"
	"testing"

	"forumhub/internal/catalog"
	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
	"forumhub/internal/domain/services"
)

func newCourseFixture(t *testing.T, authors ...models.Author) (*fakeCourseRepo, services.CourseService) {
	t.Helper()
	registry, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("catalog.NewRegistry: %v", err)
	}
	courses := newFakeCourseRepo()
	users := newFakeDirectory(authors...)
	svc := NewCourseService(courses, registry, users, testLogger())
	return courses, svc
}

func TestCreateCourseAsAdmin(t *testing.T) {
	courses, svc := newCourseFixture(t, adminAuthor(3))

	course, err := svc.CreateCourse(context.Background(), 3, &services.CreateCourseRequest{
		Name:     "Spring Boot",
		Category: "BACKEND",
	})
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.ID == 0 {
		t.Error("course id not assigned")
	}
	if len(courses.courses) != 1 {
		t.Error("course not persisted")
	}
}

func TestCreateCourseDeniedForBasic(t *testing.T) {
	courses, svc := newCourseFixture(t, basicAuthor(1))

	_, err := svc.CreateCourse(context.Background(), 1, &services.CreateCourseRequest{
		Name:     "Spring Boot",
		Category: "BACKEND",
	})
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	if len(courses.courses) != 0 {
		t.Error("no course should be persisted")
	}
}

func TestCreateCourseUnknownCategory(t *testing.T) {
	_, svc := newCourseFixture(t, adminAuthor(3))

	_, err := svc.CreateCourse(context.Background(), 3, &services.CreateCourseRequest{
		Name:     "Underwater Basket Weaving",
		Category: "CRAFTS",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
