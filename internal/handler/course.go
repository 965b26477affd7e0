package handler

import (
	"log/slog"
	"net/http"

	"forumhub/internal/catalog"
	"forumhub/internal/domain/services"
	"forumhub/internal/httputil"
)

// CourseHandler handles course HTTP requests
type CourseHandler struct {
	courseService services.CourseService
	categories    *catalog.Registry
	logger        *slog.Logger
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseService services.CourseService, categories *catalog.Registry, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		categories:    categories,
		logger:        logger,
	}
}

// CreateCourse registers a new course (admin only)
// POST /courses
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	var req services.CreateCourseRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.courseService.CreateCourse(r.Context(), actor, &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, course)
}

// GetCourse retrieves a course by id
// GET /courses/{id}
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.courseService.GetCourse(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, course)
}

// ListCourses retrieves all courses
// GET /courses
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, courses)
}

// ListCategories returns the fixed course-category catalog
// GET /courses/categories
func (h *CourseHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.categories.List())
}
