package handler

import (
	"log/slog"
	"net/http"

	"forumhub/internal/domain/services"
	"forumhub/internal/httputil"
)

// TopicHandler handles topic HTTP requests
type TopicHandler struct {
	topicService services.TopicService
	logger       *slog.Logger
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(topicService services.TopicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		topicService: topicService,
		logger:       logger,
	}
}

// HealthCheck reports service liveness
// GET /health
func (h *TopicHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateTopic opens a new topic
// POST /topics/create
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	var req services.CreateTopicRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	topic, err := h.topicService.CreateTopic(r.Context(), actor, &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, topic)
}

// GetTopic retrieves a topic with its answers
// GET /topics/{id}
func (h *TopicHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.topicService.GetTopic(r.Context(), id)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, detail)
}

// ListTopics retrieves the topics of a course
// GET /topics?course_id=
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	courseID, err := httputil.QueryID(r, "course_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	topics, err := h.topicService.ListTopicsByCourse(r.Context(), courseID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, topics)
}

// UpdateTopic edits a topic
// PUT /topics/edit?topic_id=
func (h *TopicHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	topicID, err := httputil.QueryID(r, "topic_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateTopicRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	topic, err := h.topicService.UpdateTopic(r.Context(), topicID, actor, &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, topic)
}

// DeleteTopic removes a topic
// DELETE /topics/delete?topic_id=
func (h *TopicHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	topicID, err := httputil.QueryID(r, "topic_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.topicService.DeleteTopic(r.Context(), topicID, actor); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
