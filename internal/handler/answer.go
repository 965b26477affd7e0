package handler

import (
	"log/slog"
	"net/http"

	"forumhub/internal/domain/services"
	"forumhub/internal/httputil"
)

// AnswerHandler handles answer HTTP requests
type AnswerHandler struct {
	answerService services.AnswerService
	logger        *slog.Logger
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerService services.AnswerService, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
		logger:        logger,
	}
}

// AddAnswer posts an answer on a topic
// POST /topics/{id}/answer
func (h *AnswerHandler) AddAnswer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	topicID, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.AddAnswerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := h.answerService.AddAnswer(r.Context(), topicID, actor, &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, answer)
}

// MarkBestAnswer flags an answer as the topic's accepted solution
// POST /topics/{id}/markBestAnswer?answer_id=
func (h *AnswerHandler) MarkBestAnswer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	topicID, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	answerID, err := httputil.QueryID(r, "answer_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := h.answerService.MarkBestAnswer(r.Context(), topicID, answerID, actor)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, answer)
}

// UpdateAnswer edits an answer's solution
// PUT /topics/{id}/answers?answer_id=
func (h *AnswerHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	topicID, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	answerID, err := httputil.QueryID(r, "answer_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateAnswerRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := h.answerService.UpdateAnswer(r.Context(), topicID, answerID, actor, &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, answer)
}

// DeleteAnswer removes an answer
// DELETE /topics/{id}/answers/delete?answer_id=
func (h *AnswerHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	topicID, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	answerID, err := httputil.QueryID(r, "answer_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.answerService.DeleteAnswer(r.Context(), topicID, answerID, actor); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
