package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"interviewai/internal/service"
	"interviewai/internal/store"
)

// AdminHandler serves the host-only statistics endpoints.
type AdminHandler struct {
	interviews *service.InterviewService
	evaluator  *service.EvaluatorService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(interviews *service.InterviewService, evaluator *service.EvaluatorService) *AdminHandler {
	return &AdminHandler{interviews: interviews, evaluator: evaluator}
}

// Stats handles GET /stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.evaluator.Stats())
}

// Sessions handles GET /sessions
func (h *AdminHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.interviews.Sessions())
}

// SessionAnswers handles GET /sessions/{sessionId}/answers
func (h *AdminHandler) SessionAnswers(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	records, err := h.interviews.Answers(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, records)
}
