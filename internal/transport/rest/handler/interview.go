package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"interviewai/internal/model"
	"interviewai/internal/service"
	"interviewai/internal/store"
)

const maxResumeSize = 10 << 20

// InterviewHandler handles the candidate-facing interview endpoints.
type InterviewHandler struct {
	interviews *service.InterviewService
}

// NewInterviewHandler creates a new interview handler.
func NewInterviewHandler(interviews *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// UploadResume handles POST /upload-resume: multipart "resume" file plus a
// "role" form field.
func (h *InterviewHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing resume file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable resume file")
		return
	}

	role := r.FormValue("role")

	resp, err := h.interviews.Start(r.Context(), string(content), role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to process resume: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetQuestion handles GET /get-question?session_id=
func (h *InterviewHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing session_id")
		return
	}

	resp, err := h.interviews.CurrentQuestion(id)
	if err != nil {
		writeInterviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// SubmitResponse handles POST /submit-response?session_id=
func (h *InterviewHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing session_id")
		return
	}

	var req model.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.interviews.SubmitResponse(r.Context(), id, req.Response)
	if err != nil {
		writeInterviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetResults handles GET /get-results?session_id=
func (h *InterviewHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing session_id")
		return
	}

	resp, err := h.interviews.Results(id)
	if err != nil {
		writeInterviewError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeInterviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInterviewComplete):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
