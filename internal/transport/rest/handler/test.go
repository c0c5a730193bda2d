package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"careernav/internal/model"
	"careernav/internal/service"
	"careernav/internal/transport/rest/middleware"
)

// TestHandler handles personality test endpoints
type TestHandler struct {
	testSvc *service.TestService
}

// NewTestHandler creates a new test handler
func NewTestHandler(testSvc *service.TestService) *TestHandler {
	return &TestHandler{testSvc: testSvc}
}

// AnswerRequest is the request body for answering a question
type AnswerRequest struct {
	QuestionID string          `json:"questionId"`
	Score      int             `json:"score,omitempty"`
	Archetype  model.Archetype `json:"archetype,omitempty"`
}

// Start handles POST /v1/test/start
func (h *TestHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	first := h.testSvc.Start(r.Context(), userID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"question": first,
		"progress": 0,
	})
}

// Answer handles POST /v1/test/answer
func (h *TestHandler) Answer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	outcome := h.testSvc.Answer(r.Context(), userID, req.QuestionID, model.AnswerValue{
		Score:     req.Score,
		Archetype: req.Archetype,
	})
	writeJSON(w, http.StatusOK, outcome)
}

// Progress handles GET /v1/test/progress
func (h *TestHandler) Progress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"progress": h.testSvc.Progress(r.Context(), userID),
		"question": h.testSvc.CurrentQuestion(r.Context(), userID),
	})
}

// Results handles GET /v1/test/results
func (h *TestHandler) Results(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.testSvc.Results(r.Context(), userID)
	if errors.Is(err, service.ErrTestNotFinished) {
		writeError(w, http.StatusConflict, "test is not finished")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
