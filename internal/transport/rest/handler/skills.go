package handler

import (
	"encoding/json"
	"net/http"

	"careernav/internal/model"
	"careernav/internal/service"
	"careernav/internal/transport/rest/middleware"
)

// SkillsHandler handles the linear scoring model endpoint
type SkillsHandler struct {
	skillsSvc *service.SkillsService
}

// NewSkillsHandler creates a new skills handler
func NewSkillsHandler(skillsSvc *service.SkillsService) *SkillsHandler {
	return &SkillsHandler{skillsSvc: skillsSvc}
}

// Evaluate handles POST /v1/skills/evaluate
func (h *SkillsHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var rec model.SkillRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.skillsSvc.Evaluate(r.Context(), userID, &rec)
	writeJSON(w, http.StatusOK, result)
}
