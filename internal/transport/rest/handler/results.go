package handler

import (
	"net/http"
	"strconv"

	"careernav/internal/repository"
	"careernav/internal/transport/rest/middleware"
)

// ResultsHandler serves stored assessment results
type ResultsHandler struct {
	resultRepo repository.ResultRepo
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultRepo repository.ResultRepo) *ResultsHandler {
	return &ResultsHandler{resultRepo: resultRepo}
}

// ListMine handles GET /v1/results
func (h *ResultsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	results, err := h.resultRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// ListAll handles GET /v1/admin/results
func (h *ResultsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit := int64(100)
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	results, err := h.resultRepo.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
