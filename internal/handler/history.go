package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"toyota-finder-api/internal/model"
	"toyota-finder-api/internal/repository"
)

const defaultHistoryLimit = 10

type HistoryHandler struct {
	history *repository.HistoryRepo
}

func NewHistoryHandler(history *repository.HistoryRepo) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Record answers POST /history.
func (h *HistoryHandler) Record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ViewHistoryCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}
	if req.UserID == "" || req.VehicleID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id and vehicle_id are required")
		return
	}

	if err := h.history.Record(ctx, req); err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "Failed to record view")
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "View recorded"})
}

// List answers GET /history/{userID}?limit=, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userID")

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "invalid_param", "limit must be a positive integer")
			return
		}
		limit = v
	}

	views, err := h.history.ListByUser(ctx, userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "Failed to list history")
		return
	}
	if views == nil {
		views = []model.ViewHistory{}
	}

	writeJSON(w, http.StatusOK, views)
}
