package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"toyota-finder-api/internal/model"
)

const apiVersion = "1.0.0"

type HealthHandler struct {
	db *pgxpool.Pool
}

func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ok"
	dbStatus := "connected"
	if err := h.db.Ping(ctx); err != nil {
		status = "degraded"
		dbStatus = "disconnected"
	}

	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now(),
	})
}

// Info answers GET / with a service banner.
func Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.InfoResponse{
		Message: "Toyota Vehicle Finder API",
		Version: apiVersion,
	})
}
