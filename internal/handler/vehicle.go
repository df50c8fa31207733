package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"toyota-finder-api/internal/model"
	"toyota-finder-api/internal/repository"
)

type VehicleHandler struct {
	repo *repository.VehicleRepo
}

func NewVehicleHandler(repo *repository.VehicleRepo) *VehicleHandler {
	return &VehicleHandler{repo: repo}
}

// List answers GET /cars with optional filters passed as query params.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := model.VehicleFilter{
		Model:       q.Get("model"),
		Drivetrain:  q.Get("drivetrain"),
		Category:    q.Get("category"),
		SearchQuery: q.Get("search_query"),
	}

	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_param", "min_price must be a number")
			return
		}
		filter.MinPrice = &v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_param", "max_price must be a number")
			return
		}
		filter.MaxPrice = &v
	}
	if raw := q.Get("min_mpg"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_param", "min_mpg must be an integer")
			return
		}
		filter.MinMPG = &v
	}

	vehicles, err := h.repo.List(ctx, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "Failed to list vehicles")
		return
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}

	writeJSON(w, http.StatusOK, vehicles)
}

// Get answers GET /cars/{id}.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "Vehicle id must be an integer")
		return
	}

	vehicle, err := h.repo.GetByID(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "Failed to fetch vehicle")
		return
	}
	if vehicle == nil {
		writeError(w, http.StatusNotFound, "not_found", "Vehicle not found")
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}
