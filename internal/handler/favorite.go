package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"toyota-finder-api/internal/model"
	"toyota-finder-api/internal/repository"
)

type FavoriteHandler struct {
	favorites *repository.FavoriteRepo
	vehicles  *repository.VehicleRepo
}

func NewFavoriteHandler(favorites *repository.FavoriteRepo, vehicles *repository.VehicleRepo) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, vehicles: vehicles}
}

// List answers GET /favorites/{userID} with embedded vehicle details.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userID")

	favorites, err := h.favorites.ListByUser(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "Failed to list favorites")
		return
	}
	if favorites == nil {
		favorites = []model.Favorite{}
	}

	writeJSON(w, http.StatusOK, favorites)
}

// Create answers POST /favorites.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.FavoriteCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}
	if req.UserID == "" || req.VehicleID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id and vehicle_id are required")
		return
	}

	vehicle, err := h.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "Failed to fetch vehicle")
		return
	}
	if vehicle == nil {
		writeError(w, http.StatusNotFound, "not_found", "Vehicle not found")
		return
	}

	exists, err := h.favorites.Exists(ctx, req.UserID, req.VehicleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "Failed to check favorites")
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "already_exists", "Vehicle already in favorites")
		return
	}

	favorite, err := h.favorites.Create(ctx, req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "Failed to create favorite")
		return
	}
	favorite.Vehicle = vehicle

	writeJSON(w, http.StatusCreated, favorite)
}

// Delete answers DELETE /favorites/{userID}/{vehicleID}.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userID")

	vehicleID, err := strconv.Atoi(chi.URLParam(r, "vehicleID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "Vehicle id must be an integer")
		return
	}

	removed, err := h.favorites.Delete(ctx, userID, vehicleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "Failed to remove favorite")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "not_found", "Favorite not found")
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Favorite removed successfully"})
}
