package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"toyota-finder-api/internal/model"
	"toyota-finder-api/internal/repository"
)

const maxComparisonVehicles = 3

var comparePrinter = message.NewPrinter(language.AmericanEnglish)

type CompareHandler struct {
	vehicles    *repository.VehicleRepo
	comparisons *repository.ComparisonRepo
	logger      *zap.Logger
}

func NewCompareHandler(vehicles *repository.VehicleRepo, comparisons *repository.ComparisonRepo, logger *zap.Logger) *CompareHandler {
	return &CompareHandler{vehicles: vehicles, comparisons: comparisons, logger: logger}
}

// Compare answers POST /compare: side-by-side table for up to three
// vehicles, with the session persisted for "recently compared" lookups.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}
	if len(req.VehicleIDs) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "vehicle_ids is required")
		return
	}
	if len(req.VehicleIDs) > maxComparisonVehicles {
		writeError(w, http.StatusBadRequest, "invalid_request", "You can compare up to 3 vehicles")
		return
	}

	var vehicles []model.Vehicle
	for _, id := range req.VehicleIDs {
		v, err := h.vehicles.GetByID(ctx, id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "database_error", "Failed to fetch vehicles")
			return
		}
		if v != nil {
			vehicles = append(vehicles, *v)
		}
	}
	if len(vehicles) == 0 {
		writeError(w, http.StatusNotFound, "not_found", "No vehicles found")
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	if err := h.comparisons.RecordSession(ctx, req.SessionID, req.VehicleIDs); err != nil {
		// The table is still useful without the saved session.
		h.logger.Warn("failed to record comparison session", zap.String("session_id", req.SessionID), zap.Error(err))
	}

	writeJSON(w, http.StatusOK, model.ComparisonResponse{
		Vehicles:        vehicles,
		ComparisonTable: comparisonTable(vehicles),
	})
}

func comparisonTable(vehicles []model.Vehicle) map[string][]string {
	table := map[string][]string{}
	row := func(key string, value func(model.Vehicle) string) {
		cells := make([]string, 0, len(vehicles))
		for _, v := range vehicles {
			cells = append(cells, value(v))
		}
		table[key] = cells
	}

	row("Model", func(v model.Vehicle) string { return v.Model + " " + v.Trim })
	row("Price", func(v model.Vehicle) string { return comparePrinter.Sprintf("$%d", int64(v.Price)) })
	row("MPG (City/Hwy/Combined)", func(v model.Vehicle) string {
		combined := "N/A"
		if v.MPGCombined != nil {
			combined = strconv.Itoa(*v.MPGCombined)
		}
		return strconv.Itoa(v.MPGCity) + "/" + strconv.Itoa(v.MPGHighway) + "/" + combined
	})
	row("Drivetrain", func(v model.Vehicle) string { return v.Drivetrain })
	row("Engine", func(v model.Vehicle) string { return v.Engine })
	row("Transmission", func(v model.Vehicle) string { return v.Transmission })
	row("Seating", func(v model.Vehicle) string { return strconv.Itoa(v.Seating) })
	row("Cargo Volume", func(v model.Vehicle) string {
		return strconv.FormatFloat(v.CargoVolume, 'f', -1, 64) + " cu ft"
	})
	row("Towing Capacity", func(v model.Vehicle) string {
		if v.TowingCapacity == 0 {
			return "N/A"
		}
		return comparePrinter.Sprintf("%d lbs", v.TowingCapacity)
	})
	row("Safety Rating", func(v model.Vehicle) string {
		return strconv.FormatFloat(v.SafetyRating, 'f', -1, 64)
	})
	return table
}
