package handler

import (
	"encoding/json"
	"net/http"

	"toyota-finder-api/internal/finance"
	"toyota-finder-api/internal/model"
)

type FinanceHandler struct{}

func NewFinanceHandler() *FinanceHandler {
	return &FinanceHandler{}
}

// Loan answers POST /finance. The request struct is pre-filled with the
// defaults so absent JSON fields keep them.
func (h *FinanceHandler) Loan(w http.ResponseWriter, r *http.Request) {
	req := model.FinanceRequest{
		IncludeTax:  true,
		TaxRate:     8.25,
		IncludeFees: true,
		Fees:        500,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}

	if req.VehiclePrice <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "vehicle_price must be positive")
		return
	}
	if req.InterestRate < 0 || req.InterestRate > 30 {
		writeError(w, http.StatusBadRequest, "invalid_request", "interest_rate must be between 0 and 30")
		return
	}
	if req.LoanTermMonths < 1 || req.LoanTermMonths > 96 {
		writeError(w, http.StatusBadRequest, "invalid_request", "loan_term_months must be between 1 and 96")
		return
	}

	writeJSON(w, http.StatusOK, finance.Loan(req))
}

// Lease answers POST /lease.
func (h *FinanceHandler) Lease(w http.ResponseWriter, r *http.Request) {
	req := model.LeaseRequest{
		SalesTaxRate: 8.25,
		Fees:         1000,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}

	if req.VehiclePrice <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "vehicle_price must be positive")
		return
	}
	if req.ResidualValue < 0 || req.ResidualValue >= req.VehiclePrice {
		writeError(w, http.StatusBadRequest, "invalid_request", "residual_value must be below vehicle_price")
		return
	}
	if req.LeaseTermMonths < 1 || req.LeaseTermMonths > 48 {
		writeError(w, http.StatusBadRequest, "invalid_request", "lease_term_months must be between 1 and 48")
		return
	}

	writeJSON(w, http.StatusOK, finance.Lease(req))
}
