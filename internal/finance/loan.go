// Package finance implements the loan and lease payment calculators.
package finance

import (
	"math"

	"toyota-finder-api/internal/model"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Loan computes a standard amortized car loan. Tax and fees are folded
// into the financed amount when enabled; a zero interest rate divides the
// principal evenly across the term.
func Loan(req model.FinanceRequest) model.FinanceResponse {
	var taxAmount float64
	if req.IncludeTax {
		taxAmount = req.VehiclePrice * (req.TaxRate / 100)
	}
	var totalFees float64
	if req.IncludeFees {
		totalFees = req.Fees
	}

	totalVehicleCost := req.VehiclePrice + taxAmount + totalFees
	loanAmount := totalVehicleCost - req.DownPayment - req.TradeInValue

	monthlyRate := req.InterestRate / 100 / 12
	var monthlyPayment float64
	if monthlyRate == 0 {
		monthlyPayment = loanAmount / float64(req.LoanTermMonths)
	} else {
		n := float64(req.LoanTermMonths)
		growth := math.Pow(1+monthlyRate, n)
		monthlyPayment = loanAmount * (monthlyRate * growth) / (growth - 1)
	}

	totalAmountPaid := monthlyPayment*float64(req.LoanTermMonths) + req.DownPayment
	totalInterestPaid := totalAmountPaid - totalVehicleCost

	return model.FinanceResponse{
		MonthlyPayment:    round2(monthlyPayment),
		TotalLoanAmount:   round2(loanAmount),
		TotalInterestPaid: round2(totalInterestPaid),
		TotalAmountPaid:   round2(totalAmountPaid),
		Breakdown: map[string]float64{
			"vehicle_price":   req.VehiclePrice,
			"tax":             round2(taxAmount),
			"fees":            totalFees,
			"down_payment":    req.DownPayment,
			"trade_in_value":  req.TradeInValue,
			"financed_amount": round2(loanAmount),
		},
	}
}
