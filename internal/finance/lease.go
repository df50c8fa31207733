package finance

import "toyota-finder-api/internal/model"

// Lease computes a standard money-factor lease: monthly depreciation of
// the capitalized cost down to residual, plus the finance charge, plus
// sales tax on the base payment.
func Lease(req model.LeaseRequest) model.LeaseResponse {
	months := float64(req.LeaseTermMonths)

	depreciation := (req.VehiclePrice - req.ResidualValue - req.DownPayment) / months
	financeCharge := (req.VehiclePrice + req.ResidualValue) * req.MoneyFactor

	basePayment := depreciation + financeCharge
	monthlyTax := basePayment * (req.SalesTaxRate / 100)
	monthlyPayment := basePayment + monthlyTax

	totalTaxes := monthlyTax * months
	totalLeaseCost := monthlyPayment*months + req.DownPayment + req.Fees

	return model.LeaseResponse{
		MonthlyPayment: round2(monthlyPayment),
		TotalLeaseCost: round2(totalLeaseCost),
		Depreciation:   round2(depreciation * months),
		FinanceCharge:  round2(financeCharge * months),
		TotalTaxes:     round2(totalTaxes),
		Breakdown: map[string]float64{
			"vehicle_price":          req.VehiclePrice,
			"residual_value":         req.ResidualValue,
			"down_payment":           req.DownPayment,
			"monthly_depreciation":   round2(depreciation),
			"monthly_finance_charge": round2(financeCharge),
			"monthly_tax":            round2(monthlyTax),
			"acquisition_fees":       req.Fees,
		},
	}
}
