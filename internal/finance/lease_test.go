package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"toyota-finder-api/internal/model"
)

func TestLease(t *testing.T) {
	got := Lease(model.LeaseRequest{
		VehiclePrice:    40000,
		DownPayment:     2000,
		ResidualValue:   24000,
		MoneyFactor:     0.00125,
		LeaseTermMonths: 36,
		SalesTaxRate:    8.25,
		Fees:            1000,
	})

	assert.InDelta(t, 507.57, got.MonthlyPayment, 0.01)
	assert.InDelta(t, 21272.60, got.TotalLeaseCost, 0.01)
	assert.InDelta(t, 14000.0, got.Depreciation, 0.01)
	assert.InDelta(t, 2880.0, got.FinanceCharge, 0.01)
	assert.InDelta(t, 1392.60, got.TotalTaxes, 0.01)

	assert.InDelta(t, 388.89, got.Breakdown["monthly_depreciation"], 0.01)
	assert.InDelta(t, 80.0, got.Breakdown["monthly_finance_charge"], 0.01)
	assert.InDelta(t, 38.68, got.Breakdown["monthly_tax"], 0.01)
}

func TestLeaseNoMoneyFactor(t *testing.T) {
	// Pure depreciation lease: payment is the straight-line difference.
	got := Lease(model.LeaseRequest{
		VehiclePrice:    30000,
		ResidualValue:   18000,
		MoneyFactor:     0,
		LeaseTermMonths: 24,
		SalesTaxRate:    0,
	})

	assert.InDelta(t, 500.0, got.MonthlyPayment, 0.001)
	assert.InDelta(t, 0.0, got.FinanceCharge, 0.001)
	assert.InDelta(t, 0.0, got.TotalTaxes, 0.001)
	assert.InDelta(t, 12000.0, got.TotalLeaseCost, 0.001)
}
