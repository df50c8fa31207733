package model

// FinanceRequest is the body of POST /finance. Handlers pre-fill the
// defaults (tax on, 8.25%, $500 fees) before decoding so absent fields
// keep them.
type FinanceRequest struct {
	VehiclePrice   float64 `json:"vehicle_price"`
	DownPayment    float64 `json:"down_payment"`
	TradeInValue   float64 `json:"trade_in_value"`
	InterestRate   float64 `json:"interest_rate"`
	LoanTermMonths int     `json:"loan_term_months"`
	IncludeTax     bool    `json:"include_tax"`
	TaxRate        float64 `json:"tax_rate"`
	IncludeFees    bool    `json:"include_fees"`
	Fees           float64 `json:"fees"`
}

type FinanceResponse struct {
	MonthlyPayment    float64            `json:"monthly_payment"`
	TotalLoanAmount   float64            `json:"total_loan_amount"`
	TotalInterestPaid float64            `json:"total_interest_paid"`
	TotalAmountPaid   float64            `json:"total_amount_paid"`
	Breakdown         map[string]float64 `json:"breakdown"`
}

// LeaseRequest is the body of POST /lease.
type LeaseRequest struct {
	VehiclePrice    float64 `json:"vehicle_price"`
	DownPayment     float64 `json:"down_payment"`
	ResidualValue   float64 `json:"residual_value"`
	MoneyFactor     float64 `json:"money_factor"`
	LeaseTermMonths int     `json:"lease_term_months"`
	SalesTaxRate    float64 `json:"sales_tax_rate"`
	Fees            float64 `json:"fees"`
}

type LeaseResponse struct {
	MonthlyPayment float64            `json:"monthly_payment"`
	TotalLeaseCost float64            `json:"total_lease_cost"`
	Depreciation   float64            `json:"depreciation"`
	FinanceCharge  float64            `json:"finance_charge"`
	TotalTaxes     float64            `json:"total_taxes"`
	Breakdown      map[string]float64 `json:"breakdown"`
}
