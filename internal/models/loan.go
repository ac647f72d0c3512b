package models

type EMIRequest struct {
	Principal    float64 `json:"principal"`
	AnnualRate   float64 `json:"annual_rate"`
	TenureMonths int     `json:"tenure_months"`
}

type EMIResult struct {
	EMI            float64 `json:"emi"`
	TotalRepayment float64 `json:"total_repayment"`
	TotalInterest  float64 `json:"total_interest"`
}

type EligibilityRequest struct {
	MonthlyIncome float64 `json:"monthly_income"`
	OtherEMI      float64 `json:"other_emi"`
	AnnualRate    float64 `json:"annual_rate"`
	TenureMonths  int     `json:"tenure_months"`
}

type EligibilityResult struct {
	MaxEMI        float64 `json:"max_emi"`
	MaxLoanAmount float64 `json:"max_loan_amount"`
}

// Bank is one row of the static lender table shown next to the calculator.
type Bank struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Tenure string  `json:"tenure"`
	Fee    string  `json:"fee"`
}
