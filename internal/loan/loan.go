package loan

import (
	"errors"
	"math"

	"estateBack/internal/models"
)

// ErrNotComputable is returned for degenerate inputs instead of producing
// NaN or Inf results.
var ErrNotComputable = errors.New("loan: not computable")

// FOIR ceiling: half of the monthly income may go to EMIs.
const foir = 0.5

// EMI computes the equated monthly installment for a principal, an annual
// nominal rate in percent and a tenure in months, along with the total
// repayment and total interest over the tenure.
func EMI(principal, annualRate float64, tenureMonths int) (models.EMIResult, error) {
	if principal <= 0 || annualRate <= 0 || tenureMonths <= 0 {
		return models.EMIResult{}, ErrNotComputable
	}
	r := annualRate / 12 / 100
	pow := math.Pow(1+r, float64(tenureMonths))
	emi := principal * r * pow / (pow - 1)
	total := emi * float64(tenureMonths)
	return models.EMIResult{
		EMI:            emi,
		TotalRepayment: total,
		TotalInterest:  total - principal,
	}, nil
}

// Eligibility estimates the maximum loan principal a borrower can service.
// The EMI ceiling is FOIR (50%) of the monthly income minus existing
// obligations; the amortization formula is then solved for the principal.
func Eligibility(monthlyIncome, otherEMI, annualRate float64, tenureMonths int) (models.EligibilityResult, error) {
	if monthlyIncome <= 0 || otherEMI < 0 || annualRate < 0 || tenureMonths <= 0 {
		return models.EligibilityResult{}, ErrNotComputable
	}
	maxEMI := monthlyIncome*foir - otherEMI
	if maxEMI <= 0 {
		return models.EligibilityResult{}, ErrNotComputable
	}
	r := annualRate / 12 / 100
	n := float64(tenureMonths)
	if r == 0 {
		return models.EligibilityResult{MaxEMI: maxEMI, MaxLoanAmount: maxEMI * n}, nil
	}
	pow := math.Pow(1+r, n)
	amount := maxEMI * (pow - 1) / (r * pow)
	return models.EligibilityResult{MaxEMI: maxEMI, MaxLoanAmount: amount}, nil
}

// Banks is the static lender table served alongside the calculator.
// Reference rates as of Oct 2025.
var Banks = []models.Bank{
	{Name: "SBI", Rate: 8.40, Tenure: "5-30 years", Fee: "₹8,000"},
	{Name: "HDFC", Rate: 8.75, Tenure: "5-30 years", Fee: "₹10,000"},
	{Name: "AXIS", Rate: 8.70, Tenure: "5-30 years", Fee: "₹9,000"},
	{Name: "ICICI", Rate: 8.75, Tenure: "5-30 years", Fee: "₹9,500"},
	{Name: "IDFC", Rate: 8.85, Tenure: "5-30 years", Fee: "₹8,500"},
	{Name: "CANARA", Rate: 8.60, Tenure: "5-30 years", Fee: "₹8,000"},
	{Name: "KOTAK", Rate: 8.70, Tenure: "5-30 years", Fee: "₹9,000"},
}
