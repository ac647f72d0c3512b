package loan

import (
	"math"
	"testing"
)

func TestEMIMatchesAmortizationFormula(t *testing.T) {
	principal := 5000000.0
	rate := 8.5
	months := 240

	got, err := EMI(principal, rate, months)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := rate / 12 / 100
	pow := math.Pow(1+r, float64(months))
	want := principal * r * pow / (pow - 1)
	if math.Round(got.EMI) != math.Round(want) {
		t.Fatalf("expected EMI %.0f got %.0f", want, got.EMI)
	}
	if got.EMI < 40000 || got.EMI > 47000 {
		t.Fatalf("EMI out of expected range: %.2f", got.EMI)
	}
	if math.Abs(got.TotalRepayment-got.EMI*float64(months)) > 0.01 {
		t.Fatalf("total repayment mismatch: %.2f", got.TotalRepayment)
	}
	if math.Abs(got.TotalInterest-(got.TotalRepayment-principal)) > 0.01 {
		t.Fatalf("total interest mismatch: %.2f", got.TotalInterest)
	}
}

func TestEMIDegenerateInputs(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		months    int
	}{
		{"zero principal", 0, 8.5, 240},
		{"negative principal", -100, 8.5, 240},
		{"zero tenure", 5000000, 8.5, 0},
		{"missing rate", 5000000, 0, 240},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := EMI(tc.principal, tc.rate, tc.months)
			if err != ErrNotComputable {
				t.Fatalf("expected ErrNotComputable, got %v", err)
			}
			if math.IsNaN(res.EMI) || math.IsInf(res.EMI, 0) {
				t.Fatalf("result must never be NaN/Inf")
			}
		})
	}
}

func TestEligibilityInvertsEMI(t *testing.T) {
	principal := 3000000.0
	rate := 9.0
	months := 180

	res, err := EMI(principal, rate, months)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An income whose FOIR ceiling equals that EMI should buy back the
	// same principal.
	income := res.EMI * 2
	elig, err := Eligibility(income, 0, rate, months)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(elig.MaxLoanAmount-principal) > 1 {
		t.Fatalf("expected max loan ~%.0f got %.2f", principal, elig.MaxLoanAmount)
	}
}

func TestEligibilityZeroRate(t *testing.T) {
	elig, err := Eligibility(100000, 10000, 0, 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elig.MaxEMI != 40000 {
		t.Fatalf("expected max EMI 40000 got %.2f", elig.MaxEMI)
	}
	if elig.MaxLoanAmount != 40000*120 {
		t.Fatalf("expected zero-rate loan to be maxEMI*n, got %.2f", elig.MaxLoanAmount)
	}
}

func TestEligibilityOverCommitted(t *testing.T) {
	if _, err := Eligibility(50000, 30000, 8.5, 240); err != ErrNotComputable {
		t.Fatalf("expected ErrNotComputable, got %v", err)
	}
}
