package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"estateBack/internal/loan"
	"estateBack/internal/models"
)

// LoanHandler exposes the EMI calculator and the eligibility estimate. The
// math is pure; there is no service or store behind it.
type LoanHandler struct{}

func (h *LoanHandler) CalculateEMI(w http.ResponseWriter, r *http.Request) {
	var req models.EMIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	result, err := loan.EMI(req.Principal, req.AnnualRate, req.TenureMonths)
	if errors.Is(err, loan.ErrNotComputable) {
		respondError(w, http.StatusBadRequest, "EMI is not computable for the given inputs")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to calculate EMI")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	var req models.EligibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	result, err := loan.Eligibility(req.MonthlyIncome, req.OtherEMI, req.AnnualRate, req.TenureMonths)
	if errors.Is(err, loan.ErrNotComputable) {
		respondError(w, http.StatusBadRequest, "Eligibility is not computable for the given inputs")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to check eligibility")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) GetBanks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, loan.Banks)
}
