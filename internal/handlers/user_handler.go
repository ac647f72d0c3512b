package handlers

import (
	"encoding/json"
	"net/http"

	"estateBack/internal/models"
	"estateBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	resp, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Failed to sign up")
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	resp, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Failed to sign in")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
