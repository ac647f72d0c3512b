package handlers

import (
	"encoding/json"
	"net/http"

	"estateBack/internal/models"
	"estateBack/internal/services"
)

type ContactHandler struct {
	Service *services.ContactService
}

func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	if err := h.Service.SubmitContact(r.Context(), form); err != nil {
		writeServiceError(w, err, "Failed to process contact form")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully",
	})
}
