package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"estateBack/internal/models"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service errors onto the response taxonomy:
// validation -> 400, missing id -> 404, authorization -> 403, illegal
// transition -> 409, anything else -> the generic fallback with no detail.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, models.ErrPropertyNotFound):
		respondError(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, models.ErrBlogNotFound):
		respondError(w, http.StatusNotFound, "Blog not found")
	case errors.Is(err, models.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrForbidden):
		respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, models.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "Invalid status transition")
	default:
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
