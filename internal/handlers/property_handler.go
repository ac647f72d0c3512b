package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"estateBack/internal/models"
	"estateBack/internal/services"
)

type PropertyHandler struct {
	Service *services.PropertyService
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	actor, ok := models.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	created, err := h.Service.CreateProperty(r.Context(), property, actor)
	if err != nil {
		writeServiceError(w, err, "Failed to create property")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	actor, _ := models.UserFromContext(r.Context())
	filter := filterFromQuery(r)
	properties, err := h.Service.GetProperties(r.Context(), filter, actor)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch properties")
		return
	}
	respondJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	property, err := h.Service.GetPropertyByID(r.Context(), getParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Failed to fetch property")
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) GetMyProperties(w http.ResponseWriter, r *http.Request) {
	actor, ok := models.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	properties, err := h.Service.GetPropertiesByOwner(r.Context(), actor.UserID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch properties")
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}
	respondJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	actor, ok := models.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	updated, err := h.Service.UpdateProperty(r.Context(), getParam(r, "id"), property, actor)
	if err != nil {
		writeServiceError(w, err, "Failed to update property")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *PropertyHandler) ApproveProperty(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.ApproveProperty)
}

func (h *PropertyHandler) RejectProperty(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.RejectProperty)
}

func (h *PropertyHandler) transition(w http.ResponseWriter, r *http.Request,
	apply func(ctx context.Context, id string, actor *models.Claims) (models.Property, error)) {
	actor, ok := models.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	updated, err := apply(r.Context(), getParam(r, "id"), actor)
	if err != nil {
		writeServiceError(w, err, "Failed to update property status")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	actor, ok := models.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if err := h.Service.DeleteProperty(r.Context(), getParam(r, "id"), actor); err != nil {
		writeServiceError(w, err, "Failed to delete property")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func filterFromQuery(r *http.Request) models.PropertyFilter {
	q := r.URL.Query()
	filter := models.PropertyFilter{
		City:         q.Get("city"),
		Area:         q.Get("area"),
		PropertyType: q.Get("property_type"),
		Status:       q.Get("status"),
	}
	if v := q.Get("featured"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Featured = &n
		}
	}
	if v := q.Get("min_price"); v != "" {
		filter.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := q.Get("max_price"); v != "" {
		filter.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}
	return filter
}
