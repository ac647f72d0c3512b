package handlers

import (
	"net/http"

	"estateBack/internal/services"
)

type BlogHandler struct {
	Service *services.BlogService
}

func (h *BlogHandler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Service.GetBlogs(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch blogs")
		return
	}
	respondJSON(w, http.StatusOK, blogs)
}

func (h *BlogHandler) GetBlogByID(w http.ResponseWriter, r *http.Request) {
	blog, err := h.Service.GetBlogByID(r.Context(), getParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Failed to fetch blog")
		return
	}
	respondJSON(w, http.StatusOK, blog)
}
