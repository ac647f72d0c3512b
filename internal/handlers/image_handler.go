package handlers

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"estateBack/utils"
)

const maxImageSize = 10 << 20 // 10 MB

type ImageHandler struct {
	Storage *utils.S3Storage
}

func (h *ImageHandler) UploadPropertyImage(w http.ResponseWriter, r *http.Request) {
	if h.Storage == nil {
		respondError(w, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read image")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	fileName := uuid.NewString() + filepath.Ext(header.Filename)
	url, err := h.Storage.UploadFile(data, fileName, "properties", contentType)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
