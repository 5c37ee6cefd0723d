package post

import (
	"io"
	"log"
	"net/http"
	"strings"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/posts"
)

// Cap multipart bodies well above the image limit so oversized uploads
// fail fast instead of buffering.
const maxUploadBytes = 10 << 20 // 10 MiB

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new handler for creating posts
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// CreateResponse carries the created post back to the composer, which
// prepends it to the local feed cache.
type CreateResponse struct {
	Message string      `json:"message"`
	Post    *posts.Post `json:"post"`
	Success bool        `json:"success"`
}

// HandleCreate creates a new post from a multipart form
// POST /api/v1/post/addpost
//
// Form fields: caption (text), image (file, optional)
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid multipart request body")
		return
	}

	req := posts.CreatePostRequest{
		AuthorID: middleware.GetUserID(r),
		Caption:  r.FormValue("caption"),
	}

	file, header, err := r.FormFile("image")
	switch err {
	case nil:
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				log.Printf("Failed to close upload: %v", closeErr)
			}
		}()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			handlers.WriteError(w, http.StatusBadRequest, "Only image uploads are allowed")
			return
		}

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			handlers.WriteError(w, http.StatusBadRequest, "Failed to read image upload")
			return
		}
		req.ImageName = header.Filename
		req.ImageContentType = contentType
		req.ImageData = data

	case http.ErrMissingFile:
		// Caption-only post; the service validates that at least one of
		// caption/image is present.

	default:
		handlers.WriteError(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, CreateResponse{
		Success: true,
		Message: "New post added",
		Post:    created,
	})
}
