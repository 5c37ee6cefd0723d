package post

import (
	"net/http"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// DeleteResponse confirms the deletion; the client removes the matching
// post from its local cache.
type DeleteResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// HandleDelete deletes a post and cascades its comments
// DELETE /api/v1/post/delete/{id}
//
// Author-only: any other caller gets a 403.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), postID, middleware.GetUserID(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, DeleteResponse{
		Success: true,
		Message: "Post deleted",
	})
}
