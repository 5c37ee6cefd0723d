package post

import (
	"net/http"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/posts"
)

// BookmarkHandler handles the bookmark toggle
type BookmarkHandler struct {
	service posts.Service
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(service posts.Service) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// BookmarkResponse reports the post's bookmark membership after the toggle.
type BookmarkResponse struct {
	Message    string `json:"message"`
	Bookmarked bool   `json:"bookmarked"`
	Success    bool   `json:"success"`
}

// HandleBookmark toggles the post in the caller's bookmark collection
// POST /api/v1/post/{id}/bookmark
func (h *BookmarkHandler) HandleBookmark(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	state, err := h.service.Bookmark(r.Context(), postID, middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Post removed from bookmarks"
	if state.Bookmarked {
		message = "Post bookmarked"
	}

	handlers.WriteJSON(w, http.StatusOK, BookmarkResponse{
		Success:    true,
		Message:    message,
		Bookmarked: state.Bookmarked,
	})
}
