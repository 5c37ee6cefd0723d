package post

import (
	"net/http"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/posts"
)

// LikeHandler handles the like/dislike toggle halves
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new handler for liking and unliking posts
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// LikeResponse carries the updated like sub-resource. The client replaces
// only the matching post's likes with this, never refetching the feed.
type LikeResponse struct {
	Message string  `json:"message"`
	Likes   []int64 `json:"likes"`
	Count   int     `json:"count"`
	Success bool    `json:"success"`
}

// HandleLike adds the caller to the post's like set
// POST /api/v1/post/{id}/like
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	state, err := h.service.Like(r.Context(), postID, middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, LikeResponse{
		Success: true,
		Message: "Post liked",
		Likes:   state.Likes,
		Count:   state.Count,
	})
}

// HandleDislike removes the caller from the post's like set
// POST /api/v1/post/{id}/dislike
func (h *LikeHandler) HandleDislike(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	state, err := h.service.Unlike(r.Context(), postID, middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, LikeResponse{
		Success: true,
		Message: "Post disliked",
		Likes:   state.Likes,
		Count:   state.Count,
	})
}
