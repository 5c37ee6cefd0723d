package post

import (
	"net/http"
	"strconv"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/posts"
)

// FeedHandler serves the feed and per-author post lists
type FeedHandler struct {
	service posts.Service
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(service posts.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

// FeedResponse carries posts most-recent-first. The client loads this
// once and afterwards patches single entries from interaction responses.
type FeedResponse struct {
	Message string        `json:"message"`
	Posts   []*posts.Post `json:"posts"`
	Success bool          `json:"success"`
}

// HandleFeed returns the most recent posts
// GET /api/v1/post/all?limit=50
func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			handlers.WriteError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	list, err := h.service.Feed(r.Context(), limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, FeedResponse{
		Success: true,
		Message: "Posts fetched",
		Posts:   list,
	})
}

// HandleUserPosts returns the caller's own posts
// GET /api/v1/post/userpost/all
func (h *FeedHandler) HandleUserPosts(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.AuthorPosts(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, FeedResponse{
		Success: true,
		Message: "Posts fetched",
		Posts:   list,
	})
}
