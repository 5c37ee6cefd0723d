package user

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/users"
)

// FollowHandler handles the follow/unfollow toggle
type FollowHandler struct {
	service users.Service
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(service users.Service) *FollowHandler {
	return &FollowHandler{service: service}
}

// FollowResponse reports the relationship after the toggle.
type FollowResponse struct {
	Message   string `json:"message"`
	Following bool   `json:"following"`
	Success   bool   `json:"success"`
}

// HandleFollowOrUnfollow toggles the caller's relationship to {id}
// POST /api/v1/user/followorunfollow/{id}
//
// One call performs exactly one transition; two calls in a row restore
// the original state.
func (h *FollowHandler) HandleFollowOrUnfollow(w http.ResponseWriter, r *http.Request) {
	targetID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	state, err := h.service.FollowOrUnfollow(r.Context(), middleware.GetUserID(r), targetID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Unfollowed successfully"
	if state.Following {
		message = "Followed successfully"
	}

	handlers.WriteJSON(w, http.StatusOK, FollowResponse{
		Success:   true,
		Message:   message,
		Following: state.Following,
	})
}

// userIDParam parses the {id} route parameter, writing a 400 on failure.
func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrSelfFollow):
		handlers.WriteError(w, http.StatusBadRequest, "You cannot follow yourself")

	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "User not found")

	default:
		log.Printf("Unexpected error in user handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
