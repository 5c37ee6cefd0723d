package user

import (
	"net/http"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/users"
)

// ProfileHandler serves user profiles and follow suggestions
type ProfileHandler struct {
	service users.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service users.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// ProfileResponse carries a user with follower/following/bookmark lists.
type ProfileResponse struct {
	Message string      `json:"message"`
	User    *users.User `json:"user"`
	Success bool        `json:"success"`
}

// SuggestedResponse carries users the viewer doesn't follow yet.
type SuggestedResponse struct {
	Message string        `json:"message"`
	Users   []*users.User `json:"users"`
	Success bool          `json:"success"`
}

// HandleProfile returns the profile for {id}
// GET /api/v1/user/{id}/profile
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	profile, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, ProfileResponse{
		Success: true,
		Message: "Profile fetched",
		User:    profile,
	})
}

// HandleSuggested returns users the caller doesn't follow
// GET /api/v1/user/suggested
func (h *ProfileHandler) HandleSuggested(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Suggested(r.Context(), middleware.GetUserID(r), 0)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, SuggestedResponse{
		Success: true,
		Message: "Suggested users fetched",
		Users:   list,
	})
}
