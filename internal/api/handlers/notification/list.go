package notification

import (
	"log"
	"net/http"
	"strconv"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/notifications"
)

// ListHandler serves a user's notification feed
type ListHandler struct {
	service *notifications.Service
}

// NewListHandler creates a new notification list handler
func NewListHandler(service *notifications.Service) *ListHandler {
	return &ListHandler{service: service}
}

// ListResponse carries the caller's most recent notifications.
type ListResponse struct {
	Message       string                       `json:"message"`
	Notifications []notifications.Notification `json:"notifications"`
	Success       bool                         `json:"success"`
}

// HandleList returns the caller's notifications, newest first
// GET /api/v1/notification/all?limit=50
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > 200 {
			handlers.WriteError(w, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = parsed
	}

	list, err := h.service.List(r.Context(), middleware.GetUserID(r), limit)
	if err != nil {
		log.Printf("Unexpected error in notification handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, ListResponse{
		Success:       true,
		Message:       "Notifications fetched",
		Notifications: list,
	})
}
