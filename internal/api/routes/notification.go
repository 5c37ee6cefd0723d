package routes

import (
	"github.com/go-chi/chi/v5"

	notificationHandlers "Snapgram/internal/api/handlers/notification"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/notifications"
)

// RegisterNotificationRoutes registers the notification feed endpoint
// under /api/v1/notification.
func RegisterNotificationRoutes(r chi.Router, service *notifications.Service, auth *middleware.SessionAuth, limiter *middleware.RateLimiter) {
	handler := notificationHandlers.NewListHandler(service)

	r.Route("/notification", func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Use(limiter.Middleware)

		r.Get("/all", handler.HandleList)
	})
}
