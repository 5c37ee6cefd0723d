package routes

import (
	"github.com/go-chi/chi/v5"

	"Snapgram/internal/api/handlers/user"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/users"
)

// RegisterUserRoutes registers profile and follow endpoints under /api/v1/user.
func RegisterUserRoutes(r chi.Router, userService users.Service, auth *middleware.SessionAuth, limiter *middleware.RateLimiter) {
	profileHandler := user.NewProfileHandler(userService)
	followHandler := user.NewFollowHandler(userService)

	r.Route("/user", func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Use(limiter.Middleware)

		r.Get("/{id}/profile", profileHandler.HandleProfile)
		r.Get("/suggested", profileHandler.HandleSuggested)
		r.Post("/followorunfollow/{id}", followHandler.HandleFollowOrUnfollow)
	})
}
