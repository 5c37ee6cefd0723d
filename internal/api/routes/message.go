package routes

import (
	"github.com/go-chi/chi/v5"

	messageHandlers "Snapgram/internal/api/handlers/message"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/messages"
)

// RegisterMessageRoutes registers direct-message endpoints under /api/v1/message.
func RegisterMessageRoutes(r chi.Router, messageService messages.Service, auth *middleware.SessionAuth, limiter *middleware.RateLimiter) {
	handler := messageHandlers.NewHandler(messageService)

	r.Route("/message", func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Use(limiter.Middleware)

		r.Post("/send/{id}", handler.HandleSend)
		r.Get("/all/{id}", handler.HandleConversation)
	})
}
