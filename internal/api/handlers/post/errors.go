package post

import (
	"errors"
	"log"
	"net/http"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/core/comments"
	"Snapgram/internal/core/posts"
)

// handleServiceError converts post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrNotFound), errors.Is(err, comments.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")

	case errors.Is(err, posts.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "You are not authorized to delete this post")

	case errors.Is(err, comments.ErrEmptyText):
		handlers.WriteError(w, http.StatusBadRequest, "Comment text is required")

	case errors.Is(err, comments.ErrTextTooLong):
		handlers.WriteError(w, http.StatusBadRequest, "Comment text too long")

	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
