package routes

import (
	"github.com/go-chi/chi/v5"

	"Snapgram/internal/api/handlers/post"
	"Snapgram/internal/api/middleware"
	commentsCore "Snapgram/internal/core/comments"
	"Snapgram/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints under /api/v1/post.
// Every route requires a session: the feed is personal, and all
// interactions need an acting user.
func RegisterPostRoutes(
	r chi.Router,
	postService posts.Service,
	commentService commentsCore.Service,
	auth *middleware.SessionAuth,
	limiter *middleware.RateLimiter,
) {
	createHandler := post.NewCreateHandler(postService)
	feedHandler := post.NewFeedHandler(postService)
	likeHandler := post.NewLikeHandler(postService)
	commentHandler := post.NewCommentHandler(commentService)
	bookmarkHandler := post.NewBookmarkHandler(postService)
	deleteHandler := post.NewDeleteHandler(postService)

	r.Route("/post", func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Use(limiter.Middleware)

		r.Post("/addpost", createHandler.HandleCreate)
		r.Get("/all", feedHandler.HandleFeed)
		r.Get("/userpost/all", feedHandler.HandleUserPosts)

		// Like/dislike are mutating idempotent toggles, so they take POST
		// even though they carry no body.
		r.Post("/{id}/like", likeHandler.HandleLike)
		r.Post("/{id}/dislike", likeHandler.HandleDislike)

		r.Post("/{id}/comment", commentHandler.HandleAdd)
		r.Get("/{id}/comment/all", commentHandler.HandleList)

		r.Post("/{id}/bookmark", bookmarkHandler.HandleBookmark)
		r.Delete("/delete/{id}", deleteHandler.HandleDelete)
	})
}
