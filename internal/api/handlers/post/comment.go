package post

import (
	"encoding/json"
	"net/http"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/comments"
)

// CommentHandler handles adding and listing comments on a post
type CommentHandler struct {
	service comments.Service
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service comments.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// AddCommentInput is the request body for adding a comment
type AddCommentInput struct {
	Text string `json:"text"`
}

// AddCommentResponse carries the created comment; the client appends it
// to the matching post's comment list.
type AddCommentResponse struct {
	Message string            `json:"message"`
	Comment *comments.Comment `json:"comment"`
	Success bool              `json:"success"`
}

// ListCommentsResponse carries a post's comments in creation order.
type ListCommentsResponse struct {
	Message  string             `json:"message"`
	Comments []comments.Comment `json:"comments"`
	Success  bool               `json:"success"`
}

// HandleAdd appends a comment to a post
// POST /api/v1/post/{id}/comment
//
// Request body: { "text": "..." }
func (h *CommentHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input AddCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.service.Add(r.Context(), postID, middleware.GetUserID(r), input.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, AddCommentResponse{
		Success: true,
		Message: "Comment added",
		Comment: comment,
	})
}

// HandleList returns a post's comments
// GET /api/v1/post/{id}/comment/all
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, ListCommentsResponse{
		Success:  true,
		Message:  "Comments fetched",
		Comments: list,
	})
}
