package message

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Snapgram/internal/api/handlers"
	"Snapgram/internal/api/middleware"
	"Snapgram/internal/core/messages"
)

// Handler handles direct message endpoints
type Handler struct {
	service messages.Service
}

// NewHandler creates a new message handler
func NewHandler(service messages.Service) *Handler {
	return &Handler{service: service}
}

// SendInput is the request body for sending a message
type SendInput struct {
	Body string `json:"body"`
}

// SendResponse carries the persisted message.
type SendResponse struct {
	Message string            `json:"message"`
	Sent    *messages.Message `json:"sent"`
	Success bool              `json:"success"`
}

// ConversationResponse carries the message history with one user.
type ConversationResponse struct {
	Message  string             `json:"message"`
	Messages []messages.Message `json:"messages"`
	Success  bool               `json:"success"`
}

// HandleSend sends a direct message to {id}
// POST /api/v1/message/send/{id}
//
// Request body: { "body": "..." }
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	receiverID, ok := idParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input SendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sent, err := h.service.Send(r.Context(), middleware.GetUserID(r), receiverID, input.Body)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, SendResponse{
		Success: true,
		Message: "Message sent",
		Sent:    sent,
	})
}

// HandleConversation returns the conversation with {id}
// GET /api/v1/message/all/{id}
func (h *Handler) HandleConversation(w http.ResponseWriter, r *http.Request) {
	otherID, ok := idParam(w, r)
	if !ok {
		return
	}

	list, err := h.service.Conversation(r.Context(), middleware.GetUserID(r), otherID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, ConversationResponse{
		Success:  true,
		Message:  "Messages fetched",
		Messages: list,
	})
}

func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, messages.ErrEmptyBody):
		handlers.WriteError(w, http.StatusBadRequest, "Message body is required")

	case errors.Is(err, messages.ErrBodyTooLong):
		handlers.WriteError(w, http.StatusBadRequest, "Message body too long")

	case errors.Is(err, messages.ErrReceiverNotFound):
		handlers.WriteError(w, http.StatusNotFound, "User not found")

	default:
		log.Printf("Unexpected error in message handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
