package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"toyota-finder-api/internal/model"
)

// Responder turns a chat message into a final answer. It never fails;
// degraded backends surface as fallback text, not errors.
type Responder interface {
	Respond(ctx context.Context, message string) string
}

type ChatHandler struct {
	responder Responder
}

func NewChatHandler(responder Responder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

// Chat answers POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ChatMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "message is required")
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{
		Response: h.responder.Respond(ctx, req.Message),
	})
}
