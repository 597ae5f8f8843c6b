package handler

import (
	"context"
	"net/http"

	"github.com/segyhp/islamicfin-engine/internal/domain"
)

type Chatter interface {
	Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatReply, error)
}

type ChatHandler struct {
	service Chatter
}

func NewChatHandler(service Chatter) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.Chat)
}
