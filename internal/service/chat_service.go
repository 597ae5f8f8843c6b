package service

import (
	"context"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/internal/validation"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"

	"go.uber.org/zap"
)

// Assistant answers a chat message given the prior conversation.
type Assistant interface {
	Configured() bool
	Reply(ctx context.Context, message string, history []domain.ChatMessage) (string, error)
}

type ChatService struct {
	validator *validation.Validator
	assistant Assistant
	logger    *zap.Logger
}

func NewChatService(v *validation.Validator, assistant Assistant, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{validator: v, assistant: assistant, logger: logger}
}

func (s *ChatService) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatReply, error) {
	if s.assistant == nil || !s.assistant.Configured() {
		return nil, customError.WrapNotConfigured("Chat service", "GEMINI_API_KEY")
	}

	if req == nil {
		return nil, customError.WrapValidation("body", "request body is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	reply, err := s.assistant.Reply(ctx, req.Message, req.History)
	if err != nil {
		s.logger.Warn("assistant request failed", zap.Error(err))
		return nil, customError.WrapUpstreamUnavailable("Chat service", err)
	}

	return &domain.ChatReply{Reply: reply}, nil
}
