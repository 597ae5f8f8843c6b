package mocks

import (
	"context"

	"github.com/segyhp/islamicfin-engine/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAssistant) Reply(ctx context.Context, message string, history []domain.ChatMessage) (string, error) {
	args := m.Called(ctx, message, history)
	return args.String(0), args.Error(1)
}
