package testutil

import (
	"github.com/Islam8171-lang/fryutt-bot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTransport is a mock for service.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) SendText(chatID int64, text string, keyboard domain.Keyboard) error {
	args := m.Called(chatID, text, keyboard)
	return args.Error(0)
}

func (m *MockTransport) DeleteMessage(chatID int64, messageID int) error {
	args := m.Called(chatID, messageID)
	return args.Error(0)
}
