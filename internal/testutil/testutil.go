package testutil

import (
	"github.com/Islam8171-lang/fryutt-bot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestMessage creates an inbound message for tests
func NewTestMessage(senderID int64, text string) domain.Message {
	return domain.Message{
		SenderID:    senderID,
		ChatID:      senderID,
		MessageID:   1,
		DisplayName: "Иван Тестов",
		FirstName:   "Иван",
		Username:    "ivan_test",
		Text:        text,
	}
}
