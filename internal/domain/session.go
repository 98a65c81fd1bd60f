package domain

// SessionState represents user's current position in the conversation
type SessionState string

const (
	StateDefault          SessionState = "default"
	StateAwaitingQuestion SessionState = "awaiting_question"
	StateAwaitingOrder    SessionState = "awaiting_order"
)

// PendingQuestion is an unanswered question waiting for an operator reply
type PendingQuestion struct {
	UserID      int64
	DisplayName string
	Question    string
}
