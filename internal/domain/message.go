package domain

// Message is an inbound text message, decoupled from the transport
type Message struct {
	SenderID    int64
	ChatID      int64
	MessageID   int
	DisplayName string
	FirstName   string
	Username    string // empty if the sender has no handle
	Text        string
}

// Keyboard selects which reply keyboard accompanies an outbound message
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMain
	KeyboardBack
)
