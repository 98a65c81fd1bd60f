package handler

import (
	"github.com/Islam8171-lang/fryutt-bot/internal/domain"
	"github.com/Islam8171-lang/fryutt-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler wires the Telegram bot to the conversation service
type Handler struct {
	bot    *tele.Bot
	convo  *service.ConversationService
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, convo *service.ConversationService, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		convo:  convo,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers. Updates with no matching
// endpoint (stickers, photos, joins) are dropped by telebot, which is
// exactly the wanted behavior for non-text content.
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/answer", h.handleAnswer)
	h.bot.Handle(tele.OnText, h.handleText)
}

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.convo.Start(inboundMessage(c))
	return nil
}

// handleCancel handles /cancel in any state
func (h *Handler) handleCancel(c tele.Context) error {
	h.convo.Cancel(inboundMessage(c))
	return nil
}

// handleAnswer handles the operator's /answer command
func (h *Handler) handleAnswer(c tele.Context) error {
	h.convo.Answer(c.Sender().ID, c.Args())
	return nil
}

// handleText handles all plain text messages
func (h *Handler) handleText(c tele.Context) error {
	h.convo.HandleText(inboundMessage(c))
	return nil
}

// inboundMessage converts a telebot context into a transport-agnostic message
func inboundMessage(c tele.Context) domain.Message {
	sender := c.Sender()
	msg := domain.Message{
		SenderID: sender.ID,
		ChatID:   c.Chat().ID,
		Text:     c.Text(),
	}
	msg.FirstName = sender.FirstName
	msg.DisplayName = displayName(sender)
	msg.Username = sender.Username
	if m := c.Message(); m != nil {
		msg.MessageID = m.ID
	}
	return msg
}

func displayName(u *tele.User) string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
