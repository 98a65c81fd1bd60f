package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Islam8171-lang/fryutt-bot/internal/domain"

	"go.uber.org/zap"
)

// Transport abstracts the messaging platform. Send and delete calls are
// best-effort: the engine logs failures and never retries.
type Transport interface {
	SendText(chatID int64, text string, keyboard domain.Keyboard) error
	DeleteMessage(chatID int64, messageID int) error
}

const (
	replySpamWarning = "Сообщение удалено: ссылки и подозрительный текст запрещены."

	replyQuestionAck = "Спасибо! Ваш вопрос отправлен. Мы скоро с вами свяжемся."

	replyOrderAck = "Спасибо за заказ! Мы скоро с вами свяжемся."

	replyCancelled = "Действие отменено."

	replyAnswerUsage = "Используйте команду /answer <user_id> <ответ>"

	replyAnswerNotFound = "Вопрос от этого пользователя не найден."
)

// ConversationService drives the per-user dialog state machine, relays
// questions and orders to the operator and dispatches operator replies.
type ConversationService struct {
	transport Transport
	spam      *SpamFilter
	menu      *MenuRouter
	sessions  *SessionStore
	questions *QuestionStore
	adminID   int64
	logger    *zap.Logger
}

// NewConversationService creates the conversation service
func NewConversationService(
	transport Transport,
	spam *SpamFilter,
	menu *MenuRouter,
	sessions *SessionStore,
	questions *QuestionStore,
	adminID int64,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		transport: transport,
		spam:      spam,
		menu:      menu,
		sessions:  sessions,
		questions: questions,
		adminID:   adminID,
		logger:    logger,
	}
}

// Start handles /start: greet, show the user id and the main menu
func (s *ConversationService) Start(msg domain.Message) {
	s.sessions.Reset(msg.SenderID)

	s.logger.Info("User started bot",
		zap.Int64("user_id", msg.SenderID),
		zap.String("username", msg.Username),
	)

	greeting := fmt.Sprintf(
		"Здравствуйте, %s! \nВаш user_id: %d. \nРады, что вы интересуетесь нашими товарами.\nВыберите интересующую вас информацию:",
		msg.FirstName, msg.SenderID,
	)
	s.send(msg.ChatID, greeting, domain.KeyboardMain)
}

// Cancel handles /cancel: drop any open dialog and show the main menu
func (s *ConversationService) Cancel(msg domain.Message) {
	s.sessions.Reset(msg.SenderID)
	s.send(msg.ChatID, replyCancelled, domain.KeyboardMain)
}

// HandleText processes a plain text message. The spam gate runs before
// any state handling, so a dialog submission can itself be filtered.
func (s *ConversationService) HandleText(msg domain.Message) {
	if s.spam.IsSpam(msg.Text) {
		s.rejectSpam(msg)
		return
	}

	switch s.sessions.Get(msg.SenderID) {
	case domain.StateAwaitingQuestion:
		s.intakeQuestion(msg)
	case domain.StateAwaitingOrder:
		s.intakeOrder(msg)
	default:
		s.routeMenu(msg)
	}
}

// rejectSpam deletes the message and warns the sender. A failed delete
// (e.g. missing group privileges) must not block the warning.
func (s *ConversationService) rejectSpam(msg domain.Message) {
	s.logger.Info("Spam message blocked",
		zap.Int64("user_id", msg.SenderID),
		zap.String("text", msg.Text),
	)

	if err := s.transport.DeleteMessage(msg.ChatID, msg.MessageID); err != nil {
		s.logger.Warn("Failed to delete spam message",
			zap.Error(err),
			zap.Int64("chat_id", msg.ChatID),
			zap.Int("message_id", msg.MessageID),
		)
	}
	s.send(msg.ChatID, replySpamWarning, domain.KeyboardNone)
}

// routeMenu resolves default-state text against the menu and applies
// dialog-entry transitions returned by the router
func (s *ConversationService) routeMenu(msg domain.Message) {
	route := s.menu.Route(msg.Text)

	switch route.Action {
	case ActionEnterQuestion:
		s.sessions.Set(msg.SenderID, domain.StateAwaitingQuestion)
	case ActionEnterOrder:
		s.sessions.Set(msg.SenderID, domain.StateAwaitingOrder)
	}

	s.send(msg.ChatID, route.Reply, route.Keyboard)
}

// intakeQuestion stores the question, forwards it to the operator with
// the raw user id for /answer, acknowledges and resets the dialog
func (s *ConversationService) intakeQuestion(msg domain.Message) {
	s.questions.Put(domain.PendingQuestion{
		UserID:      msg.SenderID,
		DisplayName: msg.DisplayName,
		Question:    msg.Text,
	})

	s.logger.Info("Question received",
		zap.Int64("user_id", msg.SenderID),
		zap.String("name", msg.DisplayName),
		zap.String("question", msg.Text),
	)

	notice := fmt.Sprintf(
		"❓ Новый вопрос от %s (@%s):\n\n%s\n\nuser_id: %d",
		msg.DisplayName, handleOrPlaceholder(msg.Username), msg.Text, msg.SenderID,
	)
	s.send(s.adminID, notice, domain.KeyboardNone)

	s.send(msg.ChatID, replyQuestionAck, domain.KeyboardMain)
	s.sessions.Reset(msg.SenderID)
}

// intakeOrder forwards the order to the operator, acknowledges and
// resets the dialog. Orders are never stored: there is no reply flow.
func (s *ConversationService) intakeOrder(msg domain.Message) {
	s.logger.Info("Order received",
		zap.Int64("user_id", msg.SenderID),
		zap.String("name", msg.DisplayName),
	)

	notice := fmt.Sprintf(
		"🛒 Новый заказ от %s (@%s):\n\n%s",
		msg.DisplayName, handleOrPlaceholder(msg.Username), msg.Text,
	)
	s.send(s.adminID, notice, domain.KeyboardNone)

	s.send(msg.ChatID, replyOrderAck, domain.KeyboardMain)
	s.sessions.Reset(msg.SenderID)
}

// Answer handles the operator-only /answer <user_id> <text...> command.
// Non-operator callers are ignored without any visible reaction.
func (s *ConversationService) Answer(callerID int64, args []string) {
	if callerID != s.adminID {
		return
	}

	if len(args) < 2 {
		s.send(callerID, replyAnswerUsage, domain.KeyboardNone)
		return
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		s.send(callerID, replyAnswerUsage, domain.KeyboardNone)
		return
	}
	answerText := strings.Join(args[1:], " ")

	if _, exists := s.questions.Take(userID); !exists {
		s.send(callerID, replyAnswerNotFound, domain.KeyboardNone)
		return
	}

	s.logger.Info("Operator answered question",
		zap.Int64("user_id", userID),
	)

	s.send(userID, "Ответ от оператора: "+answerText, domain.KeyboardNone)
	s.send(callerID, fmt.Sprintf("Ответ отправлен пользователю %d.", userID), domain.KeyboardNone)
}

// send attempts one outbound message; failures are logged and swallowed
func (s *ConversationService) send(chatID int64, text string, keyboard domain.Keyboard) {
	if err := s.transport.SendText(chatID, text, keyboard); err != nil {
		s.logger.Warn("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}

func handleOrPlaceholder(username string) string {
	if username == "" {
		return "без ника"
	}
	return username
}
