package handler

import (
	"strconv"

	"github.com/Islam8171-lang/fryutt-bot/internal/domain"
	"github.com/Islam8171-lang/fryutt-bot/internal/service"

	tele "gopkg.in/telebot.v3"
)

// Transport implements service.Transport over a telebot bot
type Transport struct {
	bot *tele.Bot
}

// NewTransport creates the telebot-backed transport
func NewTransport(bot *tele.Bot) *Transport {
	return &Transport{bot: bot}
}

var _ service.Transport = (*Transport)(nil)

// SendText sends a text message with an optional reply keyboard
func (t *Transport) SendText(chatID int64, text string, keyboard domain.Keyboard) error {
	recipient := &tele.User{ID: chatID}
	if markup := replyMarkup(keyboard); markup != nil {
		_, err := t.bot.Send(recipient, text, markup)
		return err
	}
	_, err := t.bot.Send(recipient, text)
	return err
}

// DeleteMessage removes a message from a chat
func (t *Transport) DeleteMessage(chatID int64, messageID int) error {
	return t.bot.Delete(tele.StoredMessage{
		ChatID:    chatID,
		MessageID: strconv.Itoa(messageID),
	})
}

// replyMarkup builds the reply keyboard for a keyboard kind
func replyMarkup(keyboard domain.Keyboard) *tele.ReplyMarkup {
	switch keyboard {
	case domain.KeyboardMain:
		return mainMenuMarkup()
	case domain.KeyboardBack:
		return backMenuMarkup()
	default:
		return nil
	}
}

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(service.LabelPrices), menu.Text(service.LabelDelivery)),
		menu.Row(menu.Text(service.LabelAddress), menu.Text(service.LabelOrder)),
		menu.Row(menu.Text(service.LabelQuestion)),
	)
	return menu
}

// backMenuMarkup returns the single-button back keyboard
func backMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(service.LabelBack)))
	return menu
}
