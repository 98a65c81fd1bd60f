package service

import "github.com/Islam8171-lang/fryutt-bot/internal/domain"

// MenuAction is what a recognized (or unrecognized) menu text maps to
type MenuAction int

const (
	ActionFallback MenuAction = iota
	ActionStaticReply
	ActionReturnToMenu
	ActionEnterQuestion
	ActionEnterOrder
)

// Route is the resolved reaction to a menu text: what to do, what to say
// and which keyboard to attach
type Route struct {
	Action   MenuAction
	Reply    string
	Keyboard domain.Keyboard
}

// Menu button labels (exact match, case-sensitive)
const (
	LabelPrices   = "Узнать цены и товары"
	LabelDelivery = "Доставка"
	LabelAddress  = "Наш адрес"
	LabelBack     = "Назад"
	LabelQuestion = "Задать вопрос?"
	LabelOrder    = "Сделать заказ"
)

const (
	replyPrices = "Информацию о товарах и ценах можете ознакомиться в нашей группе: [t.me/fruitstorya](https://t.me/fruitstorya)"

	replyDelivery = "Условия доставки:\n" +
		"Доставляем наши фрукты от 40 до 100 рублей бесплатно\n" +
		"в пределах 20 км от нашей точки!"

	replyAddress = "Наш адрес: Логойская, улица 5А, Валерьяново, Минская область"

	replyBackToMenu = "Вы вернулись в главное меню."

	replyQuestionPrompt = "Напишите ваш вопрос, и мы скоро ответим:"

	replyOrderPrompt = "Пожалуйста, напишите ваш заказ, имя, телефон, адрес:"

	replyFallback = "Пожалуйста, используйте кнопки ниже."
)

// MenuRouter maps main-menu text to a Route. Only consulted while the
// session is in the default state; dialog states bypass it entirely.
type MenuRouter struct{}

// NewMenuRouter creates a menu router
func NewMenuRouter() *MenuRouter {
	return &MenuRouter{}
}

// Route resolves text against the fixed label set
func (r *MenuRouter) Route(text string) Route {
	switch text {
	case LabelPrices:
		return Route{Action: ActionStaticReply, Reply: replyPrices, Keyboard: domain.KeyboardBack}
	case LabelDelivery:
		return Route{Action: ActionStaticReply, Reply: replyDelivery, Keyboard: domain.KeyboardBack}
	case LabelAddress:
		return Route{Action: ActionStaticReply, Reply: replyAddress, Keyboard: domain.KeyboardBack}
	case LabelBack:
		return Route{Action: ActionReturnToMenu, Reply: replyBackToMenu, Keyboard: domain.KeyboardMain}
	case LabelQuestion:
		return Route{Action: ActionEnterQuestion, Reply: replyQuestionPrompt, Keyboard: domain.KeyboardNone}
	case LabelOrder:
		return Route{Action: ActionEnterOrder, Reply: replyOrderPrompt, Keyboard: domain.KeyboardNone}
	default:
		return Route{Action: ActionFallback, Reply: replyFallback, Keyboard: domain.KeyboardMain}
	}
}
