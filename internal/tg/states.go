package tg

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// StateName — дискриминант состояния диалога.
type StateName string

const (
	StateIdle                              StateName = "Idle"
	StateAddingClassReceiveName            StateName = "AddingClassReceiveName"
	StateAddingClassReceiveQuantity        StateName = "AddingClassReceiveQuantity"
	StateUpdatingClassReceiveQuantity      StateName = "UpdatingClassReceiveQuantity"
	StateAddingDailyPracticeReceiveMinutes StateName = "AddingDailyPracticeReceiveMinutes"
)

// DialogueState — состояние диалога одного чата с полезной нагрузкой.
// ClassName заполнен в AddingClassReceiveQuantity,
// ClassID — в UpdatingClassReceiveQuantity.
type DialogueState struct {
	Name      StateName
	ClassName string
	ClassID   int64
}

type HandlerFunc func(ctx context.Context, app *Bot, update tgbotapi.Update) error

type Handler struct {
	Func        HandlerFunc
	Description string
}

// Route описывает маршрутизацию обновлений в одном состоянии диалога.
type Route struct {
	// MessageRoute — точное совпадение текста с меткой меню.
	MessageRoute map[string]Handler

	// CatchAll включает обработку любого текста внутри диалога.
	CatchAll     bool
	CatchAllFunc Handler

	// CallBackRoute — обработчики callback'ов по действию из payload'а.
	CallBackRoute map[string]HandlerFunc
}
