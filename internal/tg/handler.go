package tg

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Commands возвращает список slash-команд для регистрации при старте.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Перезапустить бота ♻️"},
		{Command: "main_menu", Description: "Перейти в главное меню 🏠"},
		{Command: "cancel_operation", Description: "Отменить операцию ❌"},
		{Command: "help", Description: "Помощь ℹ️"},
	}
}

const helpText = "Доступные команды:\n" +
	"/start — Перезапустить бота ♻️\n" +
	"/main_menu — Перейти в главное меню 🏠\n" +
	"/cancel_operation — Отменить операцию ❌\n" +
	"/help — Помощь ℹ️"

// startHandler идемпотентно регистрирует пользователя и показывает
// главное меню. Только /start создает пользователей.
func startHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID

	username := ""
	if from := update.SentFrom(); from != nil {
		username = from.UserName
	}

	if err := app.users.AddUser(ctx, chatID, username); err != nil {
		return app.reply(ctx, chatID, err.Error())
	}

	msg := tgbotapi.NewMessage(chatID, "Привет! Я помогу вести учет занятий и дневник практик.\nПосмотри, что я умею: /help")
	msg.ReplyMarkup = mainMenuKeyboard()
	return app.send(ctx, msg)
}

func helpHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	return app.reply(ctx, update.Message.Chat.ID, helpText)
}

func mainMenuHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Переход в главное меню")
	msg.ReplyMarkup = mainMenuKeyboard()
	return app.send(ctx, msg)
}

// cancelOperationHandler работает в любом состоянии и безусловно
// возвращает диалог в Idle.
func cancelOperationHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	app.dialogues.Delete(chatID)
	return app.reply(ctx, chatID, "Отмена операции")
}
