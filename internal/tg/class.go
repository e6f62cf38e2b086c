package tg

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"classtrackerbot/internal/infrastructure/logger"
)

func classesMenuHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Переход в раздел Занятия")
	msg.ReplyMarkup = classesMenuKeyboard()
	return app.send(ctx, msg)
}

func classSettingsHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Настройки занятий")
	msg.ReplyMarkup = classSettingsKeyboard()
	return app.send(ctx, msg)
}

// addClassStartHandler начинает диалог добавления занятия.
func addClassStartHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	if err := app.reply(ctx, chatID, "Введите название"); err != nil {
		return err
	}
	app.dialogues.Set(chatID, DialogueState{Name: StateAddingClassReceiveName})
	return nil
}

// receiveClassNameHandler принимает название. Пустой текст не завершает
// операцию — повторный запрос.
func receiveClassNameHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	if text == "" {
		return app.reply(ctx, chatID, "Отправьте текст")
	}

	app.dialogues.Set(chatID, DialogueState{
		Name:      StateAddingClassReceiveQuantity,
		ClassName: text,
	})
	return app.reply(ctx, chatID, "Введите количество занятий")
}

// receiveClassQuantityHandler принимает количество и создает занятие.
func receiveClassQuantityHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	state := app.dialogues.Get(chatID)

	quantity, err := strconv.ParseUint(update.Message.Text, 10, 8)
	if err != nil {
		return app.reply(ctx, chatID, "Отправьте число")
	}

	output := "✅ Занятие успешно добавлено!"
	if _, err := app.classes.AddClass(ctx, state.ClassName, uint8(quantity), chatID); err != nil {
		output = err.Error()
	}

	app.dialogues.Delete(chatID)
	return app.reply(ctx, chatID, output)
}

// listClassesHandler выводит занятия пользователя построчно.
func listClassesHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID

	classes, err := app.classes.GetClasses(ctx, chatID)
	if err != nil {
		return app.reply(ctx, chatID, err.Error())
	}
	if len(classes) == 0 {
		return app.reply(ctx, chatID, "Список занятий пуст.")
	}

	lines := make([]string, 0, len(classes))
	for _, class := range classes {
		lines = append(lines, class.String())
	}
	return app.reply(ctx, chatID, strings.Join(lines, "\n"))
}

// sendClassPicker показывает inline-список занятий с заданным действием.
func sendClassPicker(ctx context.Context, app *Bot, chatID int64, prompt, action string) error {
	classes, err := app.classes.GetClasses(ctx, chatID)
	if err != nil {
		return app.reply(ctx, chatID, err.Error())
	}
	if len(classes) == 0 {
		return app.reply(ctx, chatID, "Список занятий пуст.")
	}

	msg := tgbotapi.NewMessage(chatID, prompt)
	msg.ReplyMarkup = makeClassListInlineKeyboard(classes, menuRowSize, action)
	return app.send(ctx, msg)
}

func listClassesForDeductionHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	return sendClassPicker(ctx, app, update.Message.Chat.ID, "Выберите занятие для списания", ActionDeductClass)
}

func updateQuantityMenuHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	return sendClassPicker(ctx, app, update.Message.Chat.ID, "Выберите занятие для обновления", ActionUpdateQuantity)
}

func deductionHistoryMenuHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	return sendClassPicker(ctx, app, update.Message.Chat.ID, "Выберите занятие", ActionDeductionHistory)
}

// callbackClassID извлекает class_id из payload'а "<action>:<id>".
func callbackClassID(q *tgbotapi.CallbackQuery) (int64, error) {
	_, id, ok := strings.Cut(q.Data, ":")
	if !ok {
		return 0, fmt.Errorf("некорректный callback payload: %q", q.Data)
	}
	return strconv.ParseInt(id, 10, 64)
}

// respondToCallback редактирует сообщение с кнопками, а если его нет —
// отвечает обычным сообщением.
func respondToCallback(ctx context.Context, app *Bot, q *tgbotapi.CallbackQuery, text string) error {
	if q.Message != nil {
		edit := tgbotapi.NewEditMessageText(q.Message.Chat.ID, q.Message.MessageID, text)
		return app.send(ctx, edit)
	}
	return app.reply(ctx, q.From.ID, text)
}

// deductClassCallbackHandler списывает занятие и пишет историю.
// Успех показывается только после обеих записей; если история не
// записалась после зафиксированного списания — логируем и показываем
// ошибку, списание не откатывается.
func deductClassCallbackHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	q := update.CallbackQuery
	app.answerCallback(q.ID)

	classID, err := callbackClassID(q)
	if err != nil {
		return err
	}

	var output string
	class, err := app.classes.DeductClass(ctx, classID, q.From.ID)
	if err != nil {
		output = err.Error()
	} else if err := app.classes.AddClassDeductionHistory(ctx, classID, q.From.ID); err != nil {
		logger.Warnf("списание занятия %d зафиксировано, но история не записана: %v", classID, err)
		output = err.Error()
	} else {
		output = fmt.Sprintf("✅ Занятие %s успешно списано! Остаток: %d", class.Name, class.Quantity)
	}

	return respondToCallback(ctx, app, q, output)
}

// updateQuantityCallbackHandler переводит диалог в прием нового остатка.
func updateQuantityCallbackHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	q := update.CallbackQuery
	app.answerCallback(q.ID)

	classID, err := callbackClassID(q)
	if err != nil {
		return err
	}

	app.dialogues.Set(q.From.ID, DialogueState{
		Name:    StateUpdatingClassReceiveQuantity,
		ClassID: classID,
	})
	return app.reply(ctx, q.From.ID, "Введите количество")
}

// receiveUpdatedQuantityHandler принимает новый остаток занятия.
func receiveUpdatedQuantityHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	state := app.dialogues.Get(chatID)

	quantity, err := strconv.ParseUint(update.Message.Text, 10, 8)
	if err != nil {
		return app.reply(ctx, chatID, "Отправьте число")
	}

	var output string
	class, err := app.classes.UpdateClassQuantity(ctx, state.ClassID, chatID, uint8(quantity))
	if err != nil {
		output = err.Error()
	} else {
		output = fmt.Sprintf("✅ Занятие %s успешно обновлено! Остаток: %d", class.Name, class.Quantity)
	}

	app.dialogues.Delete(chatID)
	return app.reply(ctx, chatID, output)
}

// deductionHistoryCallbackHandler показывает историю списаний занятия.
func deductionHistoryCallbackHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	q := update.CallbackQuery
	app.answerCallback(q.ID)

	classID, err := callbackClassID(q)
	if err != nil {
		return err
	}

	histories, err := app.classes.GetDeductionHistories(ctx, classID, q.From.ID)
	if err != nil {
		return respondToCallback(ctx, app, q, err.Error())
	}
	if len(histories) == 0 {
		return respondToCallback(ctx, app, q, "История списаний пуста.")
	}

	lines := make([]string, 0, len(histories))
	for _, history := range histories {
		lines = append(lines, history.String())
	}
	return respondToCallback(ctx, app, q, strings.Join(lines, "\n"))
}
