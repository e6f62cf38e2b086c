package tg

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func practiceMenuHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Переход в раздел Дневник практик")
	msg.ReplyMarkup = practiceMenuKeyboard()
	return app.send(ctx, msg)
}

// addPracticeStartHandler начинает диалог добавления записи за сегодня.
func addPracticeStartHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	prompt := "Будет добавлена запись о вашей практике за сегодня.\nВведите количество минут:"
	if err := app.reply(ctx, chatID, prompt); err != nil {
		return err
	}
	app.dialogues.Set(chatID, DialogueState{Name: StateAddingDailyPracticeReceiveMinutes})
	return nil
}

// receivePracticeMinutesHandler принимает минуты и добавляет запись.
func receivePracticeMinutesHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID

	minutes, err := strconv.ParseUint(update.Message.Text, 10, 16)
	if err != nil {
		return app.reply(ctx, chatID, "Отправьте целое число")
	}

	output := "✅ Запись успешно добавлена!"
	if _, err := app.practices.AddDailyPracticeEntry(ctx, uint16(minutes), chatID); err != nil {
		output = err.Error()
	}

	app.dialogues.Delete(chatID)
	return app.reply(ctx, chatID, output)
}

// practiceHistoryHandler выводит дневник с суммой часов в заголовке.
func practiceHistoryHandler(ctx context.Context, app *Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID

	entries, err := app.practices.GetDailyPracticeLogHistory(ctx, chatID)
	if err != nil {
		return app.reply(ctx, chatID, err.Error())
	}
	if len(entries) == 0 {
		return app.reply(ctx, chatID, "История практик пуста.")
	}

	totalMinutes := 0
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		totalMinutes += int(entry.Minutes)
		lines = append(lines, entry.String())
	}

	output := fmt.Sprintf("Всего: %.1f часов\n\n%s", float64(totalMinutes)/60, strings.Join(lines, "\n"))
	return app.reply(ctx, chatID, output)
}
