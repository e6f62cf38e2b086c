package tg

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"classtrackerbot/internal/model"
)

// Метки меню. Сравнение с текстом сообщения — точное.
const (
	LabelClasses          = "Занятия"
	LabelAddClass         = "Добавить занятие"
	LabelDeductClass      = "Списать занятие"
	LabelClassSettings    = "Настройка занятий"
	LabelListClasses      = "Список занятий"
	LabelDeductionHistory = "История списаний"
	LabelUpdateQuantity   = "Обновить количество"
	LabelMainMenu         = "Главное меню"
	LabelPracticeLog      = "Дневник практик"
	LabelAddPracticeEntry = "Добавить запись"
	LabelPracticeHistory  = "История практик"
)

// Действия inline-кнопок. Payload: "<action>:<class_id>".
const (
	ActionDeductClass      = "deduct_class"
	ActionUpdateQuantity   = "update_quantity"
	ActionDeductionHistory = "class_deduction_history"
)

const menuRowSize = 2

func makeMenuKeyboard(labels []string, rowSize int) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton

	for len(labels) > 0 {
		n := rowSize
		if n > len(labels) {
			n = len(labels)
		}
		row := make([]tgbotapi.KeyboardButton, 0, n)
		for _, label := range labels[:n] {
			row = append(row, tgbotapi.NewKeyboardButton(label))
		}
		rows = append(rows, row)
		labels = labels[n:]
	}

	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return makeMenuKeyboard([]string{LabelClasses, LabelPracticeLog}, menuRowSize)
}

func classesMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return makeMenuKeyboard([]string{
		LabelAddClass,
		LabelDeductClass,
		LabelClassSettings,
		LabelMainMenu,
	}, menuRowSize)
}

func classSettingsKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return makeMenuKeyboard([]string{
		LabelListClasses,
		LabelDeductionHistory,
		LabelUpdateQuantity,
		LabelMainMenu,
	}, menuRowSize)
}

func practiceMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return makeMenuKeyboard([]string{
		LabelAddPracticeEntry,
		LabelPracticeHistory,
		LabelMainMenu,
	}, menuRowSize)
}

// makeClassListInlineKeyboard строит inline-клавиатуру выбора занятия:
// одна кнопка "имя (остаток)" на занятие, payload "<action>:<class_id>".
func makeClassListInlineKeyboard(classes []model.Class, rowSize int, action string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for len(classes) > 0 {
		n := rowSize
		if n > len(classes) {
			n = len(classes)
		}
		row := make([]tgbotapi.InlineKeyboardButton, 0, n)
		for _, class := range classes[:n] {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				class.String(),
				fmt.Sprintf("%s:%d", action, class.ClassID),
			))
		}
		rows = append(rows, row)
		classes = classes[n:]
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
