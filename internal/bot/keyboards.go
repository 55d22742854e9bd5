package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/s1edev/trackerFeel/pkg/locales"
	"github.com/s1edev/trackerFeel/pkg/models"
)

func locText() *locales.Locales {
	return locales.Get()
}

// mainMenuKeyboard — главное меню: график, поиск по дате, новая запись.
func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locText()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.MainMenu.Buttons.Graph, "menu:graph"),
			tgbotapi.NewInlineKeyboardButtonData(l.MainMenu.Buttons.Date, "menu:date"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.MainMenu.Buttons.Mood, "menu:mood"),
		),
	)
}

// moodKeyboard — reply-клавиатура с пятью вариантами настроения.
func moodKeyboard() tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(models.MoodOptions))
	for _, opt := range models.MoodOptions {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(opt)))
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.OneTimeKeyboard = true
	kb.ResizeKeyboard = true
	return kb
}

// backKeyboard — кнопка возврата в меню.
func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locText().MainMenu.Buttons.Back, "menu:back"),
		),
	)
}

// subscribeKeyboard — ссылка на канал и кнопка повторной проверки.
func subscribeKeyboard(channelUsername string) tgbotapi.InlineKeyboardMarkup {
	l := locText()
	link := "https://t.me/" + channelUsername
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(l.Subscription.Buttons.Subscribe, link),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Subscription.Buttons.Check, "check_subscription"),
		),
	)
}
