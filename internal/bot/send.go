package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newText(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// send отправляет сообщение, логируя ошибку. Доставка best-effort:
// неудача не прерывает обработку и не ретраится.
func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Msg("не удалось отправить сообщение")
	}
}

// reply — новое сообщение с inline-клавиатурой.
func (b *Bot) reply(ev event, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := newText(ev.chatID, text)
	msg.ReplyMarkup = kb
	b.send(msg)
}

// replyPlain — новое сообщение без клавиатуры.
func (b *Bot) replyPlain(ev event, text string) {
	b.send(newText(ev.chatID, text))
}

// sendOrEdit редактирует сообщение бота из callback, а если оно
// уже недоступно — отправляет новое.
func (b *Bot) sendOrEdit(ev event, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	if ev.editMsgID != 0 {
		var edit tgbotapi.EditMessageTextConfig
		if kb != nil {
			edit = tgbotapi.NewEditMessageTextAndMarkup(ev.chatID, ev.editMsgID, text, *kb)
		} else {
			edit = tgbotapi.NewEditMessageText(ev.chatID, ev.editMsgID, text)
		}
		if _, err := b.api.Send(edit); err == nil {
			return
		}
	}

	if kb != nil {
		b.reply(ev, text, *kb)
		return
	}
	b.replyPlain(ev, text)
}
