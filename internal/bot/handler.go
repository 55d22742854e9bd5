package bot

import (
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/s1edev/trackerFeel/internal/conversation"
	"github.com/s1edev/trackerFeel/pkg/models"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// event — контекст одного обновления.
type event struct {
	chatID    int64
	userID    int64
	messageID int // сообщение пользователя (удаляется после сохранения записи)
	editMsgID int // сообщение бота из callback (редактируется вместо отправки)
}

// handleUpdate обрабатывает входящее обновление
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}

	if update.Message != nil {
		b.handleMessage(update.Message)
	}
}

// handleMessage обрабатывает текстовые сообщения
func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil || msg.Text == "" {
		return
	}

	userID := msg.From.ID
	b.registry.Add(userID)

	ev := event{chatID: msg.Chat.ID, userID: userID, messageID: msg.MessageID}

	if !b.checkSubscription(ev) {
		return
	}

	if msg.IsCommand() {
		if msg.Command() == "start" {
			b.log.Info().Int64("user_id", userID).Msg("пользователь запустил бота")
			greeting := newText(ev.chatID, locText().Start.Greeting)
			greeting.ReplyMarkup = mainMenuKeyboard()
			b.send(greeting)
		}
		return
	}

	if act := classifyText(b.states.Get(userID), msg.Text); act != nil {
		b.apply(ev, act)
	}
}

// classifyText переводит текст сообщения в действие автомата.
//
// Приоритет разбора:
//  1. строка вида ГГГГ-ММ-ДД — всегда неявный поиск по дате, с любого
//     шага диалога. Описание дня, совпадающее с датой, сохранить
//     нельзя — это осознанный выбор, а не недочёт;
//  2. один из пяти вариантов настроения — выбор настроения;
//  3. текст по текущему шагу: описание дня или дата из формы поиска;
//  4. остальное игнорируется (nil).
func classifyText(st conversation.State, text string) conversation.Action {
	trimmed := strings.TrimSpace(text)

	switch {
	case datePattern.MatchString(trimmed):
		return conversation.DateQueried{Raw: trimmed}
	case models.IsValidMood(trimmed):
		return conversation.MoodChosen{Mood: trimmed}
	}

	switch st.Step {
	case conversation.StepAwaitingDescription:
		return conversation.DescriptionSubmitted{Text: text}
	case conversation.StepAwaitingDateQuery:
		return conversation.DateQueried{Raw: trimmed}
	}
	return nil
}

// handleCallback обрабатывает нажатия на inline-кнопки
func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	userID := cb.From.ID
	b.registry.Add(userID)

	// отвечаем на callback чтобы убрать "часики"
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Error().Err(err).Msg("не удалось ответить на callback")
	}

	ev := event{chatID: cb.Message.Chat.ID, userID: userID, editMsgID: cb.Message.MessageID}

	if cb.Data == "check_subscription" {
		if b.isSubscribed(userID) {
			b.showMenu(ev)
		} else {
			b.sendSubscribePrompt(ev)
		}
		return
	}

	if !b.checkSubscription(ev) {
		return
	}

	switch cb.Data {
	case "menu:mood":
		b.apply(ev, conversation.BeginEntry{})
	case "menu:date":
		b.apply(ev, conversation.BeginDateQuery{})
	case "menu:graph":
		b.sendGraph(ev)
	case "menu:back":
		b.apply(ev, conversation.Cancel{})
	}
}

// apply прогоняет действие через автомат и выполняет эффекты.
func (b *Bot) apply(ev event, act conversation.Action) {
	st := b.states.Get(ev.userID)
	next, effects := conversation.Transition(st, act)
	b.states.Set(ev.userID, next)

	for _, eff := range effects {
		b.execute(ev, eff)
	}
}
