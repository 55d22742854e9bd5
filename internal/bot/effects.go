package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/s1edev/trackerFeel/internal/conversation"
	"github.com/s1edev/trackerFeel/internal/graph"
	"github.com/s1edev/trackerFeel/internal/imagecard"
	"github.com/s1edev/trackerFeel/pkg/models"
)

// execute выполняет один эффект перехода автомата.
func (b *Bot) execute(ev event, eff conversation.Effect) {
	l := locText()

	switch e := eff.(type) {
	case conversation.PromptMood:
		b.sendOrEdit(ev, l.Mood.Prompt, nil)
		hint := newText(ev.chatID, l.Mood.KeyboardHint)
		hint.ReplyMarkup = moodKeyboard()
		b.send(hint)

	case conversation.PromptDescription:
		b.reply(ev, l.Mood.AskText, backKeyboard())

	case conversation.RetryDescription:
		b.reply(ev, l.Mood.TooShort, backKeyboard())

	case conversation.CommitEntry:
		b.commitEntry(ev, e.Mood, e.Text)

	case conversation.PromptDate:
		kb := backKeyboard()
		b.sendOrEdit(ev, l.Date.Prompt, &kb)

	case conversation.LookupDate:
		b.lookupDate(ev, e.Date)

	case conversation.ReportInvalidDate:
		b.reply(ev, l.Date.Invalid, backKeyboard())

	case conversation.ReportFailure:
		b.replyPlain(ev, l.Mood.Error)

	case conversation.ShowMenu:
		b.showMenu(ev)
	}
}

// commitEntry сохраняет запись и отвечает анализом.
// Сначала — долговечная запись в базу; анализ запускается только после неё,
// и его сбой никогда не откатывает сохранённое.
func (b *Bot) commitEntry(ev event, mood, text string) {
	ctx := context.Background()
	l := locText()

	id, err := b.db.SaveEntry(ctx, ev.userID, mood, text, time.Now().UTC())
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", ev.userID).Msg("не удалось сохранить запись")
		b.replyPlain(ev, l.Mood.Error)
		return
	}
	b.log.Info().Int64("entry_id", id).Int64("user_id", ev.userID).Msg("запись сохранена")

	recent, err := b.db.RecentEntries(ctx, ev.userID, 7, id)
	if err != nil {
		// анализ пойдёт без контекста, запись уже сохранена
		b.log.Error().Err(err).Int64("user_id", ev.userID).Msg("не удалось получить последние записи")
		recent = nil
	}

	b.replyPlain(ev, l.Mood.Saving)
	res := b.analyzer.Analyze(ctx, mood, text, recent)

	// удаляем сообщение с описанием дня
	if ev.messageID != 0 {
		if _, err := b.api.Request(tgbotapi.NewDeleteMessage(ev.chatID, ev.messageID)); err != nil {
			b.log.Debug().Err(err).Msg("не удалось удалить сообщение пользователя")
		}
	}

	if b.cfg.AnalysisCard {
		if png, cerr := imagecard.Render(mood, res); cerr == nil {
			photo := tgbotapi.NewPhoto(ev.chatID, tgbotapi.FileBytes{Name: "mood_card.png", Bytes: png})
			photo.ReplyMarkup = backKeyboard()
			if _, serr := b.api.Send(photo); serr == nil {
				return
			}
		} else {
			b.log.Error().Err(cerr).Msg("не удалось нарисовать карточку анализа")
		}
	}

	b.reply(ev, fmt.Sprintf(l.Mood.Done, res.Trend, res.Quote), backKeyboard())
}

// lookupDate ищет записи за сутки date в поясе пользователя.
func (b *Bot) lookupDate(ev event, date time.Time) {
	l := locText()
	dateStr := date.Format("2006-01-02")
	b.log.Info().Int64("user_id", ev.userID).Str("date", dateStr).Msg("поиск записей по дате")

	start, end := conversation.DayWindow(date)
	entries, err := b.db.EntriesByWindow(context.Background(), ev.userID, start, end)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", ev.userID).Msg("не удалось выбрать записи за дату")
		b.replyPlain(ev, l.Mood.Error)
		return
	}

	if len(entries) == 0 {
		b.reply(ev, fmt.Sprintf(l.Date.Empty, dateStr), backKeyboard())
		return
	}

	b.reply(ev, formatEntries(dateStr, entries), backKeyboard())
}

// sendGraph отвечает графиком настроения за последние записи.
func (b *Bot) sendGraph(ev event) {
	l := locText()
	b.log.Info().Int64("user_id", ev.userID).Msg("пользователь запросил график")

	entries, err := b.db.LatestEntries(context.Background(), ev.userID, 30)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", ev.userID).Msg("не удалось выбрать записи для графика")
		kb := backKeyboard()
		b.sendOrEdit(ev, l.Graph.Error, &kb)
		return
	}
	if len(entries) == 0 {
		kb := backKeyboard()
		b.sendOrEdit(ev, l.Graph.Empty, &kb)
		return
	}

	// записи приходят по убыванию времени, график рисуем хронологически
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	png, err := graph.Render(entries)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", ev.userID).Msg("не удалось построить график")
		kb := backKeyboard()
		b.sendOrEdit(ev, l.Graph.Error, &kb)
		return
	}

	if ev.editMsgID != 0 {
		if _, err := b.api.Request(tgbotapi.NewDeleteMessage(ev.chatID, ev.editMsgID)); err != nil {
			b.log.Debug().Err(err).Msg("не удалось удалить сообщение меню")
		}
	}

	photo := tgbotapi.NewPhoto(ev.chatID, tgbotapi.FileBytes{Name: "mood_graph.png", Bytes: png})
	photo.Caption = l.Graph.Caption
	photo.ReplyMarkup = backKeyboard()
	b.send(photo)
}

// showMenu возвращает пользователя в главное меню.
func (b *Bot) showMenu(ev event) {
	kb := mainMenuKeyboard()
	b.sendOrEdit(ev, locText().Start.Menu, &kb)
}

// formatEntries собирает текст ответа по найденным записям.
func formatEntries(dateStr string, entries []models.MoodEntry) string {
	l := locText()
	parts := make([]string, 0, len(entries)+1)
	parts = append(parts, fmt.Sprintf(l.Date.Header, dateStr))
	for i, e := range entries {
		localTime := e.CreatedAt.In(conversation.UserLocation)
		parts = append(parts, fmt.Sprintf(l.Date.Entry, i+1, e.Mood, e.Text, localTime.Format("15:04")))
	}
	return strings.Join(parts, "\n\n────────────────────\n")
}
