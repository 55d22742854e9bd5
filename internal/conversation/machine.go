package conversation

import (
	"strings"
	"time"

	"github.com/s1edev/trackerFeel/pkg/models"
)

// Действия — входные события диалога.
type Action interface{ isAction() }

// BeginEntry — пользователь начал запись дня (кнопка меню).
type BeginEntry struct{}

// MoodChosen — пользователь прислал один из вариантов настроения.
type MoodChosen struct{ Mood string }

// DescriptionSubmitted — пользователь прислал описание дня.
type DescriptionSubmitted struct{ Text string }

// BeginDateQuery — пользователь открыл поиск по дате (кнопка меню).
type BeginDateQuery struct{}

// DateQueried — пользователь прислал строку даты ГГГГ-ММ-ДД.
type DateQueried struct{ Raw string }

// Cancel — явный возврат в меню, сброс диалога.
type Cancel struct{}

func (BeginEntry) isAction()           {}
func (MoodChosen) isAction()           {}
func (DescriptionSubmitted) isAction() {}
func (BeginDateQuery) isAction()       {}
func (DateQueried) isAction()          {}
func (Cancel) isAction()               {}

// Эффекты — побочные действия, которые должен выполнить транспортный слой
// после перехода. Сам автомат чистый и не ходит ни в базу, ни в Telegram.
type Effect interface{ isEffect() }

// PromptMood — показать клавиатуру выбора настроения.
type PromptMood struct{}

// PromptDescription — попросить описать день.
type PromptDescription struct{}

// RetryDescription — описание слишком короткое, попросить ещё раз.
type RetryDescription struct{}

// CommitEntry — сохранить запись, запросить анализ, ответить.
type CommitEntry struct {
	Mood string
	Text string
}

// PromptDate — попросить дату для поиска.
type PromptDate struct{}

// LookupDate — найти записи за день (день в смысле локального окна UTC+5).
type LookupDate struct{ Date time.Time }

// ReportInvalidDate — сообщить о некорректной дате.
type ReportInvalidDate struct{}

// ReportFailure — сообщить об общей ошибке и предложить начать заново.
type ReportFailure struct{}

// ShowMenu — показать главное меню.
type ShowMenu struct{}

func (PromptMood) isEffect()        {}
func (PromptDescription) isEffect() {}
func (RetryDescription) isEffect()  {}
func (CommitEntry) isEffect()       {}
func (PromptDate) isEffect()        {}
func (LookupDate) isEffect()        {}
func (ReportInvalidDate) isEffect() {}
func (ReportFailure) isEffect()     {}
func (ShowMenu) isEffect()          {}

// MinDescriptionLen — минимальная длина описания дня после обрезки пробелов.
const MinDescriptionLen = 3

// Transition применяет действие к состоянию и возвращает новое состояние
// и эффекты для выполнения. Функция чистая: вся работа с внешним миром —
// в эффектах.
func Transition(st State, act Action) (State, []Effect) {
	switch a := act.(type) {
	case BeginEntry:
		return State{Step: StepAwaitingMood}, []Effect{PromptMood{}}

	case MoodChosen:
		if !models.IsValidMood(a.Mood) {
			// не вариант настроения — перехода нет
			return st, nil
		}
		return State{Step: StepAwaitingDescription, Mood: a.Mood}, []Effect{PromptDescription{}}

	case DescriptionSubmitted:
		if st.Step != StepAwaitingDescription {
			return st, nil
		}
		text := strings.TrimSpace(a.Text)
		if len([]rune(text)) < MinDescriptionLen {
			// единственный цикл повтора в диалоге
			return st, []Effect{RetryDescription{}}
		}
		if !models.IsValidMood(st.Mood) {
			// нарушен инвариант шага: настроение потеряно
			return State{}, []Effect{ReportFailure{}}
		}
		return State{}, []Effect{CommitEntry{Mood: st.Mood, Text: text}}

	case BeginDateQuery:
		return State{Step: StepAwaitingDateQuery}, []Effect{PromptDate{}}

	case DateQueried:
		date, err := time.Parse("2006-01-02", strings.TrimSpace(a.Raw))
		if err != nil {
			return State{}, []Effect{ReportInvalidDate{}}
		}
		return State{}, []Effect{LookupDate{Date: date}}

	case Cancel:
		return State{}, []Effect{ShowMenu{}}
	}
	return st, nil
}
