package models

import "time"

// MoodEntry — одна запись дневника настроения.
// Запись неизменяемая: после сохранения только читается.
type MoodEntry struct {
	ID        int64
	UserID    int64
	Mood      string
	Text      string
	CreatedAt time.Time // всегда UTC
}

// AnalysisResult — результат анализа от нейросети.
// Не сохраняется в базу, живёт только в ответе пользователю.
type AnalysisResult struct {
	Trend string
	Quote string
}

// Варианты настроения. Порядок фиксированный: от лучшего к худшему.
const (
	MoodGreat   = "😄 Отличное"
	MoodGood    = "🙂 Хорошее"
	MoodNormal  = "😐 Нормальное"
	MoodBad     = "😔 Плохое"
	MoodVeryBad = "😢 Очень плохое"
)

// MoodOptions — все допустимые варианты в порядке отображения клавиатуры.
var MoodOptions = []string{
	MoodGreat,
	MoodGood,
	MoodNormal,
	MoodBad,
	MoodVeryBad,
}

// MoodValues — числовое значение настроения для графика (5 — лучшее).
var MoodValues = map[string]int{
	MoodGreat:   5,
	MoodGood:    4,
	MoodNormal:  3,
	MoodBad:     2,
	MoodVeryBad: 1,
}

// MoodEmoji — эмодзи для подписей оси Y графика.
var MoodEmoji = map[int]string{
	1: "😢",
	2: "😔",
	3: "😐",
	4: "🙂",
	5: "😄",
}

// IsValidMood проверяет, что строка — один из пяти вариантов.
func IsValidMood(mood string) bool {
	_, ok := MoodValues[mood]
	return ok
}

// MoodValue возвращает числовое значение настроения.
// Для неизвестной строки возвращает 3 (нейтральное).
func MoodValue(mood string) int {
	if v, ok := MoodValues[mood]; ok {
		return v
	}
	return 3
}
