// Package analyzer — анализ настроения через Mistral (OpenAI-совместимый API).
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/s1edev/trackerFeel/pkg/models"
)

// Analyzer возвращает тренд и цитату для новой записи.
// Контракт: значение возвращается всегда, ошибка наружу не выходит.
type Analyzer interface {
	Analyze(ctx context.Context, mood, text string, recent []models.MoodEntry) models.AnalysisResult
}

const mistralBaseURL = "https://api.mistral.ai/v1"

// Запасная пара на случай любой ошибки анализа.
const (
	FallbackTrend = "Analysis temporarily unavailable"
	FallbackQuote = "Believe you can and you're halfway there — Theodore Roosevelt"
)

// Значения по умолчанию для пропущенных полей в ответе модели.
const (
	defaultTrend = "No trend analysis available"
	defaultQuote = "The only way to do great work is to love what you do — Steve Jobs"
)

const systemPrompt = "You are a supportive mood tracking assistant. " +
	"Always respond with valid JSON only. Use REAL quotes from famous people."

// Mistral — клиент анализа настроения.
type Mistral struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

// New создаёт клиент. baseURL пустой — боевой эндпоинт Mistral.
func New(apiKey, model, baseURL string, log zerolog.Logger) *Mistral {
	if baseURL == "" {
		baseURL = mistralBaseURL
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Mistral{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    log,
	}
}

// Analyze запрашивает у модели тренд и цитату.
// Любая ошибка (сеть, статус, кривой JSON) превращается в запасную пару.
func (m *Mistral) Analyze(ctx context.Context, mood, text string, recent []models.MoodEntry) models.AnalysisResult {
	m.log.Info().Str("mood", mood).Int("recent", len(recent)).Msg("запрос анализа настроения")

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.model,
		Temperature: 0.8,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(mood, text, recent)},
		},
	})
	if err != nil {
		m.log.Error().Err(err).Msg("ошибка Mistral API")
		return models.AnalysisResult{Trend: FallbackTrend, Quote: FallbackQuote}
	}
	if len(resp.Choices) == 0 {
		m.log.Error().Msg("пустой ответ Mistral API")
		return models.AnalysisResult{Trend: FallbackTrend, Quote: FallbackQuote}
	}

	var parsed struct {
		Trend string `json:"trend"`
		Quote string `json:"quote"`
	}
	raw := stripFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		m.log.Error().Err(err).Str("raw", raw).Msg("не удалось разобрать JSON анализа")
		return models.AnalysisResult{Trend: FallbackTrend, Quote: FallbackQuote}
	}

	if parsed.Trend == "" {
		parsed.Trend = defaultTrend
	}
	if parsed.Quote == "" {
		parsed.Quote = defaultQuote
	}

	m.log.Info().Str("trend", truncate(parsed.Trend, 50)).Msg("анализ получен")
	return models.AnalysisResult{Trend: parsed.Trend, Quote: parsed.Quote}
}

// buildPrompt собирает промпт с контекстом последних записей.
func buildPrompt(mood, text string, recent []models.MoodEntry) string {
	var ctxLines []string
	for _, e := range recent {
		ctxLines = append(ctxLines, fmt.Sprintf("- %s: %s — %s",
			e.CreatedAt.Format("2006-01-02"), e.Mood, truncate(e.Text, 100)))
	}
	entriesContext := "No previous entries."
	if len(ctxLines) > 0 {
		entriesContext = strings.Join(ctxLines, "\n")
	}

	return fmt.Sprintf(`
User's current mood: %s
User's day description: %s

Last 7 mood entries:
%s

Analyze the user's mood and provide a JSON response with:
- trend: brief analysis (1-2 sentences, max 150 characters) - identify patterns, note improvements or declines
- quote: a REAL motivational quote from a known author (max 100 characters)

Use ONLY real quotes from famous people like:
- Steve Jobs, Maya Angelou, Nelson Mandela, Mahatma Gandhi
- Albert Einstein, Mark Twain, Oscar Wilde, Winston Churchill
- Dalai Lama, Martin Luther King Jr., Eleanor Roosevelt, Theodore Roosevelt
- Or other well-known motivational speakers/authors

Return ONLY valid JSON in this exact format:
{
  "trend": "brief analysis",
  "quote": "Quote text — Author Name"
}

Keep responses concise, warm, and varied. Use different wording each time.
The quote must be REAL and ATTRIBUTED to a specific person.
Make the trend analysis personal and insightful based on the user's input.
`, mood, text, entriesContext)
}

// stripFences убирает обрамление ```json ... ``` из ответа модели.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
