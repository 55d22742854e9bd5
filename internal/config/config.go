package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config — конфигурация бота из переменных окружения.
type Config struct {
	TelegramBotToken string `envconfig:"BOT_TOKEN" required:"true"`

	MistralAPIKey string `envconfig:"MISTRAL_API_KEY"`
	MistralModel  string `envconfig:"MISTRAL_MODEL" default:"mistral-large-latest"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"mood_tracker.db"`

	// Расписание ежедневного напоминания.
	Timezone      string `envconfig:"TIMEZONE" default:"Asia/Yekaterinburg"`
	MoodCheckTime string `envconfig:"MOOD_CHECK_TIME" default:"20:30"`

	// Канал для обязательной подписки. Пустой — проверка выключена.
	ChannelID       string `envconfig:"CHANNEL_ID"`
	ChannelUsername string `envconfig:"CHANNEL_USERNAME"`

	// Отправлять анализ картинкой вместо текста.
	AnalysisCard bool `envconfig:"ANALYSIS_CARD" default:"false"`
}

// Load читает .env (если есть) и собирает конфигурацию.
func Load() (*Config, error) {
	// .env необязателен: в проде переменные приходят из окружения
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать переменные окружения: %w", err)
	}

	if _, _, err := cfg.CheckTime(); err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CheckTime разбирает MOOD_CHECK_TIME формата "ЧЧ:ММ".
func (c *Config) CheckTime() (hour, minute int, err error) {
	parts := strings.SplitN(c.MoodCheckTime, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("некорректное MOOD_CHECK_TIME %q: ожидается ЧЧ:ММ", c.MoodCheckTime)
	}
	hour, err = strconv.Atoi(parts[0])
	if err == nil {
		minute, err = strconv.Atoi(parts[1])
	}
	if err != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("некорректное MOOD_CHECK_TIME %q: ожидается ЧЧ:ММ", c.MoodCheckTime)
	}
	return hour, minute, nil
}

// Location загружает таймзону расписания.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("неизвестная таймзона %q: %w", c.Timezone, err)
	}
	return loc, nil
}
