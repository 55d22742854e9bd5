package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/s1edev/trackerFeel/internal/analyzer"
	"github.com/s1edev/trackerFeel/internal/config"
	"github.com/s1edev/trackerFeel/internal/conversation"
	"github.com/s1edev/trackerFeel/internal/registry"
	"github.com/s1edev/trackerFeel/internal/storage"
)

// Bot представляет Telegram бота
type Bot struct {
	api      *tgbotapi.BotAPI
	db       *storage.DB
	analyzer analyzer.Analyzer
	states   *conversation.Store
	registry *registry.Registry
	cfg      *config.Config
	log      zerolog.Logger
}

// New создает нового бота
func New(cfg *config.Config, db *storage.DB, an analyzer.Analyzer, states *conversation.Store, reg *registry.Registry, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	log.Info().Str("username", api.Self.UserName).Msg("бот авторизован")

	return &Bot{
		api:      api,
		db:       db,
		analyzer: an,
		states:   states,
		registry: reg,
		cfg:      cfg,
		log:      log,
	}, nil
}

// Start запускает обработку обновлений
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			go b.handleUpdate(update)
		}
	}
}

// SendReminder отправляет ежедневное напоминание одному пользователю.
// Реализует scheduler.Sender; текст ошибки наверху проверяется на "blocked".
func (b *Bot) SendReminder(userID int64) error {
	msg := newText(userID, locText().Broadcast.Reminder)
	msg.ReplyMarkup = mainMenuKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		return err
	}
	b.log.Info().Int64("user_id", userID).Msg("напоминание отправлено")
	return nil
}
