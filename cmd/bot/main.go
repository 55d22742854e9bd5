package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/s1edev/trackerFeel/internal/analyzer"
	"github.com/s1edev/trackerFeel/internal/bot"
	"github.com/s1edev/trackerFeel/internal/config"
	"github.com/s1edev/trackerFeel/internal/conversation"
	"github.com/s1edev/trackerFeel/internal/logger"
	"github.com/s1edev/trackerFeel/internal/registry"
	"github.com/s1edev/trackerFeel/internal/scheduler"
	"github.com/s1edev/trackerFeel/internal/storage"
)

func main() {
	log := logger.New("trackerfeel")

	log.Info().Msg("загрузка конфигурации")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("не удалось загрузить конфигурацию")
	}

	log.Info().Str("path", cfg.DatabasePath).Msg("открытие базы данных")
	db, err := storage.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("не удалось открыть базу данных")
	}
	defer db.Close()

	an := analyzer.New(cfg.MistralAPIKey, cfg.MistralModel, "", log)
	states := conversation.NewStore()
	reg := registry.New()

	b, err := bot.New(cfg, db, an, states, reg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("не удалось создать бота")
	}

	hour, minute, _ := cfg.CheckTime()
	loc, _ := cfg.Location()

	sched := scheduler.New(reg, b, hour, minute, loc, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("не удалось запустить планировщик")
	}
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("check_time", cfg.MoodCheckTime).Str("timezone", cfg.Timezone).Msg("бот запущен")
	if err := b.Start(ctx); err != nil {
		log.Error().Err(err).Msg("бот завершился с ошибкой")
		os.Exit(1)
	}
	log.Info().Msg("бот остановлен")
}
