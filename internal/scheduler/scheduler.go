// Package scheduler — ежедневное напоминание всем активным пользователям.
package scheduler

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/s1edev/trackerFeel/internal/registry"
)

// Sender отправляет напоминание одному пользователю.
type Sender interface {
	SendReminder(userID int64) error
}

// Broadcaster запускает рассылку раз в день по cron-расписанию
// в заданной таймзоне.
type Broadcaster struct {
	cron   *cron.Cron
	reg    *registry.Registry
	sender Sender
	log    zerolog.Logger

	hour   int
	minute int

	mu      sync.Mutex
	entryID cron.EntryID
	hasJob  bool
}

// New создаёт рассыльщик. Таймер не запускается до Start.
func New(reg *registry.Registry, sender Sender, hour, minute int, loc *time.Location, log zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		cron:   cron.New(cron.WithLocation(loc)),
		reg:    reg,
		sender: sender,
		log:    log,
		hour:   hour,
		minute: minute,
	}
}

// Start регистрирует задачу и запускает таймер. Повторная регистрация
// заменяет предыдущую, а не дублирует её.
func (b *Broadcaster) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hasJob {
		b.cron.Remove(b.entryID)
		b.hasJob = false
	}

	spec := fmt.Sprintf("%d %d * * *", b.minute, b.hour)
	id, err := b.cron.AddFunc(spec, b.Broadcast)
	if err != nil {
		return fmt.Errorf("не удалось запланировать рассылку: %w", err)
	}
	b.entryID = id
	b.hasJob = true

	b.cron.Start()
	b.log.Info().Int("hour", b.hour).Int("minute", b.minute).Msg("рассылка запланирована")
	return nil
}

// Stop останавливает будущие срабатывания. Безопасен без Start.
func (b *Broadcaster) Stop() {
	b.cron.Stop()
	b.log.Info().Msg("планировщик остановлен")
}

// Broadcast — одно срабатывание: рассылка по снимку реестра.
// Ошибка одного пользователя не прерывает обход; пропущенных ретраев нет.
func (b *Broadcaster) Broadcast() {
	sent := 0
	errors := 0

	for _, userID := range b.reg.Snapshot() {
		if err := b.sendOne(userID); err != nil {
			errors++
			b.log.Error().Err(err).Int64("user_id", userID).Msg("не удалось отправить напоминание")
			// бот заблокирован — пользователь выбывает из рассылки навсегда
			if strings.Contains(strings.ToLower(err.Error()), "blocked") {
				b.reg.Remove(userID)
				b.log.Info().Int64("user_id", userID).Msg("пользователь заблокировал бота, удалён из рассылки")
			}
			continue
		}
		sent++
	}

	b.log.Info().Int("sent", sent).Int("errors", errors).Msg("ежедневная рассылка завершена")
}

// sendOne изолирует отправку одному пользователю, включая панику.
func (b *Broadcaster) sendOne(userID int64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("паника при отправке: %v", r)
		}
	}()
	return b.sender.SendReminder(userID)
}
