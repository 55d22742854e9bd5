package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/s1edev/trackerFeel/internal/logger"
	"github.com/s1edev/trackerFeel/internal/registry"
)

// fakeSender считает отправки и возвращает заданные ошибки по пользователям.
type fakeSender struct {
	sent []int64
	fail map[int64]error
}

func (f *fakeSender) SendReminder(userID int64) error {
	if err, ok := f.fail[userID]; ok {
		return err
	}
	f.sent = append(f.sent, userID)
	return nil
}

func newBroadcaster(reg *registry.Registry, s Sender) *Broadcaster {
	return New(reg, s, 20, 30, time.UTC, logger.New("test"))
}

func TestBroadcast_AllSucceed(t *testing.T) {
	reg := registry.New()
	for i := int64(1); i <= 5; i++ {
		reg.Add(i)
	}
	sender := &fakeSender{}
	b := newBroadcaster(reg, sender)

	b.Broadcast()

	assert.Len(t, sender.sent, 5)
	assert.Equal(t, 5, reg.Len(), "успешная рассылка не меняет реестр")
}

func TestBroadcast_BlockedUserRemoved(t *testing.T) {
	reg := registry.New()
	reg.Add(1)
	reg.Add(2)
	sender := &fakeSender{fail: map[int64]error{
		2: errors.New("Forbidden: bot was blocked by the user"),
	}}
	b := newBroadcaster(reg, sender)

	b.Broadcast()

	assert.False(t, reg.Contains(2), "заблокировавший бота выбывает из рассылки")
	assert.True(t, reg.Contains(1))

	// следующее срабатывание больше не трогает удалённого
	sender.sent = nil
	b.Broadcast()
	assert.Equal(t, []int64{1}, sender.sent)
}

func TestBroadcast_TransientErrorKeepsUser(t *testing.T) {
	reg := registry.New()
	reg.Add(1)
	reg.Add(2)
	reg.Add(3)
	sender := &fakeSender{fail: map[int64]error{
		2: errors.New("Bad Gateway"),
	}}
	b := newBroadcaster(reg, sender)

	b.Broadcast()

	// временная ошибка: пользователь остаётся, обход не прерывается
	assert.True(t, reg.Contains(2))
	assert.Len(t, sender.sent, 2)
}

type panickySender struct{ after *fakeSender }

func (p *panickySender) SendReminder(userID int64) error {
	if userID == 1 {
		panic("что-то пошло не так")
	}
	return p.after.SendReminder(userID)
}

func TestBroadcast_PanicIsolated(t *testing.T) {
	reg := registry.New()
	reg.Add(1)
	reg.Add(2)
	inner := &fakeSender{}
	b := newBroadcaster(reg, &panickySender{after: inner})

	assert.NotPanics(t, func() { b.Broadcast() })
	assert.Contains(t, inner.sent, int64(2), "паника одного пользователя не срывает рассылку")
}

func TestStart_ReplacesJob(t *testing.T) {
	b := newBroadcaster(registry.New(), &fakeSender{})
	defer b.Stop()

	assert.NoError(t, b.Start())
	assert.NoError(t, b.Start())

	assert.Len(t, b.cron.Entries(), 1, "повторный Start не дублирует задачу")
}

func TestStop_WithoutStart(t *testing.T) {
	b := newBroadcaster(registry.New(), &fakeSender{})
	assert.NotPanics(t, func() { b.Stop() })
}
