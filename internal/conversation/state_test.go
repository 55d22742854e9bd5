package conversation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s1edev/trackerFeel/pkg/models"
)

func TestStore_UnknownUserIsIdle(t *testing.T) {
	s := NewStore()
	assert.Equal(t, State{}, s.Get(42))
}

func TestStore_SetGetReset(t *testing.T) {
	s := NewStore()

	s.Set(1, State{Step: StepAwaitingDescription, Mood: models.MoodGood})
	assert.Equal(t, StepAwaitingDescription, s.Get(1).Step)
	assert.Equal(t, models.MoodGood, s.Get(1).Mood)

	// ровно одно состояние на пользователя: новое перезаписывает старое
	s.Set(1, State{Step: StepAwaitingDateQuery})
	assert.Equal(t, State{Step: StepAwaitingDateQuery}, s.Get(1))

	s.Reset(1)
	assert.Equal(t, State{}, s.Get(1))
}

func TestStore_IdleNotRetained(t *testing.T) {
	s := NewStore()
	s.Set(7, State{Step: StepAwaitingMood})
	s.Set(7, State{})
	assert.Equal(t, State{}, s.Get(7))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Set(id, State{Step: StepAwaitingMood})
			_ = s.Get(id)
			s.Reset(id)
		}(int64(i % 5))
	}
	wg.Wait()
}
