// Package conversation — конечный автомат диалога «выбери настроение → опиши день».
package conversation

import "sync"

// Step — шаг диалога пользователя.
type Step int

const (
	StepIdle Step = iota
	StepAwaitingMood
	StepAwaitingDescription
	StepAwaitingDateQuery
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepAwaitingMood:
		return "awaiting_mood"
	case StepAwaitingDescription:
		return "awaiting_description"
	case StepAwaitingDateQuery:
		return "awaiting_date_query"
	}
	return "unknown"
}

// State — текущее состояние диалога одного пользователя.
// Инвариант: Mood непустой только на шаге StepAwaitingDescription.
type State struct {
	Step Step
	Mood string // выбранное настроение, ждёт описания дня
}

// Store хранит состояния диалогов по id пользователя.
// Go-рантайм вытесняющий, поэтому карта под мьютексом;
// семантика по ключу — last-write-wins, без транзакций.
type Store struct {
	mu     sync.Mutex
	states map[int64]State
}

func NewStore() *Store {
	return &Store{states: make(map[int64]State)}
}

// Get возвращает состояние пользователя. Неизвестный пользователь — Idle.
func (s *Store) Get(userID int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[userID]
}

// Set перезаписывает состояние пользователя целиком.
func (s *Store) Set(userID int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.Step == StepIdle && st.Mood == "" {
		// Idle не храним: карта не растёт от завершённых диалогов
		delete(s.states, userID)
		return
	}
	s.states[userID] = st
}

// Reset сбрасывает диалог пользователя в Idle.
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
