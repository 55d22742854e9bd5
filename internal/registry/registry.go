// Package registry — множество активных пользователей для ежедневной рассылки.
package registry

import "sync"

// Registry — потокобезопасное множество id пользователей.
// Не персистентно: после рестарта наполняется заново по мере обращений.
type Registry struct {
	mu    sync.Mutex
	users map[int64]struct{}
}

func New() *Registry {
	return &Registry{users: make(map[int64]struct{})}
}

// Add регистрирует пользователя. Повторное добавление — no-op.
func (r *Registry) Add(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userID] = struct{}{}
}

// Remove исключает пользователя (например, заблокировавшего бота).
func (r *Registry) Remove(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
}

// Contains сообщает, зарегистрирован ли пользователь.
func (r *Registry) Contains(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[userID]
	return ok
}

// Len возвращает размер множества.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// Snapshot возвращает копию множества. Рассылка итерирует копию,
// чтобы параллельные изменения не влияли на текущий прогон.
func (r *Registry) Snapshot() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids
}
