package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_AddRemove(t *testing.T) {
	r := New()

	r.Add(1)
	r.Add(2)
	r.Add(1) // повтор — no-op
	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Contains(1))

	r.Remove(1)
	assert.False(t, r.Contains(1))
	assert.Equal(t, 1, r.Len())

	r.Remove(99) // удаление отсутствующего безопасно
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SnapshotIsolation(t *testing.T) {
	r := New()
	r.Add(1)
	r.Add(2)

	snap := r.Snapshot()
	assert.Len(t, snap, 2)

	// изменения после снимка на него не влияют
	r.Add(3)
	r.Remove(1)
	assert.Len(t, snap, 2)
	assert.ElementsMatch(t, []int64{1, 2}, snap)
}
