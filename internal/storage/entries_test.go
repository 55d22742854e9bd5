package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s1edev/trackerFeel/pkg/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSaveEntry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	id, err := db.SaveEntry(ctx, 100, models.MoodGreat, "отличный день в парке", created)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	entries, err := db.RecentEntries(ctx, 100, 7, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID)
	assert.Equal(t, models.MoodGreat, entries[0].Mood)
	assert.Equal(t, "отличный день в парке", entries[0].Text)
	assert.True(t, entries[0].CreatedAt.Equal(created))
}

func TestRecentEntries_ExcludeAndOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	var ids []int64
	for i := 0; i < 10; i++ {
		id, err := db.SaveEntry(ctx, 100, models.MoodGood, "день", base.Add(time.Duration(i)*24*time.Hour))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	// чужие записи не попадают в выборку
	_, err := db.SaveEntry(ctx, 200, models.MoodBad, "чужой день", base)
	require.NoError(t, err)

	last := ids[len(ids)-1]
	entries, err := db.RecentEntries(ctx, 100, 7, last)
	require.NoError(t, err)

	require.Len(t, entries, 7)
	for _, e := range entries {
		assert.NotEqual(t, last, e.ID, "исключённая запись не возвращается")
		assert.Equal(t, int64(100), e.UserID)
	}
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i].CreatedAt.Before(entries[i-1].CreatedAt), "порядок по убыванию времени")
	}
}

func TestEntriesByWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	inside := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	before := time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)
	after := time.Date(2026, 2, 21, 10, 0, 0, 0, time.UTC)
	for _, ts := range []time.Time{inside, before, after} {
		_, err := db.SaveEntry(ctx, 100, models.MoodNormal, "день", ts)
		require.NoError(t, err)
	}

	// окно суток 2026-02-20 в UTC+5
	start := time.Date(2026, 2, 19, 19, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 20, 18, 59, 59, 999999000, time.UTC)

	entries, err := db.EntriesByWindow(ctx, 100, start, end)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].CreatedAt.Equal(inside))
}

func TestEntriesByWindow_EmptyDay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	entries, err := db.EntriesByWindow(ctx, 100,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC))

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesByWindow_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	ts := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	_, err := db.SaveEntry(ctx, 100, models.MoodGood, "день", ts)
	require.NoError(t, err)

	start, end := ts.Add(-time.Hour), ts.Add(time.Hour)
	first, err := db.EntriesByWindow(ctx, 100, start, end)
	require.NoError(t, err)
	second, err := db.EntriesByWindow(ctx, 100, start, end)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLatestEntries_Limit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 35; i++ {
		_, err := db.SaveEntry(ctx, 100, models.MoodGood, "день", base.Add(time.Duration(i)*24*time.Hour))
		require.NoError(t, err)
	}

	entries, err := db.LatestEntries(ctx, 100, 30)
	require.NoError(t, err)
	assert.Len(t, entries, 30)
}
