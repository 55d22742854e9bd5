package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/s1edev/trackerFeel/pkg/models"
)

// SaveEntry сохраняет новую запись и возвращает её id.
// Записи неизменяемые: update/delete отсутствуют намеренно.
func (db *DB) SaveEntry(ctx context.Context, userID int64, mood, text string, createdAt time.Time) (int64, error) {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO mood_entries (user_id, mood, text, created_at) VALUES (?, ?, ?, ?)`,
		userID, mood, text, createdAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить запись: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("не удалось получить id записи: %w", err)
	}
	return id, nil
}

// EntriesByWindow возвращает записи пользователя в окне [start, end]
// по убыванию времени. Границы — UTC.
func (db *DB) EntriesByWindow(ctx context.Context, userID int64, start, end time.Time) ([]models.MoodEntry, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, mood, text, created_at
		   FROM mood_entries
		  WHERE user_id = ? AND created_at >= ? AND created_at <= ?
		  ORDER BY created_at DESC`,
		userID, start.UTC(), end.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("не удалось выбрать записи за период: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// RecentEntries возвращает до limit последних записей пользователя,
// исключая запись excludeID (0 — не исключать). Для контекста анализа.
func (db *DB) RecentEntries(ctx context.Context, userID int64, limit int, excludeID int64) ([]models.MoodEntry, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, mood, text, created_at
		   FROM mood_entries
		  WHERE user_id = ? AND id != ?
		  ORDER BY created_at DESC
		  LIMIT ?`,
		userID, excludeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("не удалось выбрать последние записи: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// LatestEntries возвращает до limit последних записей для графика.
func (db *DB) LatestEntries(ctx context.Context, userID int64, limit int) ([]models.MoodEntry, error) {
	return db.RecentEntries(ctx, userID, limit, 0)
}

func scanEntries(rows *sql.Rows) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	for rows.Next() {
		var e models.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &e.Text, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("не удалось прочитать запись: %w", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения записей: %w", err)
	}
	return entries, nil
}
