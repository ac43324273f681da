package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type HistoryRepo struct {
	db DBTX
}

func NewHistoryRepo(db DBTX) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Upsert records the snapshot for its date, overwriting any existing row so
// the snapshot always holds the latest state seen that day.
func (r *HistoryRepo) Upsert(ctx context.Context, snap DailySnapshot) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO history (date, hp, energy, xp)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			hp = excluded.hp,
			energy = excluded.energy,
			xp = excluded.xp
	`, snap.Date, snap.HP, snap.Energy, snap.XP)
	if err != nil {
		return fmt.Errorf("history upsert: %w", err)
	}
	return nil
}

// Get returns the snapshot for an exact date key, or nil when the day saw no
// activity.
func (r *HistoryRepo) Get(ctx context.Context, date string) (*DailySnapshot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT date, hp, energy, xp FROM history WHERE date = ?`, date)

	var s DailySnapshot
	if err := row.Scan(&s.Date, &s.HP, &s.Energy, &s.XP); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("history get: %w", err)
	}
	return &s, nil
}

func (r *HistoryRepo) ListAll(ctx context.Context) ([]DailySnapshot, error) {
	return r.list(ctx, `SELECT date, hp, energy, xp FROM history ORDER BY date ASC`)
}

// ListMonth returns snapshots whose date falls in the given month ("YYYY-MM").
func (r *HistoryRepo) ListMonth(ctx context.Context, month string) ([]DailySnapshot, error) {
	return r.list(ctx, `SELECT date, hp, energy, xp FROM history WHERE substr(date, 1, 7) = ? ORDER BY date ASC`, month)
}

func (r *HistoryRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("history count: %w", err)
	}
	return n, nil
}

func (r *HistoryRepo) list(ctx context.Context, query string, args ...any) ([]DailySnapshot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}
	defer rows.Close()

	var out []DailySnapshot
	for rows.Next() {
		var s DailySnapshot
		if err := rows.Scan(&s.Date, &s.HP, &s.Energy, &s.XP); err != nil {
			return nil, fmt.Errorf("history scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history rows: %w", err)
	}
	return out, nil
}
