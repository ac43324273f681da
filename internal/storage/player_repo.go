package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainPlayerKey = "main_user"

// Stats the player starts with, and returns to on a full reset.
var SeedStats = PlayerStats{Health: 10, Energy: 10, Experience: 0}

type PlayerRepo struct {
	db DBTX
}

func NewPlayerRepo(db DBTX) *PlayerRepo {
	return &PlayerRepo{db: db}
}

func (r *PlayerRepo) Get(ctx context.Context, key string) (*PlayerStats, error) {
	row := r.db.QueryRowContext(ctx, `SELECT health, energy, experience FROM player WHERE key = ?`, key)

	var s PlayerStats
	if err := row.Scan(&s.Health, &s.Energy, &s.Experience); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("player get: %w", err)
	}
	return &s, nil
}

func (r *PlayerRepo) GetOrCreateMain(ctx context.Context) (*PlayerStats, error) {
	s, err := r.Get(ctx, MainPlayerKey)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO player (key, health, energy, experience) VALUES (?, ?, ?, ?)
	`, MainPlayerKey, SeedStats.Health, SeedStats.Energy, SeedStats.Experience); err != nil {
		return nil, fmt.Errorf("player insert: %w", err)
	}
	return r.Get(ctx, MainPlayerKey)
}

func (r *PlayerRepo) Update(ctx context.Context, s PlayerStats) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE player
		SET health = ?, energy = ?, experience = ?
		WHERE key = ?
	`, s.Health, s.Energy, s.Experience, MainPlayerKey)
	if err != nil {
		return fmt.Errorf("player update: %w", err)
	}
	return nil
}
