package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Single-row stat record; experience is REAL because quest XP
		// accrues in tenths of a point.
		`CREATE TABLE IF NOT EXISTS player (
			key TEXT PRIMARY KEY,
			health INTEGER NOT NULL DEFAULT 10,
			energy INTEGER NOT NULL DEFAULT 10,
			experience REAL NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			icon TEXT NOT NULL,
			hp_impact INTEGER NOT NULL DEFAULT 0,
			energy_impact INTEGER NOT NULL DEFAULT 0,
			xp_impact INTEGER NOT NULL DEFAULT 0,
			is_custom INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL
		);`,
		// One snapshot per local calendar day, keyed by YYYY-MM-DD.
		`CREATE TABLE IF NOT EXISTS history (
			date TEXT PRIMARY KEY,
			hp INTEGER NOT NULL,
			energy INTEGER NOT NULL,
			xp INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_position ON quests(position);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
