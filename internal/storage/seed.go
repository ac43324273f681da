package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedQuests is the built-in catalog the app ships with and returns to on a
// full reset.
var SeedQuests = []Quest{
	{ID: "stay-up", Title: "STAY UP", Icon: "🌙", HPImpact: -5, EnergyImpact: 0, XPImpact: 0},
	{ID: "eat-well", Title: "EAT WELL", Icon: "🍗", HPImpact: 2, EnergyImpact: 2, XPImpact: 0},
	{ID: "workout", Title: "EXERCISE", Icon: "🏃", HPImpact: 1, EnergyImpact: -2, XPImpact: 5},
	{ID: "reading", Title: "READING", Icon: "📖", HPImpact: 0, EnergyImpact: -1, XPImpact: 10},
}

// EnsureSeed inserts the built-in quests when the catalog is empty. Existing
// catalogs (including ones where every built-in was deleted by hand after
// custom quests were added) are left alone.
func EnsureSeed(ctx context.Context, db *sql.DB) error {
	row := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quests`)
	var n int
	if err := row.Scan(&n); err != nil {
		return fmt.Errorf("seed count: %w", err)
	}
	if n > 0 {
		return nil
	}

	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := NewQuestRepo(tx)
		for i, q := range SeedQuests {
			q.Position = i
			if err := repo.Insert(ctx, q); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset wipes all three records and reseeds the catalog and stats. History is
// emptied, not reseeded.
func Reset(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM quests`,
			`DELETE FROM history`,
			`DELETE FROM player`,
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
		}

		repo := NewQuestRepo(tx)
		for i, q := range SeedQuests {
			q.Position = i
			if err := repo.Insert(ctx, q); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO player (key, health, energy, experience) VALUES (?, ?, ?, ?)
		`, MainPlayerKey, SeedStats.Health, SeedStats.Energy, SeedStats.Experience); err != nil {
			return fmt.Errorf("reset player: %w", err)
		}
		return nil
	})
}
