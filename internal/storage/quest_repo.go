package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type QuestRepo struct {
	db DBTX
}

func NewQuestRepo(db DBTX) *QuestRepo {
	return &QuestRepo{db: db}
}

func (r *QuestRepo) Insert(ctx context.Context, q Quest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quests (id, title, icon, hp_impact, energy_impact, xp_impact, is_custom, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.Title, q.Icon, q.HPImpact, q.EnergyImpact, q.XPImpact, boolToInt(q.IsCustom), q.Position)
	if err != nil {
		return fmt.Errorf("quest insert: %w", err)
	}
	return nil
}

func (r *QuestRepo) Get(ctx context.Context, id string) (*Quest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, icon, hp_impact, energy_impact, xp_impact, is_custom, position
		FROM quests
		WHERE id = ?
	`, id)

	var q Quest
	var custom int
	if err := row.Scan(&q.ID, &q.Title, &q.Icon, &q.HPImpact, &q.EnergyImpact, &q.XPImpact, &custom, &q.Position); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("quest get: %w", err)
	}
	q.IsCustom = custom != 0
	return &q, nil
}

// ListAll returns the catalog in display order.
func (r *QuestRepo) ListAll(ctx context.Context) ([]Quest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, icon, hp_impact, energy_impact, xp_impact, is_custom, position
		FROM quests
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []Quest
	for rows.Next() {
		var q Quest
		var custom int
		if err := rows.Scan(&q.ID, &q.Title, &q.Icon, &q.HPImpact, &q.EnergyImpact, &q.XPImpact, &custom, &q.Position); err != nil {
			return nil, fmt.Errorf("quest scan: %w", err)
		}
		q.IsCustom = custom != 0
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest rows: %w", err)
	}
	return out, nil
}

// Update replaces every field of the quest at id; identity and position are
// controlled by the caller.
func (r *QuestRepo) Update(ctx context.Context, q Quest) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE quests
		SET title = ?, icon = ?, hp_impact = ?, energy_impact = ?, xp_impact = ?, is_custom = ?, position = ?
		WHERE id = ?
	`, q.Title, q.Icon, q.HPImpact, q.EnergyImpact, q.XPImpact, boolToInt(q.IsCustom), q.Position, q.ID)
	if err != nil {
		return fmt.Errorf("quest update: %w", err)
	}
	return nil
}

// Delete removes the quest by id. Deleting an absent id is not an error.
func (r *QuestRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quests WHERE id = ?`, id); err != nil {
		return fmt.Errorf("quest delete: %w", err)
	}
	return nil
}

func (r *QuestRepo) UpdatePosition(ctx context.Context, id string, position int) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE quests SET position = ? WHERE id = ?`, position, id); err != nil {
		return fmt.Errorf("quest position update: %w", err)
	}
	return nil
}

// MaxPosition returns the highest display position, or -1 for an empty catalog.
func (r *QuestRepo) MaxPosition(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) FROM quests`)
	var max int
	if err := row.Scan(&max); err != nil {
		return 0, fmt.Errorf("quest max position: %w", err)
	}
	return max, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
