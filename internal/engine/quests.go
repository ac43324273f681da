package engine

import (
	"context"
	"database/sql"
	"strings"

	"liferpg/internal/storage"
)

// QuestInput carries the editable fields of a quest. Titles are stored
// uppercased, matching the built-in catalog.
type QuestInput struct {
	Title        string
	Icon         string
	HPImpact     int
	EnergyImpact int
	XPImpact     int
}

func (in QuestInput) normalize() (QuestInput, error) {
	in.Title = strings.ToUpper(strings.TrimSpace(in.Title))
	in.Icon = strings.TrimSpace(in.Icon)
	if in.Title == "" {
		return in, ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.Icon == "" {
		return in, ValidationError{Field: "icon", Reason: "must not be empty"}
	}
	return in, nil
}

// CreateQuest adds a user-defined quest at the end of the display order.
func (s *Service) CreateQuest(ctx context.Context, in QuestInput) (*storage.Quest, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	max, err := s.quests.MaxPosition(ctx)
	if err != nil {
		return nil, err
	}

	q := storage.Quest{
		ID:           s.newID(),
		Title:        in.Title,
		Icon:         in.Icon,
		HPImpact:     in.HPImpact,
		EnergyImpact: in.EnergyImpact,
		XPImpact:     in.XPImpact,
		IsCustom:     true,
		Position:     max + 1,
	}
	if err := s.quests.Insert(ctx, q); err != nil {
		return nil, err
	}
	return &q, nil
}

// UpdateQuest replaces every editable field of the quest at id. Identity and
// display position are preserved; an edited quest counts as custom.
func (s *Service) UpdateQuest(ctx context.Context, id string, in QuestInput) (*storage.Quest, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	cur, err := s.quests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}

	q := storage.Quest{
		ID:           cur.ID,
		Title:        in.Title,
		Icon:         in.Icon,
		HPImpact:     in.HPImpact,
		EnergyImpact: in.EnergyImpact,
		XPImpact:     in.XPImpact,
		IsCustom:     true,
		Position:     cur.Position,
	}
	if err := s.quests.Update(ctx, q); err != nil {
		return nil, err
	}
	return &q, nil
}

// DeleteQuest removes the quest by id. Deleting an unknown id is a no-op:
// delete is idempotent.
func (s *Service) DeleteQuest(ctx context.Context, id string) error {
	return s.quests.Delete(ctx, id)
}

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func ParseDirection(input string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(input))) {
	case DirectionUp:
		return DirectionUp, nil
	case DirectionDown:
		return DirectionDown, nil
	default:
		return "", ValidationError{Field: "direction", Reason: "must be up or down"}
	}
}

// MoveQuest swaps the quest at the display index with its neighbor in the
// given direction. Moving past either end of the list is a no-op.
func (s *Service) MoveQuest(ctx context.Context, index int, dir Direction) error {
	list, err := s.quests.ListAll(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(list) {
		return nil
	}

	target := index - 1
	if dir == DirectionDown {
		target = index + 1
	}
	if target < 0 || target >= len(list) {
		return nil
	}

	a, b := list[index], list[target]
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := storage.NewQuestRepo(tx)
		if err := repo.UpdatePosition(ctx, a.ID, b.Position); err != nil {
			return err
		}
		return repo.UpdatePosition(ctx, b.ID, a.Position)
	})
}

// Quests returns the catalog in display order.
func (s *Service) Quests(ctx context.Context) ([]storage.Quest, error) {
	return s.quests.ListAll(ctx)
}
