package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"liferpg/internal/storage"
)

// Service owns the canonical game state: the quest catalog, the player's
// stats, the daily history and the session activity log. All operations are
// synchronous single-actor mutations.
type Service struct {
	db      *sql.DB
	quests  *storage.QuestRepo
	player  *storage.PlayerRepo
	history *storage.HistoryRepo

	log   *ActivityLog
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

// WithClock overrides the wall clock, so tests can pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDSource overrides id generation for deterministic tests.
func WithIDSource(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:      db,
		quests:  storage.NewQuestRepo(db),
		player:  storage.NewPlayerRepo(db),
		history: storage.NewHistoryRepo(db),
		log:     NewActivityLog(LogCapacity),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) QuestRepo() *storage.QuestRepo     { return s.quests }
func (s *Service) PlayerRepo() *storage.PlayerRepo   { return s.player }
func (s *Service) HistoryRepo() *storage.HistoryRepo { return s.history }
func (s *Service) Log() *ActivityLog                 { return s.log }

// DayKey formats t as the history key for the calendar day the user
// perceives: local time, never UTC-normalized.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// TriggerResult reports one quest trigger.
type TriggerResult struct {
	Quest  storage.Quest
	Before storage.PlayerStats
	After  storage.PlayerStats
	Entry  LogEntry
}

// TriggerQuest performs the quest: applies its deltas with clamping, commits
// the stats and upserts today's snapshot as one transaction, then records the
// activity log entry.
func (s *Service) TriggerQuest(ctx context.Context, id string) (*TriggerResult, error) {
	q, err := s.quests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}

	before, err := s.player.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	after := ApplyQuest(*before, *q)
	today := DayKey(s.now())

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.NewPlayerRepo(tx).Update(ctx, after); err != nil {
			return err
		}
		return storage.NewHistoryRepo(tx).Upsert(ctx, SnapshotOf(today, after))
	})
	if err != nil {
		return nil, err
	}

	entry := s.log.Record(s.newID(), s.now(), *q)
	return &TriggerResult{Quest: *q, Before: *before, After: after, Entry: entry}, nil
}

// Stats returns the current canonical stats, creating the seed record on
// first use.
func (s *Service) Stats(ctx context.Context) (storage.PlayerStats, error) {
	p, err := s.player.GetOrCreateMain(ctx)
	if err != nil {
		return storage.PlayerStats{}, err
	}
	return *p, nil
}

// DayStatus returns the snapshot for a date together with its derived status
// label. A day with no activity returns (nil, "", nil).
func (s *Service) DayStatus(ctx context.Context, date string) (*storage.DailySnapshot, string, error) {
	snap, err := s.history.Get(ctx, date)
	if err != nil {
		return nil, "", err
	}
	if snap == nil {
		return nil, "", nil
	}
	return snap, Classify(snap.HP, snap.XP, snap.Energy), nil
}

// ResetAll restores the catalog to the built-in seed list, stats to their
// seed values, empties the history and clears the session log. Irreversible;
// the CLI layer asks for confirmation.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := storage.Reset(ctx, s.db); err != nil {
		return err
	}
	s.log.Clear()
	return nil
}
