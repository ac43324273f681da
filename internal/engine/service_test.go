package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"liferpg/internal/storage"
)

func newTestService(t *testing.T, opts ...Option) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db, opts...)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func fixedClock(day string) func() time.Time {
	return func() time.Time {
		ts, _ := time.ParseInLocation("2006-01-02", day, time.Local)
		return ts
	}
}

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("test-id-%d", n)
	}
}

func TestTriggerQuestCommitsStatsAndSnapshot(t *testing.T) {
	svc, cleanup := newTestService(t, WithClock(fixedClock("2026-08-29")), WithIDSource(seqIDs()))
	defer cleanup()
	ctx := context.Background()

	res, err := svc.TriggerQuest(ctx, "workout")
	if err != nil {
		t.Fatalf("TriggerQuest: %v", err)
	}
	if res.After.Health != 10 || res.After.Energy != 8 || res.After.Experience != 0.5 {
		t.Fatalf("after=%+v, want {10 8 0.5}", res.After)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats != res.After {
		t.Fatalf("committed stats=%+v, want %+v", stats, res.After)
	}

	snap, err := svc.HistoryRepo().Get(ctx, "2026-08-29")
	if err != nil {
		t.Fatalf("history get: %v", err)
	}
	if snap == nil {
		t.Fatalf("expected snapshot for 2026-08-29")
	}
	if snap.HP != 10 || snap.Energy != 8 || snap.XP != 0 {
		t.Fatalf("snapshot=%+v, want hp 10 energy 8 xp 0", snap)
	}

	entries := svc.Log().Entries()
	if len(entries) != 1 {
		t.Fatalf("log entries=%d, want 1", len(entries))
	}
	if entries[0].Message != "EXERCISE" || entries[0].Impact != "+1 HP" {
		t.Fatalf("log entry=%+v", entries[0])
	}
}

func TestUpsertTodayIdempotent(t *testing.T) {
	svc, cleanup := newTestService(t, WithClock(fixedClock("2026-08-29")))
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.TriggerQuest(ctx, "eat-well"); err != nil {
		t.Fatalf("first trigger: %v", err)
	}
	if _, err := svc.TriggerQuest(ctx, "stay-up"); err != nil {
		t.Fatalf("second trigger: %v", err)
	}

	n, err := svc.HistoryRepo().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("history count=%d, want 1", n)
	}

	// The single snapshot holds the latest values, not the first seen.
	snap, err := svc.HistoryRepo().Get(ctx, "2026-08-29")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap.HP != 5 {
		t.Fatalf("snapshot hp=%d, want 5", snap.HP)
	}
}

func TestSnapshotPerDay(t *testing.T) {
	day := "2026-08-29"
	clock := func() time.Time {
		ts, _ := time.ParseInLocation("2006-01-02", day, time.Local)
		return ts
	}
	svc, cleanup := newTestService(t, WithClock(clock))
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.TriggerQuest(ctx, "reading"); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	day = "2026-08-30"
	if _, err := svc.TriggerQuest(ctx, "reading"); err != nil {
		t.Fatalf("trigger: %v", err)
	}

	n, err := svc.HistoryRepo().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("history count=%d, want 2", n)
	}
}

func TestTriggerQuestUnknown(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.TriggerQuest(context.Background(), "nope")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
}

func TestCreateQuestValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	before, err := svc.Quests(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	_, err = svc.CreateQuest(ctx, QuestInput{Title: "  ", Icon: "⭐"})
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err=%v, want ValidationError", err)
	}

	_, err = svc.CreateQuest(ctx, QuestInput{Title: "STRETCH", Icon: ""})
	if !errors.As(err, &ve) {
		t.Fatalf("err=%v, want ValidationError", err)
	}

	// Rejected creates leave the catalog untouched.
	after, err := svc.Quests(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("catalog size changed: %d → %d", len(before), len(after))
	}
}

func TestCreateQuestAppendsCustom(t *testing.T) {
	svc, cleanup := newTestService(t, WithIDSource(seqIDs()))
	defer cleanup()
	ctx := context.Background()

	q, err := svc.CreateQuest(ctx, QuestInput{Title: "stretch", Icon: "🧘", HPImpact: 1, XPImpact: 3})
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}
	if q.ID != "test-id-1" {
		t.Fatalf("id=%q", q.ID)
	}
	if q.Title != "STRETCH" {
		t.Fatalf("title=%q, want STRETCH", q.Title)
	}
	if !q.IsCustom {
		t.Fatalf("expected custom quest")
	}

	list, err := svc.Quests(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[len(list)-1].ID != q.ID {
		t.Fatalf("new quest not last in display order")
	}
}

func TestUpdateQuestNotFound(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.UpdateQuest(context.Background(), "missing", QuestInput{Title: "X", Icon: "⭐"})
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
}

func TestUpdateQuestKeepsIdentityAndPosition(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	q, err := svc.UpdateQuest(ctx, "eat-well", QuestInput{Title: "feast", Icon: "🍱", HPImpact: 3, EnergyImpact: 3})
	if err != nil {
		t.Fatalf("UpdateQuest: %v", err)
	}
	if q.ID != "eat-well" {
		t.Fatalf("id changed: %q", q.ID)
	}
	if q.Position != 1 {
		t.Fatalf("position=%d, want 1", q.Position)
	}
	if q.Title != "FEAST" || q.HPImpact != 3 {
		t.Fatalf("fields not replaced: %+v", q)
	}
}

func TestDeleteQuestIdempotent(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if err := svc.DeleteQuest(ctx, "stay-up"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteQuest(ctx, "stay-up"); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}

	list, err := svc.Quests(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != len(storage.SeedQuests)-1 {
		t.Fatalf("catalog size=%d, want %d", len(list), len(storage.SeedQuests)-1)
	}
}

func TestMoveQuest(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	ids := func() []string {
		list, err := svc.Quests(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		out := make([]string, len(list))
		for i, q := range list {
			out[i] = q.ID
		}
		return out
	}

	initial := ids()

	// Boundary moves are no-ops.
	if err := svc.MoveQuest(ctx, 0, DirectionUp); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := svc.MoveQuest(ctx, len(initial)-1, DirectionDown); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := svc.MoveQuest(ctx, len(initial), DirectionUp); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := ids(); fmt.Sprint(got) != fmt.Sprint(initial) {
		t.Fatalf("order changed by boundary move: %v", got)
	}

	if err := svc.MoveQuest(ctx, 1, DirectionUp); err != nil {
		t.Fatalf("move: %v", err)
	}
	got := ids()
	if got[0] != initial[1] || got[1] != initial[0] {
		t.Fatalf("swap failed: %v", got)
	}
}

func TestResetAll(t *testing.T) {
	svc, cleanup := newTestService(t, WithClock(fixedClock("2026-08-29")))
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.CreateQuest(ctx, QuestInput{Title: "EXTRA", Icon: "⭐"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.TriggerQuest(ctx, "stay-up"); err != nil {
		t.Fatalf("trigger: %v", err)
	}

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	list, err := svc.Quests(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != len(storage.SeedQuests) {
		t.Fatalf("catalog size=%d, want %d", len(list), len(storage.SeedQuests))
	}
	for i, q := range list {
		if q.ID != storage.SeedQuests[i].ID {
			t.Fatalf("catalog[%d]=%q, want %q", i, q.ID, storage.SeedQuests[i].ID)
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats != storage.SeedStats {
		t.Fatalf("stats=%+v, want %+v", stats, storage.SeedStats)
	}

	n, err := svc.HistoryRepo().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("history count=%d, want 0", n)
	}

	if got := svc.Log().Entries(); len(got) != 0 {
		t.Fatalf("log not cleared: %d entries", len(got))
	}
}

func TestDayStatus(t *testing.T) {
	svc, cleanup := newTestService(t, WithClock(fixedClock("2026-08-29")))
	defer cleanup()
	ctx := context.Background()

	snap, label, err := svc.DayStatus(ctx, "2026-08-29")
	if err != nil {
		t.Fatalf("DayStatus: %v", err)
	}
	if snap != nil || label != "" {
		t.Fatalf("expected absent day, got %+v %q", snap, label)
	}

	if _, err := svc.TriggerQuest(ctx, "eat-well"); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	snap, label, err = svc.DayStatus(ctx, "2026-08-29")
	if err != nil {
		t.Fatalf("DayStatus: %v", err)
	}
	if snap == nil {
		t.Fatalf("expected snapshot")
	}
	// hp 10, xp 0, energy 10 → energetic + meditation.
	if label != "energetic, meditation" {
		t.Fatalf("label=%q", label)
	}
}
