package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *HistoryRepo {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewHistoryRepo(db)
}

func TestHistoryUpsertOverwrites(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, DailySnapshot{Date: "2026-08-29", HP: 10, Energy: 10, XP: 0}))
	require.NoError(t, repo.Upsert(ctx, DailySnapshot{Date: "2026-08-29", HP: 5, Energy: 8, XP: 1}))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	snap, err := repo.Get(ctx, "2026-08-29")
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, DailySnapshot{Date: "2026-08-29", HP: 5, Energy: 8, XP: 1}, *snap)
}

func TestHistoryGetAbsent(t *testing.T) {
	repo := newTestDB(t)

	snap, err := repo.Get(context.Background(), "1999-01-01")
	require.NoError(t, err)
	require.Nil(t, snap)
}

func TestHistoryListMonth(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	for _, date := range []string{"2026-07-31", "2026-08-01", "2026-08-15", "2026-09-01"} {
		require.NoError(t, repo.Upsert(ctx, DailySnapshot{Date: date, HP: 5, Energy: 5, XP: 0}))
	}

	month, err := repo.ListMonth(ctx, "2026-08")
	require.NoError(t, err)
	require.Len(t, month, 2)
	require.Equal(t, "2026-08-01", month[0].Date)
	require.Equal(t, "2026-08-15", month[1].Date)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "2026-07-31", all[0].Date)
}
