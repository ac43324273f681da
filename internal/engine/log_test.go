package engine

import (
	"fmt"
	"testing"
	"time"

	"liferpg/internal/storage"
)

func TestActivityLogBound(t *testing.T) {
	log := NewActivityLog(LogCapacity)
	at := time.Now()

	for i := 0; i < 6; i++ {
		q := storage.Quest{Title: fmt.Sprintf("QUEST %d", i), HPImpact: i}
		log.Record(fmt.Sprintf("id-%d", i), at, q)
	}

	entries := log.Entries()
	if len(entries) != LogCapacity {
		t.Fatalf("len=%d, want %d", len(entries), LogCapacity)
	}
	// Newest first: the last recorded quest leads.
	for i, want := range []string{"QUEST 5", "QUEST 4", "QUEST 3", "QUEST 2"} {
		if entries[i].Message != want {
			t.Fatalf("entries[%d].Message=%q, want %q", i, entries[i].Message, want)
		}
	}
}

func TestActivityLogImpactFormat(t *testing.T) {
	log := NewActivityLog(LogCapacity)
	at := time.Unix(1700000000, 0)

	cases := []struct {
		hp   int
		want string
	}{
		{2, "+2 HP"},
		{-5, "-5 HP"},
		{0, "+0 HP"},
	}
	for _, c := range cases {
		e := log.Record("id", at, storage.Quest{Title: "T", HPImpact: c.hp})
		if e.Impact != c.want {
			t.Fatalf("impact=%q, want %q", e.Impact, c.want)
		}
		if e.Timestamp != at.UnixMilli() {
			t.Fatalf("timestamp=%d, want %d", e.Timestamp, at.UnixMilli())
		}
	}
}

func TestActivityLogClear(t *testing.T) {
	log := NewActivityLog(LogCapacity)
	log.Record("id", time.Now(), storage.Quest{Title: "T"})
	log.Clear()
	if got := log.Entries(); len(got) != 0 {
		t.Fatalf("entries after clear: %d", len(got))
	}
}
