package engine

import (
	"fmt"
	"time"

	"liferpg/internal/storage"
)

// LogCapacity bounds the activity log to the most recent entries. Older
// entries are discarded; the log does not outlive the session.
const LogCapacity = 4

// LogEntry is one line of the system log shown on the home screen.
type LogEntry struct {
	ID        string
	Timestamp int64 // epoch millis
	Message   string
	Impact    string
}

// ActivityLog is a bounded ring of recent actions, newest first.
type ActivityLog struct {
	entries []LogEntry
	cap     int
}

func NewActivityLog(capacity int) *ActivityLog {
	return &ActivityLog{cap: capacity}
}

// Record prepends an entry for one quest trigger and drops anything beyond
// the capacity.
func (l *ActivityLog) Record(id string, at time.Time, q storage.Quest) LogEntry {
	e := LogEntry{
		ID:        id,
		Timestamp: at.UnixMilli(),
		Message:   q.Title,
		Impact:    fmt.Sprintf("%+d HP", q.HPImpact),
	}
	l.entries = append([]LogEntry{e}, l.entries...)
	if len(l.entries) > l.cap {
		l.entries = l.entries[:l.cap]
	}
	return e
}

// Entries returns a copy of the log, newest first.
func (l *ActivityLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *ActivityLog) Clear() {
	l.entries = nil
}
