// Package history is the bounded audit trail of user-triggered operations.
// It is decoupled from the request pipeline: callers log here explicitly
// after an operation settles. Logging is best-effort and never fails the
// caller.
package history

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/edgedeck/edgedeck/internal/storage"
)

// MaxItems is the fixed capacity of the log; insertion beyond it evicts the
// oldest entries.
const MaxItems = 100

// Range selects a wall-clock window for ByRange.
type Range string

const (
	RangeDay   Range = "24h"
	RangeWeek  Range = "7d"
	RangeMonth Range = "30d"
	RangeAll   Range = "all"
)

var rangeDurations = map[Range]time.Duration{
	RangeDay:   24 * time.Hour,
	RangeWeek:  7 * 24 * time.Hour,
	RangeMonth: 30 * 24 * time.Hour,
}

// Item is one immutable log entry.
type Item struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Action      string `json:"action"`
	Description string `json:"description"`
	Status      string `json:"status"` // "success" or "error"
	Timestamp   string `json:"timestamp"`
	User        string `json:"user,omitempty"`
}

// Logger owns the persisted, newest-first item collection.
type Logger struct {
	mu      sync.Mutex
	storage *storage.Store
	now     func() time.Time // test hook
	user    func() string
}

// New creates a logger backed by st.
func New(st *storage.Store) *Logger {
	return &Logger{storage: st, now: time.Now}
}

// SetUserSource attaches a callback that names the acting user at log time,
// typically the active account's alias. Entries that already carry a user
// keep it.
func (l *Logger) SetUserSource(f func() string) {
	l.mu.Lock()
	l.user = f
	l.mu.Unlock()
}

// Log stamps id and timestamp on the entry, prepends it, truncates the
// collection to MaxItems and persists. Persistence failures are swallowed
// and logged; the caller is never failed.
func (l *Logger) Log(item Item) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item.ID = newID(l.now())
	item.Timestamp = l.now().UTC().Format(time.RFC3339)
	if item.User == "" && l.user != nil {
		item.User = l.user()
	}

	items := l.loadLocked()
	items = append([]Item{item}, items...)
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	l.saveLocked(items)
}

// All returns the full collection, newest first. Corrupt or absent storage
// yields an empty slice.
func (l *Logger) All() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadLocked()
}

// ByType filters All() down to entries of one operation type.
func (l *Logger) ByType(t string) []Item {
	out := []Item{}
	for _, item := range l.All() {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

// ByRange filters All() down to entries whose timestamp falls inside the
// window, measured against wall-clock time at call time.
func (l *Logger) ByRange(r Range) []Item {
	items := l.All()
	if r == RangeAll {
		return items
	}
	window, ok := rangeDurations[r]
	if !ok {
		return items
	}

	now := l.now()
	out := []Item{}
	for _, item := range items {
		ts, err := time.Parse(time.RFC3339, item.Timestamp)
		if err != nil {
			continue
		}
		if now.Sub(ts) <= window {
			out = append(out, item)
		}
	}
	return out
}

// Clear empties the persisted collection.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.storage.Delete(storage.KeyOperationHistory); err != nil {
		log.Printf("⚠️ history: failed to clear: %v", err)
	}
}

func (l *Logger) loadLocked() []Item {
	raw, ok := l.storage.Get(storage.KeyOperationHistory)
	if !ok {
		return []Item{}
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("⚠️ history: failed to decode persisted history: %v", err)
		return []Item{}
	}
	return items
}

func (l *Logger) saveLocked(items []Item) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("⚠️ history: failed to serialize: %v", err)
		return
	}
	if err := l.storage.Put(storage.KeyOperationHistory, string(data)); err != nil {
		log.Printf("⚠️ history: failed to persist: %v", err)
	}
}

// newID combines milliseconds with a random suffix so two entries logged in
// the same millisecond still get distinct ids.
func newID(t time.Time) string {
	b := make([]byte, 4)
	rand.Read(b)
	return strconv.FormatInt(t.UnixMilli(), 10) + hex.EncodeToString(b)
}
