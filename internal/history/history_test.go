package history

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/edgedeck/edgedeck/internal/storage"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	st, err := storage.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	return New(st)
}

func TestLogPrependsNewestFirst(t *testing.T) {
	l := newTestLogger(t)

	l.Log(Item{Type: "dns", Action: "create", Description: "first", Status: "success"})
	l.Log(Item{Type: "dns", Action: "delete", Description: "second", Status: "success"})
	l.Log(Item{Type: "kv", Action: "write", Description: "third", Status: "error"})

	items := l.All()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Description != "third" || items[2].Description != "first" {
		t.Errorf("expected newest-first ordering, got %s .. %s", items[0].Description, items[2].Description)
	}
	if items[0].ID == "" || items[0].Timestamp == "" {
		t.Error("log must stamp id and timestamp")
	}
}

func TestLogEnforcesCapacity(t *testing.T) {
	l := newTestLogger(t)

	for i := 0; i < MaxItems+5; i++ {
		l.Log(Item{Type: "dns", Action: "create", Description: fmt.Sprintf("op-%d", i), Status: "success"})
	}

	items := l.All()
	if len(items) != MaxItems {
		t.Fatalf("expected exactly %d items, got %d", MaxItems, len(items))
	}
	if items[0].Description != fmt.Sprintf("op-%d", MaxItems+4) {
		t.Errorf("newest entry missing, got %s", items[0].Description)
	}
	// The five oldest entries were evicted.
	for _, item := range items {
		for i := 0; i < 5; i++ {
			if item.Description == fmt.Sprintf("op-%d", i) {
				t.Errorf("entry %s should have been evicted", item.Description)
			}
		}
	}
}

func TestAllIsReadOnly(t *testing.T) {
	l := newTestLogger(t)
	l.Log(Item{Type: "dns", Action: "create", Status: "success"})

	before := len(l.All())
	l.All()
	l.All()
	if got := len(l.All()); got != before {
		t.Errorf("repeated reads changed the collection: %d -> %d", before, got)
	}
}

func TestByType(t *testing.T) {
	l := newTestLogger(t)
	l.Log(Item{Type: "dns", Action: "create", Status: "success"})
	l.Log(Item{Type: "firewall", Action: "create", Status: "success"})
	l.Log(Item{Type: "dns", Action: "delete", Status: "error"})

	dns := l.ByType("dns")
	if len(dns) != 2 {
		t.Fatalf("expected 2 dns entries, got %d", len(dns))
	}
	for _, item := range dns {
		if item.Type != "dns" {
			t.Errorf("wrong type in filtered result: %s", item.Type)
		}
	}
	if got := l.ByType("workers"); len(got) != 0 {
		t.Errorf("expected no workers entries, got %d", len(got))
	}
}

func TestByRange(t *testing.T) {
	l := newTestLogger(t)
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	logAt := func(when time.Time, desc string) {
		l.now = func() time.Time { return when }
		l.Log(Item{Type: "dns", Action: "create", Description: desc, Status: "success"})
	}
	logAt(t0.Add(-2*time.Hour), "recent")
	logAt(t0.Add(-3*24*time.Hour), "this-week")
	logAt(t0.Add(-10*24*time.Hour), "this-month")
	logAt(t0.Add(-40*24*time.Hour), "ancient")

	l.now = func() time.Time { return t0 }

	if got := l.ByRange(RangeDay); len(got) != 1 || got[0].Description != "recent" {
		t.Errorf("24h window wrong: %+v", got)
	}
	if got := l.ByRange(RangeWeek); len(got) != 2 {
		t.Errorf("expected 2 entries in 7d window, got %d", len(got))
	}
	if got := l.ByRange(RangeMonth); len(got) != 3 {
		t.Errorf("expected 3 entries in 30d window, got %d", len(got))
	}
	if got := l.ByRange(RangeAll); len(got) != 4 {
		t.Errorf("expected all 4 entries, got %d", len(got))
	}
	// An unknown range degrades to the full collection.
	if got := l.ByRange(Range("bogus")); len(got) != 4 {
		t.Errorf("unknown range should return everything, got %d", len(got))
	}
}

func TestClear(t *testing.T) {
	l := newTestLogger(t)
	l.Log(Item{Type: "dns", Action: "create", Status: "success"})

	l.Clear()

	if got := l.All(); len(got) != 0 {
		t.Errorf("expected empty log after clear, got %d items", len(got))
	}

	// Logging still works after clearing.
	l.Log(Item{Type: "kv", Action: "write", Status: "success"})
	if got := l.All(); len(got) != 1 {
		t.Errorf("expected 1 item after re-log, got %d", len(got))
	}
}

func TestCorruptStorageDegradesToEmpty(t *testing.T) {
	st, err := storage.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	st.Put(storage.KeyOperationHistory, `{not json`)

	l := New(st)
	if got := l.All(); len(got) != 0 {
		t.Errorf("corrupt history should read as empty, got %d items", len(got))
	}

	// Logging on top of corrupt state starts a fresh collection.
	l.Log(Item{Type: "dns", Action: "create", Status: "success"})
	if got := l.All(); len(got) != 1 {
		t.Errorf("expected fresh collection of 1, got %d", len(got))
	}
}

func TestUserSourceFillsEmptyUser(t *testing.T) {
	l := newTestLogger(t)
	l.SetUserSource(func() string { return "Production" })

	l.Log(Item{Type: "dns", Action: "create", Status: "success"})
	l.Log(Item{Type: "dns", Action: "delete", Status: "success", User: "ops-script"})

	items := l.All()
	if items[1].User != "Production" {
		t.Errorf("empty user should come from the source, got %q", items[1].User)
	}
	if items[0].User != "ops-script" {
		t.Errorf("explicit user must be kept, got %q", items[0].User)
	}
}

func TestIDsDistinctWithinMillisecond(t *testing.T) {
	l := newTestLogger(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	l.Log(Item{Type: "dns", Action: "create", Status: "success"})
	l.Log(Item{Type: "dns", Action: "create", Status: "success"})

	items := l.All()
	if items[0].ID == items[1].ID {
		t.Errorf("ids must be distinct even at identical timestamps: %s", items[0].ID)
	}
}
