package journal

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecentOrdering(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	triggers := []string{"morning", "evening", "morning"}
	for i, trigger := range triggers {
		err := store.Append(Entry{
			Trigger: trigger,
			OK:      i != 1,
			SentAt:  base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Newest first.
	for i := 1; i < len(entries); i++ {
		if entries[i].SentAt.After(entries[i-1].SentAt) {
			t.Fatalf("entries out of order: %v before %v", entries[i-1].SentAt, entries[i].SentAt)
		}
	}
	if entries[0].Trigger != "morning" || entries[0].SentAt.UnixNano() != base.Add(2*time.Hour).UnixNano() {
		t.Errorf("unexpected newest entry: %+v", entries[0])
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := store.Append(Entry{Trigger: "morning", OK: true, SentAt: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := store.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestAppendFillsDefaults(t *testing.T) {
	store := openTestStore(t)

	if err := store.Append(Entry{Trigger: "evening", OK: false, Error: "delivery failed"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := store.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID == "" {
		t.Error("expected generated id")
	}
	if entries[0].SentAt.IsZero() {
		t.Error("expected sent_at to be filled")
	}
	if entries[0].Error != "delivery failed" {
		t.Errorf("error text = %q", entries[0].Error)
	}
}

func TestSize(t *testing.T) {
	store := openTestStore(t)

	if n, err := store.Size(); err != nil || n != 0 {
		t.Fatalf("empty size = %d, %v", n, err)
	}
	for i := 0; i < 4; i++ {
		if err := store.Append(Entry{Trigger: "morning", OK: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if n, err := store.Size(); err != nil || n != 4 {
		t.Fatalf("size = %d, %v, want 4", n, err)
	}
}

func TestClosedStoreErrors(t *testing.T) {
	var store *Store
	if err := store.Append(Entry{}); err == nil {
		t.Error("nil store append should error")
	}
	if _, err := store.Recent(1); err == nil {
		t.Error("nil store recent should error")
	}
	if err := store.Close(); err != nil {
		t.Errorf("nil store close should be a no-op, got %v", err)
	}
}
