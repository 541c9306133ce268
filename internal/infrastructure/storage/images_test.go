package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lifeboard/backend/domain"
)

func newTestStore(t *testing.T) (*ImageStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewImageStore(dir, filepath.Join(dir, "hero.jpg"), 1024)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, dir
}

func TestSaveReturnsStoredPath(t *testing.T) {
	store, dir := newTestStore(t)

	path, err := store.Save("crib.PNG", []byte("fake image bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(path, "/uploads/") || !strings.HasSuffix(path, ".png") {
		t.Fatalf("stored path = %q", path)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(data, []byte("fake image bytes")) {
		t.Error("stored bytes differ from input")
	}
}

func TestSaveRejectsBadInput(t *testing.T) {
	store, _ := newTestStore(t)

	cases := []struct {
		name string
		file string
		data []byte
	}{
		{"empty body", "a.png", nil},
		{"oversized", "a.png", bytes.Repeat([]byte("x"), 2048)},
		{"bad extension", "a.exe", []byte("data")},
		{"no extension", "a", []byte("data")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := store.Save(tc.file, tc.data); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Fatalf("expected INVALID domain error, got %v", err)
			}
		})
	}
}

func TestSaveHeroReplacesInPlace(t *testing.T) {
	store, dir := newTestStore(t)

	if err := store.SaveHero([]byte("first")); err != nil {
		t.Fatalf("save hero: %v", err)
	}
	if err := store.SaveHero([]byte("second")); err != nil {
		t.Fatalf("replace hero: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "hero.jpg"))
	if err != nil {
		t.Fatalf("read hero: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("hero content = %q, want second", data)
	}
}

func TestRemove(t *testing.T) {
	store, dir := newTestStore(t)

	path, err := store.Save("a.jpg", []byte("data"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.Base(path))); !os.IsNotExist(err) {
		t.Error("file still present after remove")
	}

	// Missing files are not an error.
	if err := store.Remove("/uploads/gone.png"); err != nil {
		t.Errorf("remove of missing file: %v", err)
	}
	if err := store.Remove(""); err != nil {
		t.Errorf("remove of empty path: %v", err)
	}
}
