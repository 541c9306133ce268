package note

import (
	"context"
	"errors"
	"testing"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type stubNotes struct {
	notes    []domain.Note
	listErr  error
	listHits int
}

func (s *stubNotes) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	return nil, domain.ErrNoteNotFound
}

func (s *stubNotes) List(ctx context.Context, filter repository.NoteFilter) ([]domain.Note, error) {
	s.listHits++
	return s.notes, s.listErr
}

func (s *stubNotes) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	return n, nil
}

func (s *stubNotes) Update(ctx context.Context, n *domain.Note) error { return nil }
func (s *stubNotes) Delete(ctx context.Context, id string) error      { return nil }

type stubCache struct {
	hit         []domain.Note
	getErr      error
	setErr      error
	sets        int
	invalidated int
}

func (c *stubCache) Get(ctx context.Context, filter repository.NoteFilter) ([]domain.Note, error) {
	return c.hit, c.getErr
}

func (c *stubCache) Set(ctx context.Context, filter repository.NoteFilter, notes []domain.Note) error {
	c.sets++
	return c.setErr
}

func (c *stubCache) Invalidate(ctx context.Context) error {
	c.invalidated++
	return nil
}

func TestListNotesCacheHitSkipsRepository(t *testing.T) {
	repo := &stubNotes{}
	cache := &stubCache{hit: []domain.Note{{ID: "n1", Title: "Names"}}}
	uc := New(repo, cache, nil)

	notes, err := uc.ListNotes(context.Background(), repository.NoteFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != "n1" {
		t.Fatalf("unexpected notes: %v", notes)
	}
	if repo.listHits != 0 {
		t.Errorf("repository consulted on cache hit")
	}
}

func TestListNotesCacheMissFillsCache(t *testing.T) {
	repo := &stubNotes{notes: []domain.Note{{ID: "n1", Title: "Names"}}}
	cache := &stubCache{}
	uc := New(repo, cache, nil)

	if _, err := uc.ListNotes(context.Background(), repository.NoteFilter{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.listHits != 1 {
		t.Errorf("expected one repository hit, got %d", repo.listHits)
	}
	if cache.sets != 1 {
		t.Errorf("expected cache fill, got %d sets", cache.sets)
	}
}

func TestListNotesDegradesOnCacheError(t *testing.T) {
	repo := &stubNotes{notes: []domain.Note{{ID: "n1", Title: "Names"}}}
	cache := &stubCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	uc := New(repo, cache, nil)

	notes, err := uc.ListNotes(context.Background(), repository.NoteFilter{})
	if err != nil {
		t.Fatalf("cache errors must not fail reads: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("unexpected notes: %v", notes)
	}
}

func TestListNotesWithoutCache(t *testing.T) {
	repo := &stubNotes{notes: []domain.Note{{ID: "n1", Title: "Names"}}}
	uc := New(repo, nil, nil)

	if _, err := uc.ListNotes(context.Background(), repository.NoteFilter{}); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestWritesInvalidateCache(t *testing.T) {
	cache := &stubCache{}
	uc := New(&stubNotes{}, cache, nil)

	if _, err := uc.CreateNote(context.Background(), &domain.Note{Title: "Names"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.UpdateNote(context.Background(), &domain.Note{ID: "n1", Title: "Names"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := uc.DeleteNote(context.Background(), "n1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cache.invalidated != 3 {
		t.Errorf("expected 3 invalidations, got %d", cache.invalidated)
	}
}

func TestCreateNoteValidation(t *testing.T) {
	uc := New(&stubNotes{}, nil, nil)
	if _, err := uc.CreateNote(context.Background(), &domain.Note{Title: "  "}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected INVALID domain error, got %v", err)
	}
}
