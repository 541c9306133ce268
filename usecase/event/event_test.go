package event

import (
	"context"
	"testing"
	"time"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type stubRepo struct {
	created *domain.Event
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return nil, domain.ErrEventNotFound
}

func (s *stubRepo) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	return nil, nil
}

func (s *stubRepo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	s.created = e
	return e, nil
}

func (s *stubRepo) Update(ctx context.Context, e *domain.Event) error { return nil }
func (s *stubRepo) Delete(ctx context.Context, id string) error       { return nil }

func (s *stubRepo) AttachImage(ctx context.Context, eventID, path string) error { return nil }

func TestCreateEventValidation(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)

	cases := []struct {
		name  string
		event *domain.Event
	}{
		{"nil event", nil},
		{"empty title", &domain.Event{Title: " ", StartsAt: start}},
		{"missing starts_at", &domain.Event{Title: "Checkup"}},
		{"ends before starts", &domain.Event{Title: "Checkup", StartsAt: start, EndsAt: &before}},
	}

	uc := New(&stubRepo{}, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateEvent(context.Background(), tc.event); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Fatalf("expected INVALID domain error, got %v", err)
			}
		})
	}
}

func TestCreateEventAllowsEqualBounds(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	repo := &stubRepo{}
	uc := New(repo, nil)

	if _, err := uc.CreateEvent(context.Background(), &domain.Event{Title: "Checkup", StartsAt: start, EndsAt: &start}); err != nil {
		t.Fatalf("zero-length event should be valid: %v", err)
	}
	if repo.created == nil {
		t.Error("expected repository create call")
	}
}

func TestAttachImageUnknownEvent(t *testing.T) {
	uc := New(&stubRepo{}, nil)
	if err := uc.AttachImage(context.Background(), "e1", "/uploads/a.png"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
