package repository

import (
	"context"
	"time"

	"github.com/lifeboard/backend/domain"
)

type EventFilter struct {
	From   *time.Time
	To     *time.Time
	// Limit <= 0 returns all rows.
	Limit  int
	Offset int
}

type EventRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter) ([]domain.Event, error)
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	AttachImage(ctx context.Context, eventID, path string) error
}
