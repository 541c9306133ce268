package repository

import (
	"context"

	"github.com/lifeboard/backend/domain"
)

type NoteFilter struct {
	Category string
	Search   string
	// Limit <= 0 returns all rows.
	Limit    int
	Offset   int
}

type NoteRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context, filter NoteFilter) ([]domain.Note, error)
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id string) error
}
