package repository

import (
	"context"

	"github.com/lifeboard/backend/domain"
)

type BabyItemFilter struct {
	Purchased *bool
	// Limit <= 0 returns all rows.
	Limit     int
	Offset    int
}

type BabyRepository interface {
	GetSavings(ctx context.Context) (*domain.BabySavings, error)
	UpdateSavings(ctx context.Context, savings *domain.BabySavings) error

	GetItem(ctx context.Context, id string) (*domain.BabyItem, error)
	ListItems(ctx context.Context, filter BabyItemFilter) ([]domain.BabyItem, error)
	CreateItem(ctx context.Context, item *domain.BabyItem) (*domain.BabyItem, error)
	UpdateItem(ctx context.Context, item *domain.BabyItem) error
	DeleteItem(ctx context.Context, id string) error
}
