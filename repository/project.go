package repository

import (
	"context"

	"github.com/lifeboard/backend/domain"
)

type ProjectFilter struct {
	Status string
	// Limit <= 0 returns all rows.
	Limit  int
	Offset int
}

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns projects newest-created first.
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	// Delete removes the project; its tasks go with it via the FK cascade.
	Delete(ctx context.Context, id string) error
}
