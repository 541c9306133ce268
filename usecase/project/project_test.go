package project

import (
	"context"
	"testing"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type stubRepo struct {
	created *domain.Project
	deleted []string
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return nil, domain.ErrProjectNotFound
}

func (s *stubRepo) List(ctx context.Context, filter repository.ProjectFilter) ([]domain.Project, error) {
	return nil, nil
}

func (s *stubRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	s.created = p
	return p, nil
}

func (s *stubRepo) Update(ctx context.Context, p *domain.Project) error { return nil }

func (s *stubRepo) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func TestCreateProjectValidation(t *testing.T) {
	cases := []struct {
		name    string
		project *domain.Project
	}{
		{"nil project", nil},
		{"empty title", &domain.Project{Title: "  "}},
		{"bad status", &domain.Project{Title: "Nursery Setup", Status: "paused"}},
		{"bad priority", &domain.Project{Title: "Nursery Setup", Priority: "urgent"}},
	}

	uc := New(&stubRepo{}, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateProject(context.Background(), tc.project); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Fatalf("expected INVALID domain error, got %v", err)
			}
		})
	}
}

func TestCreateProjectDefaults(t *testing.T) {
	repo := &stubRepo{}
	uc := New(repo, nil)

	created, err := uc.CreateProject(context.Background(), &domain.Project{Title: "Nursery Setup"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.StatusTodo {
		t.Errorf("status = %q, want %q", created.Status, domain.StatusTodo)
	}
	if created.Priority != domain.ProjectPriorityMedium {
		t.Errorf("priority = %q, want %q", created.Priority, domain.ProjectPriorityMedium)
	}
}

func TestDeleteProjectDelegates(t *testing.T) {
	repo := &stubRepo{}
	uc := New(repo, nil)

	if err := uc.DeleteProject(context.Background(), "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "p1" {
		t.Fatalf("deleted = %v", repo.deleted)
	}
}
