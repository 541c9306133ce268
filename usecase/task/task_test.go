package task

import (
	"context"
	"testing"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type stubRepo struct {
	created  *domain.Task
	updated  *domain.Task
	attached []string
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if id == "missing" {
		return nil, domain.ErrTaskNotFound
	}
	return &domain.Task{ID: id, ProjectID: "p1", Title: "existing", Status: domain.StatusTodo}, nil
}

func (s *stubRepo) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return nil, nil
}

func (s *stubRepo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	s.created = t
	return t, nil
}

func (s *stubRepo) Update(ctx context.Context, t *domain.Task) error {
	s.updated = t
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) error { return nil }

func (s *stubRepo) AttachImage(ctx context.Context, taskID, path string) error {
	s.attached = append(s.attached, path)
	return nil
}

func TestCreateTaskValidation(t *testing.T) {
	cases := []struct {
		name string
		task *domain.Task
	}{
		{"nil task", nil},
		{"empty title", &domain.Task{ProjectID: "p1", Title: "   "}},
		{"missing project", &domain.Task{Title: "Order crib"}},
		{"bad status", &domain.Task{ProjectID: "p1", Title: "Order crib", Status: "open"}},
		{"bad priority", &domain.Task{ProjectID: "p1", Title: "Order crib", Priority: 7}},
	}

	uc := New(&stubRepo{}, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateTask(context.Background(), tc.task)
			if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
				t.Fatalf("expected INVALID domain error, got %v", err)
			}
		})
	}
}

func TestCreateTaskDefaultsStatus(t *testing.T) {
	repo := &stubRepo{}
	uc := New(repo, nil)

	created, err := uc.CreateTask(context.Background(), &domain.Task{ProjectID: "p1", Title: "Order crib"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.StatusTodo {
		t.Errorf("status = %q, want %q", created.Status, domain.StatusTodo)
	}
	if repo.created == nil {
		t.Error("expected repository create call")
	}
}

func TestUpdateTaskValidates(t *testing.T) {
	uc := New(&stubRepo{}, nil)
	if _, err := uc.UpdateTask(context.Background(), &domain.Task{ID: "t1", Title: ""}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected INVALID domain error, got %v", err)
	}
}

func TestAttachImage(t *testing.T) {
	repo := &stubRepo{}
	uc := New(repo, nil)

	if err := uc.AttachImage(context.Background(), "t1", "/uploads/a.png"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if len(repo.attached) != 1 || repo.attached[0] != "/uploads/a.png" {
		t.Fatalf("attached = %v", repo.attached)
	}

	if err := uc.AttachImage(context.Background(), "missing", "/uploads/a.png"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND for unknown task, got %v", err)
	}
	if err := uc.AttachImage(context.Background(), "", ""); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected INVALID for empty args, got %v", err)
	}
}
