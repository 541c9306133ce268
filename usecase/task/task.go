package task

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := validate(task); err != nil {
		return nil, err
	}
	if strings.TrimSpace(task.ProjectID) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "task project_id is required")
	}
	return uc.tasks.Create(ctx, task)
}

func (uc *UseCase) UpdateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := validate(task); err != nil {
		return nil, err
	}
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	return uc.tasks.Delete(ctx, id)
}

func (uc *UseCase) AttachImage(ctx context.Context, taskID, path string) error {
	if taskID == "" || path == "" {
		return domain.ErrInvalidPayload
	}
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return uc.tasks.AttachImage(ctx, taskID, path)
}

func validate(task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(task.Title) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "task title is required")
	}
	if task.Status == "" {
		task.Status = domain.StatusTodo
	}
	if !domain.ValidStatus(task.Status) {
		return domain.NewError(domain.ErrCodeInvalid, "task status must be todo, in-progress or done")
	}
	if !domain.ValidTaskPriority(task.Priority) {
		return domain.NewError(domain.ErrCodeInvalid, "task priority must be between 1 and 3")
	}
	return nil
}
