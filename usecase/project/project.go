package project

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type UseCase struct {
	projects repository.ProjectRepository
	logger   *zap.Logger
}

func New(projects repository.ProjectRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		projects: projects,
		logger:   logger,
	}
}

func (uc *UseCase) ListProjects(ctx context.Context, filter repository.ProjectFilter) ([]domain.Project, error) {
	return uc.projects.List(ctx, filter)
}

func (uc *UseCase) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := validate(project); err != nil {
		return nil, err
	}
	return uc.projects.Create(ctx, project)
}

func (uc *UseCase) UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := validate(project); err != nil {
		return nil, err
	}
	if err := uc.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project; the database cascade takes its tasks
// along with it.
func (uc *UseCase) DeleteProject(ctx context.Context, id string) error {
	return uc.projects.Delete(ctx, id)
}

func validate(project *domain.Project) error {
	if project == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(project.Title) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "project title is required")
	}
	if project.Status == "" {
		project.Status = domain.StatusTodo
	}
	if !domain.ValidStatus(project.Status) {
		return domain.NewError(domain.ErrCodeInvalid, "project status must be todo, in-progress or done")
	}
	if project.Priority == "" {
		project.Priority = domain.ProjectPriorityMedium
	}
	if !domain.ValidProjectPriority(project.Priority) {
		return domain.NewError(domain.ErrCodeInvalid, "project priority must be low, medium or high")
	}
	return nil
}
