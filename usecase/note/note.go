package note

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

// ListCache fronts note listings; a nil, nil return is a miss. Cache errors
// must never fail a read, so the usecase degrades to the repository.
type ListCache interface {
	Get(ctx context.Context, filter repository.NoteFilter) ([]domain.Note, error)
	Set(ctx context.Context, filter repository.NoteFilter, notes []domain.Note) error
	Invalidate(ctx context.Context) error
}

type UseCase struct {
	notes  repository.NoteRepository
	cache  ListCache
	logger *zap.Logger
}

func New(notes repository.NoteRepository, cache ListCache, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		notes:  notes,
		cache:  cache,
		logger: logger,
	}
}

func (uc *UseCase) ListNotes(ctx context.Context, filter repository.NoteFilter) ([]domain.Note, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, filter)
		if err != nil {
			uc.logger.Warn("note cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	notes, err := uc.notes.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, filter, notes); err != nil {
			uc.logger.Warn("note cache write failed", zap.Error(err))
		}
	}
	return notes, nil
}

func (uc *UseCase) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	return uc.notes.GetByID(ctx, id)
}

func (uc *UseCase) CreateNote(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if err := validate(note); err != nil {
		return nil, err
	}
	created, err := uc.notes.Create(ctx, note)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return created, nil
}

func (uc *UseCase) UpdateNote(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if err := validate(note); err != nil {
		return nil, err
	}
	if err := uc.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return note, nil
}

func (uc *UseCase) DeleteNote(ctx context.Context, id string) error {
	if err := uc.notes.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *UseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("note cache invalidation failed", zap.Error(err))
	}
}

func validate(note *domain.Note) error {
	if note == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(note.Title) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "note title is required")
	}
	return nil
}
