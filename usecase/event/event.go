package event

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type UseCase struct {
	events repository.EventRepository
	logger *zap.Logger
}

func New(events repository.EventRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		events: events,
		logger: logger,
	}
}

func (uc *UseCase) ListEvents(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	return uc.events.List(ctx, filter)
}

func (uc *UseCase) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return uc.events.GetByID(ctx, id)
}

func (uc *UseCase) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := validate(event); err != nil {
		return nil, err
	}
	return uc.events.Create(ctx, event)
}

func (uc *UseCase) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := validate(event); err != nil {
		return nil, err
	}
	if err := uc.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (uc *UseCase) DeleteEvent(ctx context.Context, id string) error {
	return uc.events.Delete(ctx, id)
}

func (uc *UseCase) AttachImage(ctx context.Context, eventID, path string) error {
	if eventID == "" || path == "" {
		return domain.ErrInvalidPayload
	}
	if _, err := uc.events.GetByID(ctx, eventID); err != nil {
		return err
	}
	return uc.events.AttachImage(ctx, eventID, path)
}

func validate(event *domain.Event) error {
	if event == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(event.Title) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "event title is required")
	}
	if event.StartsAt.IsZero() {
		return domain.NewError(domain.ErrCodeInvalid, "event starts_at is required")
	}
	if event.EndsAt != nil && event.EndsAt.Before(event.StartsAt) {
		return domain.NewError(domain.ErrCodeInvalid, "event ends_at precedes starts_at")
	}
	return nil
}
