package baby

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type UseCase struct {
	baby   repository.BabyRepository
	logger *zap.Logger
}

func New(baby repository.BabyRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		baby:   baby,
		logger: logger,
	}
}

func (uc *UseCase) GetSavings(ctx context.Context) (*domain.BabySavings, error) {
	return uc.baby.GetSavings(ctx)
}

func (uc *UseCase) UpdateSavings(ctx context.Context, savings *domain.BabySavings) (*domain.BabySavings, error) {
	if savings == nil {
		return nil, domain.ErrInvalidPayload
	}
	if savings.BalanceCents < 0 {
		return nil, domain.NewError(domain.ErrCodeInvalid, "balance cannot be negative")
	}
	if savings.GoalCents < 0 {
		return nil, domain.NewError(domain.ErrCodeInvalid, "goal cannot be negative")
	}
	if err := uc.baby.UpdateSavings(ctx, savings); err != nil {
		return nil, err
	}
	return savings, nil
}

func (uc *UseCase) ListItems(ctx context.Context, filter repository.BabyItemFilter) ([]domain.BabyItem, error) {
	return uc.baby.ListItems(ctx, filter)
}

func (uc *UseCase) GetItem(ctx context.Context, id string) (*domain.BabyItem, error) {
	return uc.baby.GetItem(ctx, id)
}

func (uc *UseCase) CreateItem(ctx context.Context, item *domain.BabyItem) (*domain.BabyItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	return uc.baby.CreateItem(ctx, item)
}

func (uc *UseCase) UpdateItem(ctx context.Context, item *domain.BabyItem) (*domain.BabyItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := uc.baby.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *UseCase) DeleteItem(ctx context.Context, id string) error {
	return uc.baby.DeleteItem(ctx, id)
}

func validateItem(item *domain.BabyItem) error {
	if item == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(item.Title) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "item title is required")
	}
	if item.PriceCents < 0 {
		return domain.NewError(domain.ErrCodeInvalid, "item price cannot be negative")
	}
	return nil
}
