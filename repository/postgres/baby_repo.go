package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type babyRepository struct {
	pool *pgxpool.Pool
}

// NewBabyRepository returns a Postgres-backed implementation of BabyRepository.
func NewBabyRepository(pool *pgxpool.Pool) repository.BabyRepository {
	return &babyRepository{pool: pool}
}

// The savings tracker is a single well-known row with id = 1.

func (r *babyRepository) GetSavings(ctx context.Context) (*domain.BabySavings, error) {
	const query = `SELECT balance_cents, goal_cents, updated_at FROM baby_savings WHERE id = 1`
	var savings domain.BabySavings
	if err := r.pool.QueryRow(ctx, query).Scan(
		&savings.BalanceCents,
		&savings.GoalCents,
		&savings.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The row is seeded by migrations; an empty tracker is still valid.
			return &domain.BabySavings{}, nil
		}
		return nil, err
	}
	return &savings, nil
}

func (r *babyRepository) UpdateSavings(ctx context.Context, savings *domain.BabySavings) error {
	if savings == nil {
		return domain.ErrInvalidPayload
	}
	const query = `
	INSERT INTO baby_savings (id, balance_cents, goal_cents, updated_at)
	VALUES (1, $1, $2, NOW())
	ON CONFLICT (id) DO UPDATE
	SET balance_cents = EXCLUDED.balance_cents,
	    goal_cents = EXCLUDED.goal_cents,
	    updated_at = NOW()
	RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query, savings.BalanceCents, savings.GoalCents).Scan(&savings.UpdatedAt)
}

func (r *babyRepository) GetItem(ctx context.Context, id string) (*domain.BabyItem, error) {
	const query = `
	SELECT id, title, price_cents, purchased, image_path, created_at, updated_at
	FROM baby_items
	WHERE id = $1
	`
	return scanBabyItem(r.pool.QueryRow(ctx, query, id))
}

func (r *babyRepository) ListItems(ctx context.Context, filter repository.BabyItemFilter) ([]domain.BabyItem, error) {
	const query = `
	SELECT id, title, price_cents, purchased, image_path, created_at, updated_at
	FROM baby_items
	WHERE ($1::bool IS NULL OR purchased = $1)
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, filter.Purchased, limitArg(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.BabyItem
	for rows.Next() {
		item, err := scanBabyItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *babyRepository) CreateItem(ctx context.Context, item *domain.BabyItem) (*domain.BabyItem, error) {
	if item == nil {
		return nil, domain.ErrInvalidPayload
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO baby_items (id, title, price_cents, purchased, image_path)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		item.ID,
		item.Title,
		item.PriceCents,
		item.Purchased,
		item.ImagePath,
	).Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *babyRepository) UpdateItem(ctx context.Context, item *domain.BabyItem) error {
	if item == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE baby_items
	SET title = $2,
		price_cents = $3,
		purchased = $4,
		image_path = $5,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		item.ID,
		item.Title,
		item.PriceCents,
		item.Purchased,
		item.ImagePath,
	).Scan(&item.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBabyItemNotFound
		}
		return err
	}
	return nil
}

func (r *babyRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM baby_items WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBabyItemNotFound
	}
	return nil
}

func scanBabyItem(row interface {
	Scan(dest ...interface{}) error
}) (*domain.BabyItem, error) {
	var item domain.BabyItem
	if err := row.Scan(
		&item.ID,
		&item.Title,
		&item.PriceCents,
		&item.Purchased,
		&item.ImagePath,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBabyItemNotFound
		}
		return nil, err
	}
	return &item, nil
}
