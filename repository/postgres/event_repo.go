package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a Postgres-backed implementation of EventRepository.
func NewEventRepository(pool *pgxpool.Pool) repository.EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	const query = `
	SELECT id, title, description, starts_at, ends_at, location, color, created_at, updated_at
	FROM events
	WHERE id = $1
	`
	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	images, err := r.listImages(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	event.Images = images
	return event, nil
}

func (r *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	const query = `
	SELECT id, title, description, starts_at, ends_at, location, color, created_at, updated_at
	FROM events
	WHERE ($1::timestamptz IS NULL OR starts_at >= $1)
	  AND ($2::timestamptz IS NULL OR starts_at < $2)
	ORDER BY starts_at
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.From, filter.To, limitArg(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil {
		return nil, domain.ErrInvalidPayload
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO events (id, title, description, starts_at, ends_at, location, color)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.StartsAt,
		nullTime(event.EndsAt),
		event.Location,
		event.Color,
	).Scan(&event.CreatedAt, &event.UpdatedAt); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	if event == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE events
	SET title = $2,
		description = $3,
		starts_at = $4,
		ends_at = $5,
		location = $6,
		color = $7,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.StartsAt,
		nullTime(event.EndsAt),
		event.Location,
		event.Color,
	).Scan(&event.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return err
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM events WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) AttachImage(ctx context.Context, eventID, path string) error {
	const query = `INSERT INTO event_images (id, event_id, path) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, uuid.NewString(), eventID, path)
	return err
}

func (r *eventRepository) listImages(ctx context.Context, eventID string) ([]string, error) {
	const query = `SELECT path FROM event_images WHERE event_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func scanEvent(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Event, error) {
	var event domain.Event
	var ends *time.Time

	if err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartsAt,
		&ends,
		&event.Location,
		&event.Color,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	event.EndsAt = ends
	return &event, nil
}
