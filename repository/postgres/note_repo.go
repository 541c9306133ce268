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

type noteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository returns a Postgres-backed implementation of NoteRepository.
func NewNoteRepository(pool *pgxpool.Pool) repository.NoteRepository {
	return &noteRepository{pool: pool}
}

func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	const query = `
	SELECT id, title, body, category, image_path, created_at, updated_at
	FROM notes
	WHERE id = $1
	`
	return scanNote(r.pool.QueryRow(ctx, query, id))
}

func (r *noteRepository) List(ctx context.Context, filter repository.NoteFilter) ([]domain.Note, error) {
	const query = `
	SELECT id, title, body, category, image_path, created_at, updated_at
	FROM notes
	WHERE ($1 = '' OR category = $1)
	  AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR body ILIKE '%' || $2 || '%')
	ORDER BY updated_at DESC
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.Category, filter.Search, limitArg(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	return notes, rows.Err()
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if note == nil {
		return nil, domain.ErrInvalidPayload
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO notes (id, title, body, category, image_path)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		note.ID,
		note.Title,
		note.Body,
		note.Category,
		note.ImagePath,
	).Scan(&note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	return note, nil
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note) error {
	if note == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE notes
	SET title = $2,
		body = $3,
		category = $4,
		image_path = $5,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		note.ID,
		note.Title,
		note.Body,
		note.Category,
		note.ImagePath,
	).Scan(&note.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNoteNotFound
		}
		return err
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM notes WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func scanNote(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Note, error) {
	var note domain.Note
	if err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Body,
		&note.Category,
		&note.ImagePath,
		&note.CreatedAt,
		&note.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}
