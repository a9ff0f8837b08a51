package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tastebook/internal/database"
	"tastebook/internal/domain/content"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresContentRepository serves both content tables; every query resolves
// the table through content.Kind.Table.
type PostgresContentRepository struct {
	db database.DB
}

func NewPostgresContentRepository(db database.DB) *PostgresContentRepository {
	return &PostgresContentRepository{db: db}
}

func (r *PostgresContentRepository) ListAll(ctx context.Context, kind content.Kind) ([]content.Item, error) {
	if !kind.Valid() {
		return nil, content.ErrInvalidKind
	}
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		`SELECT id, title, content, image_url, user_id, created_at FROM %s ORDER BY created_at DESC`,
		kind.Table(),
	))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *PostgresContentRepository) ListByOwner(ctx context.Context, kind content.Kind, ownerID uuid.UUID) ([]content.Item, error) {
	if !kind.Valid() {
		return nil, content.ErrInvalidKind
	}
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		`SELECT id, title, content, image_url, user_id, created_at FROM %s WHERE user_id = $1 ORDER BY created_at DESC`,
		kind.Table(),
	), ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *PostgresContentRepository) Create(ctx context.Context, kind content.Kind, it content.Item) (content.Item, error) {
	if !kind.Valid() {
		return content.Item{}, content.ErrInvalidKind
	}
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, title, content, image_url, user_id) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		kind.Table(),
	), it.ID, it.Title, it.Content, it.ImageURL, it.UserID)
	if err := row.Scan(&it.CreatedAt); err != nil {
		return content.Item{}, err
	}
	return it, nil
}

func (r *PostgresContentRepository) GetByID(ctx context.Context, kind content.Kind, id uuid.UUID) (content.Item, error) {
	if !kind.Valid() {
		return content.Item{}, content.ErrInvalidKind
	}
	row := r.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT id, title, content, image_url, user_id, created_at FROM %s WHERE id = $1`,
		kind.Table(),
	), id)

	var it content.Item
	err := row.Scan(&it.ID, &it.Title, &it.Content, &it.ImageURL, &it.UserID, &it.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return content.Item{}, content.ErrNotFound
		}
		return content.Item{}, err
	}
	return it, nil
}

func (r *PostgresContentRepository) Exists(ctx context.Context, kind content.Kind, id uuid.UUID) (bool, error) {
	if !kind.Valid() {
		return false, content.ErrInvalidKind
	}
	row := r.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`,
		kind.Table(),
	), id)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresContentRepository) Delete(ctx context.Context, kind content.Kind, id uuid.UUID) error {
	if !kind.Valid() {
		return content.ErrInvalidKind
	}
	affected, err := r.db.Exec(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE id = $1`,
		kind.Table(),
	), id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return content.ErrNotFound
	}
	return nil
}

func collectItems(rows database.Rows) ([]content.Item, error) {
	out := make([]content.Item, 0)
	for rows.Next() {
		var it content.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Content, &it.ImageURL, &it.UserID, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
