package repository

import (
	"context"
	"database/sql"
	"errors"

	"tastebook/internal/database"
	"tastebook/internal/domain/comment"
	"tastebook/internal/domain/content"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresCommentRepository struct {
	db database.DB
}

func NewPostgresCommentRepository(db database.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) Create(ctx context.Context, c comment.Comment) (comment.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO comments (id, comment, user_id, target_id, type) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		c.ID, c.Comment, c.UserID, c.TargetID, string(c.Type),
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return comment.Comment{}, err
	}
	return c, nil
}

func (r *PostgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (comment.Comment, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, comment, user_id, target_id, type, created_at FROM comments WHERE id = $1`,
		id,
	)
	return scanComment(row)
}

func (r *PostgresCommentRepository) ListByTarget(ctx context.Context, targetID uuid.UUID, kind content.Kind) ([]comment.Comment, error) {
	var (
		rows database.Rows
		err  error
	)
	if kind == "" {
		rows, err = r.db.Query(
			ctx,
			`SELECT id, comment, user_id, target_id, type, created_at FROM comments WHERE target_id = $1 ORDER BY created_at ASC`,
			targetID,
		)
	} else {
		rows, err = r.db.Query(
			ctx,
			`SELECT id, comment, user_id, target_id, type, created_at FROM comments WHERE target_id = $1 AND type = $2 ORDER BY created_at ASC`,
			targetID, string(kind),
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]comment.Comment, 0)
	for rows.Next() {
		var c comment.Comment
		var typ string
		if err := rows.Scan(&c.ID, &c.Comment, &c.UserID, &c.TargetID, &typ, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Type = content.Kind(typ)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCommentRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) (comment.Comment, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE comments SET comment = $2 WHERE id = $1 RETURNING id, comment, user_id, target_id, type, created_at`,
		id, text,
	)
	return scanComment(row)
}

func (r *PostgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return comment.ErrNotFound
	}
	return nil
}

func scanComment(row database.Row) (comment.Comment, error) {
	var c comment.Comment
	var typ string
	err := row.Scan(&c.ID, &c.Comment, &c.UserID, &c.TargetID, &typ, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return comment.Comment{}, comment.ErrNotFound
		}
		return comment.Comment{}, err
	}
	c.Type = content.Kind(typ)
	return c, nil
}
