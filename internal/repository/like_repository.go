package repository

import (
	"context"

	"tastebook/internal/database"
	dbpostgres "tastebook/internal/database/postgres"
	"tastebook/internal/domain/content"
	"tastebook/internal/domain/social"

	"github.com/google/uuid"
)

type PostgresLikeRepository struct {
	db database.DB
}

func NewPostgresLikeRepository(db database.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) Insert(ctx context.Context, l social.Like) (social.Like, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO likes (id, user_id, target_id, type) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		l.ID, l.UserID, l.TargetID, string(l.Type),
	)
	if err := row.Scan(&l.CreatedAt); err != nil {
		if dbpostgres.IsUniqueViolation(err) {
			return social.Like{}, social.ErrAlreadyLiked
		}
		return social.Like{}, err
	}
	return l, nil
}

func (r *PostgresLikeRepository) Exists(ctx context.Context, userID, targetID uuid.UUID, kind content.Kind) (bool, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND target_id = $2 AND type = $3)`,
		userID, targetID, string(kind),
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresLikeRepository) Delete(ctx context.Context, userID, targetID uuid.UUID, kind content.Kind) (int64, error) {
	return r.db.Exec(
		ctx,
		`DELETE FROM likes WHERE user_id = $1 AND target_id = $2 AND type = $3`,
		userID, targetID, string(kind),
	)
}

func (r *PostgresLikeRepository) ListByTarget(ctx context.Context, targetID uuid.UUID, kind content.Kind) ([]social.Like, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, target_id, type, created_at FROM likes WHERE target_id = $1 AND type = $2 ORDER BY created_at DESC`,
		targetID, string(kind),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLikes(rows)
}

func (r *PostgresLikeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]social.Like, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, target_id, type, created_at FROM likes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLikes(rows)
}

// ListByUserWithTargets joins each like with its target's display fields.
// COALESCE keeps orphaned likes (deleted target) in the result with empty
// title and image_url.
func (r *PostgresLikeRepository) ListByUserWithTargets(ctx context.Context, userID uuid.UUID) ([]social.LikedTarget, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT l.id, l.type, l.target_id,
		        COALESCE(r.title, b.title, '') AS title,
		        COALESCE(r.image_url, b.image_url, '') AS image_url
		 FROM likes l
		 LEFT JOIN recipes r ON l.type = 'recipe' AND r.id = l.target_id
		 LEFT JOIN blogs b ON l.type = 'blog' AND b.id = l.target_id
		 WHERE l.user_id = $1
		 ORDER BY l.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]social.LikedTarget, 0)
	for rows.Next() {
		var lt social.LikedTarget
		var kind string
		if err := rows.Scan(&lt.ID, &kind, &lt.TargetID, &lt.Title, &lt.ImageURL); err != nil {
			return nil, err
		}
		lt.Type = content.Kind(kind)
		out = append(out, lt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func collectLikes(rows database.Rows) ([]social.Like, error) {
	out := make([]social.Like, 0)
	for rows.Next() {
		var l social.Like
		var kind string
		if err := rows.Scan(&l.ID, &l.UserID, &l.TargetID, &kind, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Type = content.Kind(kind)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
