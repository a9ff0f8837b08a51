package repository

import (
	"context"

	"tastebook/internal/database"
	dbpostgres "tastebook/internal/database/postgres"
	"tastebook/internal/domain/profile"
	"tastebook/internal/domain/social"

	"github.com/google/uuid"
)

type PostgresFollowRepository struct {
	db database.DB
}

func NewPostgresFollowRepository(db database.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) Insert(ctx context.Context, followerID, followingID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)`,
		followerID, followingID,
	)
	if err != nil {
		if dbpostgres.IsUniqueViolation(err) {
			return social.ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (r *PostgresFollowRepository) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID,
	)
	return err
}

func (r *PostgresFollowRepository) ListFollowers(ctx context.Context, profileID uuid.UUID) ([]profile.Public, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT p.username, p.avatar_url
		 FROM follows f
		 JOIN profiles p ON p.id = f.follower_id
		 WHERE f.following_id = $1
		 ORDER BY f.created_at DESC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPublicProfiles(rows)
}

func (r *PostgresFollowRepository) ListFollowing(ctx context.Context, profileID uuid.UUID) ([]profile.Public, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT p.username, p.avatar_url
		 FROM follows f
		 JOIN profiles p ON p.id = f.following_id
		 WHERE f.follower_id = $1
		 ORDER BY f.created_at DESC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPublicProfiles(rows)
}

func collectPublicProfiles(rows database.Rows) ([]profile.Public, error) {
	out := make([]profile.Public, 0)
	for rows.Next() {
		var p profile.Public
		if err := rows.Scan(&p.Username, &p.AvatarURL); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
