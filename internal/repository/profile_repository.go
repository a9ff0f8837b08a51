package repository

import (
	"context"
	"database/sql"
	"errors"

	"tastebook/internal/database"
	dbpostgres "tastebook/internal/database/postgres"
	"tastebook/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p profile.Profile) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO profiles (id, username, bio, avatar_url) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Username, p.Bio, p.AvatarURL,
	)
	if err != nil {
		if dbpostgres.IsUniqueViolation(err) {
			return profile.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, p profile.Profile) error {
	affected, err := r.db.Exec(
		ctx,
		`UPDATE profiles SET username = $2, bio = $3, avatar_url = $4, updated_at = now() WHERE id = $1`,
		p.ID, p.Username, p.Bio, p.AvatarURL,
	)
	if err != nil {
		if dbpostgres.IsUniqueViolation(err) {
			return profile.ErrUsernameTaken
		}
		return err
	}
	if affected == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *PostgresProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, username, bio, avatar_url, created_at, updated_at FROM profiles WHERE id = $1`,
		id,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) GetByUsername(ctx context.Context, username string) (profile.Profile, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, username, bio, avatar_url, created_at, updated_at FROM profiles WHERE username = $1`,
		username,
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(&p.ID, &p.Username, &p.Bio, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}
