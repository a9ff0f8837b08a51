package postgres

import (
	"context"
	"database/sql"

	"tastebook/internal/domain/user"

	"github.com/google/uuid"
)

// UserRepository is the auth-user store. It runs over the stdlib bridge with
// prepared statements; these queries sit on the login hot path.
type UserRepository struct {
	db *sql.DB

	stmtCreate      *sql.Stmt
	stmtGetByID     *sql.Stmt
	stmtGetByEmail  *sql.Stmt
	stmtExistsEmail *sql.Stmt
	stmtListAll     *sql.Stmt
}

func NewUserRepository(db *sql.DB) (*UserRepository, error) {
	r := &UserRepository{db: db}

	prepare := func(dst **sql.Stmt, query string) error {
		s, err := db.PrepareContext(context.Background(), query)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}

	stmts := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&r.stmtCreate, `INSERT INTO auth_users (id, email, password_hash) VALUES ($1, $2, $3)`},
		{&r.stmtGetByID, `SELECT id, email, password_hash, created_at, updated_at FROM auth_users WHERE id = $1`},
		{&r.stmtGetByEmail, `SELECT id, email, password_hash, created_at, updated_at FROM auth_users WHERE email = $1`},
		{&r.stmtExistsEmail, `SELECT EXISTS(SELECT 1 FROM auth_users WHERE email = $1)`},
		{&r.stmtListAll, `SELECT id, email, password_hash, created_at, updated_at FROM auth_users ORDER BY created_at ASC`},
	}
	for _, s := range stmts {
		if err := prepare(s.dst, s.query); err != nil {
			_ = r.Close()
			return nil, err
		}
	}

	return r, nil
}

func (r *UserRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreate)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)
	closeStmt(r.stmtExistsEmail)
	closeStmt(r.stmtListAll)

	return firstErr
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.stmtCreate.ExecContext(ctx, u.ID, u.Email, u.PasswordHash)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return scanUser(r.stmtGetByID.QueryRowContext(ctx, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.stmtGetByEmail.QueryRowContext(ctx, email))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExistsEmail.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]user.User, error) {
	rows, err := r.stmtListAll.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
