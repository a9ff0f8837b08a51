package database

import (
	"context"
	"database/sql"
)

// DB is the narrow query surface repositories depend on. The pgx pool
// implements it; SQLDB exposes the stdlib bridge for the pieces that need
// prepared statements or plain *sql.DB (auth user repo, migrations).
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
