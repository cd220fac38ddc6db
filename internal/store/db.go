package store

import (
	"context"
	"database/sql"
)

// DBTX is the statement execution contract the query layer depends on.
// It is implemented by both *sql.DB and *sql.Tx. Values are always passed
// as positional arguments, never interpolated into the query text.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
