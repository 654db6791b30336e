// Package dbx holds the small database/sql abstractions shared by the
// PostgreSQL repositories.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the part of database/sql the repositories use. *sql.DB, *sql.Conn
// and *sql.Tx all satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgreSQL error codes translated by Wrap.
const (
	pgUniqueViolation = "23505"
)

// Wrap adds the "db error" prefix to a driver error and, where the failure
// has a meaning callers care about, joins the matching sentinel from common
// so errors.Is works on the result.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("db error: %w: %w", common.ErrorAlreadyExists, err)
	}

	return fmt.Errorf("db error: %w", err)
}
