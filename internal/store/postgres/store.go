// Package postgres is the production store. Every method executes against
// the transaction carried in the context when one is present, so writes made
// inside a unit of work commit or roll back together.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/daxp472/CMS/pkg/platform/sentinel"
	txcontext "github.com/daxp472/CMS/pkg/platform/tx"
)

// Store implements every store interface the services consume on top of
// PostgreSQL.
type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL-backed store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// translate maps driver-level failures onto the store sentinel vocabulary so
// services never see lib/pq details.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return sentinel.ErrConflict
	}
	return err
}
