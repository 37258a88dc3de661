// internal/repository/postgres/db.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Querier is the subset of *pgxpool.Pool the repositories need.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const DefaultCustomersTable = "customers"

// EnsureSchema creates the customers table and its phone number index if missing.
func EnsureSchema(ctx context.Context, db Querier, table string) error {
	if table == "" {
		table = DefaultCustomersTable
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		phone_number TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT %s UNIQUE (phone_number)
	)`, pq.QuoteIdentifier(table), pq.QuoteIdentifier(phoneConstraint(table)))

	if _, err := db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create %s table: %w", table, err)
	}

	return nil
}

func phoneConstraint(table string) string {
	return table + "_phone_number_key"
}
