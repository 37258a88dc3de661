// internal/repository/postgres/customer_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"customer-registration-service/internal/domain/customer"
	xerrors "customer-registration-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type CustomerRepository struct {
	db         Querier
	table      string
	selectStmt string
	saveStmt   string
}

func NewCustomerRepository(db Querier, table string) *CustomerRepository {
	if table == "" {
		table = DefaultCustomersTable
	}
	quoted := pq.QuoteIdentifier(table)

	return &CustomerRepository{
		db:         db,
		table:      table,
		selectStmt: fmt.Sprintf("SELECT id, name, phone_number FROM %s WHERE phone_number = $1", quoted),
		saveStmt: fmt.Sprintf("INSERT INTO %s (id, name, phone_number) VALUES ($1, $2, $3) "+
			"ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, phone_number = EXCLUDED.phone_number, updated_at = NOW()", quoted),
	}
}

// SelectCustomerByPhoneNumber retrieves a customer by phone number
func (r *CustomerRepository) SelectCustomerByPhoneNumber(ctx context.Context, phoneNumber string) (*customer.Customer, error) {
	var c customer.Customer

	err := r.db.QueryRow(ctx, r.selectStmt, phoneNumber).Scan(&c.ID, &c.Name, &c.PhoneNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &c, nil
}

// Save inserts the customer or updates the row with the same id
func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if !c.HasID() {
		return fmt.Errorf("%w: customer id is required", xerrors.ErrInvalidInput)
	}

	_, err := r.db.Exec(ctx, r.saveStmt, c.ID.UUID, c.Name, c.PhoneNumber)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == phoneConstraint(r.table) {
			return xerrors.Conflict("phone number [%s] is taken", c.PhoneNumber)
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}

	return nil
}
