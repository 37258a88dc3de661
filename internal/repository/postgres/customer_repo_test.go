package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-registration-service/internal/domain/customer"
	xerrors "customer-registration-service/internal/pkg/errors"
	"customer-registration-service/internal/repository/postgres"
)

// uuidArg matches a customer id however the driver chooses to pass it.
type uuidArg uuid.UUID

func (a uuidArg) Match(v any) bool {
	switch got := v.(type) {
	case uuid.UUID:
		return got == uuid.UUID(a)
	case string:
		return got == uuid.UUID(a).String()
	default:
		return false
	}
}

var (
	selectSQL = regexp.QuoteMeta(`SELECT id, name, phone_number FROM "customers" WHERE phone_number = $1`)
	saveSQL   = regexp.QuoteMeta(`INSERT INTO "customers" (id, name, phone_number) VALUES ($1, $2, $3) ON CONFLICT (id)`)
)

func setupMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock
}

func Test_SelectCustomerByPhoneNumber_Found(t *testing.T) {
	mock := setupMock(t)
	repo := postgres.NewCustomerRepository(mock, "")
	id := uuid.New()

	mock.ExpectQuery(selectSQL).
		WithArgs("000099").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "phone_number"}).AddRow(id.String(), "John", "000099"))

	found, err := repo.SelectCustomerByPhoneNumber(context.Background(), "000099")

	require.NoError(t, err)
	assert.Equal(t, customer.NewCustomer(id, "John", "000099"), *found)
}

func Test_SelectCustomerByPhoneNumber_NotFound(t *testing.T) {
	mock := setupMock(t)
	repo := postgres.NewCustomerRepository(mock, "")

	mock.ExpectQuery(selectSQL).WithArgs("000099").WillReturnError(pgx.ErrNoRows)

	_, err := repo.SelectCustomerByPhoneNumber(context.Background(), "000099")

	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func Test_SelectCustomerByPhoneNumber_QueryError(t *testing.T) {
	mock := setupMock(t)
	repo := postgres.NewCustomerRepository(mock, "")
	boom := errors.New("connection reset")

	mock.ExpectQuery(selectSQL).WithArgs("000099").WillReturnError(boom)

	_, err := repo.SelectCustomerByPhoneNumber(context.Background(), "000099")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, xerrors.ErrNotFound)
}

func Test_Save_Upserts(t *testing.T) {
	mock := setupMock(t)
	repo := postgres.NewCustomerRepository(mock, "")
	id := uuid.New()

	mock.ExpectExec(saveSQL).
		WithArgs(uuidArg(id), "Maryam", "000099").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	c := customer.NewCustomer(id, "Maryam", "000099")
	assert.NoError(t, repo.Save(context.Background(), &c))
}

func Test_Save_RequiresID(t *testing.T) {
	mock := setupMock(t)
	repo := postgres.NewCustomerRepository(mock, "")

	err := repo.Save(context.Background(), &customer.Customer{Name: "Maryam", PhoneNumber: "000099"})

	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func Test_Save_PhoneNumberRaceBecomesConflict(t *testing.T) {
	mock := setupMock(t)
	repo := postgres.NewCustomerRepository(mock, "")
	id := uuid.New()

	mock.ExpectExec(saveSQL).
		WithArgs(uuidArg(id), "Maryam", "000099").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_phone_number_key"})

	c := customer.NewCustomer(id, "Maryam", "000099")
	err := repo.Save(context.Background(), &c)

	assert.ErrorIs(t, err, xerrors.ErrConflict)
	assert.Contains(t, err.Error(), "phone number")
}

func Test_Save_OtherUniqueViolationIsNotAPhoneConflict(t *testing.T) {
	mock := setupMock(t)
	repo := postgres.NewCustomerRepository(mock, "")
	id := uuid.New()

	mock.ExpectExec(saveSQL).
		WithArgs(uuidArg(id), "Maryam", "000099").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "some_other_key"})

	c := customer.NewCustomer(id, "Maryam", "000099")
	err := repo.Save(context.Background(), &c)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, xerrors.ErrConflict)
}

func Test_CustomTableNameIsQuoted(t *testing.T) {
	mock := setupMock(t)
	repo := postgres.NewCustomerRepository(mock, "Customer Registry")

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "Customer Registry" WHERE`)).
		WithArgs("000099").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.SelectCustomerByPhoneNumber(context.Background(), "000099")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func Test_EnsureSchema(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "customers"`)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	assert.NoError(t, postgres.EnsureSchema(context.Background(), mock, ""))
}

func Test_EnsureSchema_Error(t *testing.T) {
	mock := setupMock(t)
	boom := errors.New("permission denied")

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "customers"`)).WillReturnError(boom)

	assert.ErrorIs(t, postgres.EnsureSchema(context.Background(), mock, "customers"), boom)
}
