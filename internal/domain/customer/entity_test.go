package customer_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-registration-service/internal/domain/customer"
	xerrors "customer-registration-service/internal/pkg/errors"
)

func Test_Customer_SameIdentity(t *testing.T) {
	id := uuid.New()

	assert.True(t, customer.NewCustomer(id, "Maryam", "000099").SameIdentity(customer.NewCustomer(id, "John", "000099")))
	assert.False(t, customer.NewCustomer(id, "Maryam", "000099").SameIdentity(customer.NewCustomer(uuid.New(), "Maryam", "000099")))
	assert.False(t, customer.Customer{Name: "Maryam"}.SameIdentity(customer.NewCustomer(id, "Maryam", "000099")))
	assert.True(t, customer.Customer{}.SameIdentity(customer.Customer{}))
}

func Test_CustomerPayload_ToCustomer(t *testing.T) {
	t.Run("without id", func(t *testing.T) {
		c, err := customer.CustomerPayload{Name: "Maryam", PhoneNumber: "000099"}.ToCustomer()

		require.NoError(t, err)
		assert.False(t, c.HasID())
		assert.Equal(t, "Maryam", c.Name)
		assert.Equal(t, "000099", c.PhoneNumber)
	})

	t.Run("with id", func(t *testing.T) {
		id := uuid.New()
		raw := id.String()

		c, err := customer.CustomerPayload{ID: &raw, Name: "Maryam", PhoneNumber: "000099"}.ToCustomer()

		require.NoError(t, err)
		assert.Equal(t, customer.NewCustomer(id, "Maryam", "000099"), c)
	})

	t.Run("malformed id", func(t *testing.T) {
		raw := "not-a-uuid"

		_, err := customer.CustomerPayload{ID: &raw, PhoneNumber: "000099"}.ToCustomer()

		assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	})
}
