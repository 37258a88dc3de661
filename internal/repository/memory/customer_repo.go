// internal/repository/memory/customer_repo.go
package memory

import (
	"context"
	"fmt"
	"sync"

	"customer-registration-service/internal/domain/customer"
	xerrors "customer-registration-service/internal/pkg/errors"

	"github.com/google/uuid"
)

// CustomerRepository keeps customers in process memory, indexed by phone
// number and by id. Safe for concurrent use.
type CustomerRepository struct {
	mu      sync.RWMutex
	byPhone map[string]customer.Customer
	phoneOf map[uuid.UUID]string
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byPhone: make(map[string]customer.Customer),
		phoneOf: make(map[uuid.UUID]string),
	}
}

// SelectCustomerByPhoneNumber retrieves a customer by phone number
func (r *CustomerRepository) SelectCustomerByPhoneNumber(ctx context.Context, phoneNumber string) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byPhone[phoneNumber]
	if !ok {
		return nil, xerrors.ErrNotFound
	}

	return &c, nil
}

// Save inserts or replaces the customer with the same id
func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.HasID() {
		return fmt.Errorf("%w: customer id is required", xerrors.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if holder, ok := r.byPhone[c.PhoneNumber]; ok && !holder.SameIdentity(*c) {
		return xerrors.Conflict("phone number [%s] is taken", c.PhoneNumber)
	}

	if previous, ok := r.phoneOf[c.ID.UUID]; ok && previous != c.PhoneNumber {
		delete(r.byPhone, previous)
	}

	r.byPhone[c.PhoneNumber] = *c
	r.phoneOf[c.ID.UUID] = c.PhoneNumber

	return nil
}

// Count returns the number of stored customers
func (r *CustomerRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byPhone)
}
