// internal/domain/customer/entity.go
package customer

import (
	"github.com/google/uuid"
)

// Customer is a registered (or to be registered) customer.
// An invalid ID means no identifier has been assigned yet.
type Customer struct {
	ID          uuid.NullUUID `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	PhoneNumber string        `json:"phone_number" db:"phone_number"`
}

// NewCustomer builds a customer with an already known identifier.
func NewCustomer(id uuid.UUID, name, phoneNumber string) Customer {
	return Customer{
		ID:          uuid.NullUUID{UUID: id, Valid: true},
		Name:        name,
		PhoneNumber: phoneNumber,
	}
}

// HasID reports whether an identifier has been assigned.
func (c Customer) HasID() bool {
	return c.ID.Valid
}

// SameIdentity reports whether both customers carry the same identifier.
// Two customers without identifiers are considered the same.
func (c Customer) SameIdentity(other Customer) bool {
	return c.ID == other.ID
}
