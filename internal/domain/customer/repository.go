// internal/domain/customer/repository.go
package customer

import "context"

// Store is the persistence collaborator of the registration service.
//
// SelectCustomerByPhoneNumber returns xerrors.ErrNotFound when no customer
// holds the phone number.
type Store interface {
	SelectCustomerByPhoneNumber(ctx context.Context, phoneNumber string) (*Customer, error)
	Save(ctx context.Context, c *Customer) error
}
