// internal/domain/customer/dto.go
package customer

import (
	"fmt"

	"github.com/google/uuid"

	xerrors "customer-registration-service/internal/pkg/errors"
)

// RegistrationRequest carries the candidate customer to register.
type RegistrationRequest struct {
	Customer Customer
}

// RegisterCustomerBody is the JSON payload accepted by the registration endpoint.
type RegisterCustomerBody struct {
	Customer CustomerPayload `json:"customer"`
}

type CustomerPayload struct {
	ID          *string `json:"id" binding:"omitempty,uuid"`
	Name        string  `json:"name" binding:"max=255"`
	PhoneNumber string  `json:"phone_number" binding:"required,max=20"`
}

type LookupQuery struct {
	PhoneNumber string `form:"phone_number" binding:"required"`
}

// ToCustomer converts the payload into a domain customer.
func (p CustomerPayload) ToCustomer() (Customer, error) {
	c := Customer{Name: p.Name, PhoneNumber: p.PhoneNumber}
	if p.ID == nil || *p.ID == "" {
		return c, nil
	}

	id, err := uuid.Parse(*p.ID)
	if err != nil {
		return Customer{}, fmt.Errorf("%w: customer id: %v", xerrors.ErrInvalidInput, err)
	}
	c.ID = uuid.NullUUID{UUID: id, Valid: true}

	return c, nil
}
