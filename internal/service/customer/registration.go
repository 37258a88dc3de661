// internal/service/customer/registration.go
package customer

import (
	"context"
	"fmt"

	"customer-registration-service/internal/domain/customer"
	xerrors "customer-registration-service/internal/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IDGenerator produces identifiers for customers registered without one.
type IDGenerator func() uuid.UUID

type Option func(*RegistrationService)

// WithIDGenerator replaces the default random UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *RegistrationService) {
		s.newID = gen
	}
}

type RegistrationService struct {
	store  customer.Store
	newID  IDGenerator
	logger *zap.Logger
}

func NewRegistrationService(store customer.Store, logger *zap.Logger, opts ...Option) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &RegistrationService{
		store:  store,
		newID:  uuid.New,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RegisterNewCustomer saves the candidate unless its phone number already
// belongs to a different customer, in which case an ErrConflict is returned.
// Re-registering the customer that already owns the phone number is a no-op.
func (s *RegistrationService) RegisterNewCustomer(ctx context.Context, req customer.RegistrationRequest) error {
	candidate := req.Customer

	existing, err := s.store.SelectCustomerByPhoneNumber(ctx, candidate.PhoneNumber)
	switch {
	case err == nil && existing != nil:
		if existing.SameIdentity(candidate) {
			s.logger.Debug("customer already registered",
				zap.String("customer_id", candidate.ID.UUID.String()),
				zap.String("phone_number", candidate.PhoneNumber),
			)
			return nil
		}

		s.logger.Info("phone number already taken",
			zap.String("phone_number", candidate.PhoneNumber),
		)
		return xerrors.Conflict("phone number [%s] is taken", candidate.PhoneNumber)

	case err != nil && !xerrors.Is(err, xerrors.ErrNotFound):
		s.logger.Error("failed to look up customer", zap.Error(err))
		return fmt.Errorf("failed to look up customer by phone number: %w", err)
	}

	if !candidate.HasID() {
		candidate.ID = uuid.NullUUID{UUID: s.newID(), Valid: true}
	}

	if err := s.store.Save(ctx, &candidate); err != nil {
		s.logger.Error("failed to save customer", zap.Error(err))
		return fmt.Errorf("failed to save customer: %w", err)
	}

	s.logger.Info("customer registered",
		zap.String("customer_id", candidate.ID.UUID.String()),
		zap.String("phone_number", candidate.PhoneNumber),
	)

	return nil
}

// LookupCustomerByPhone retrieves the customer holding a phone number
func (s *RegistrationService) LookupCustomerByPhone(ctx context.Context, phoneNumber string) (*customer.Customer, error) {
	c, err := s.store.SelectCustomerByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	return c, nil
}
