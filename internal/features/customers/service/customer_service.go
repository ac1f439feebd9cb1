package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/features/customers/domain"
	"storefront-api/internal/features/customers/ports"
	locations "storefront-api/internal/features/locations/domain"

	"go.uber.org/zap"
)

var (
	// ErrEmailRequired is returned when no email is provided.
	ErrEmailRequired = errors.New("email is required")
	// ErrCustomerNotFound is returned when no customer has the given email.
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerService reconciles checkout buyers with the store's customer records.
type CustomerService struct {
	directory ports.CustomerDirectory
	// trackedMethodID restricts CustomerOrders to one shipping method when non-zero.
	trackedMethodID int64
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(directory ports.CustomerDirectory, trackedMethodID int64) *CustomerService {
	return &CustomerService{
		directory:       directory,
		trackedMethodID: trackedMethodID,
	}
}

// ReconcileCustomer returns the id of the customer for contact.Email, creating the
// record when it does not exist. An existing customer without a shipping address
// gets both addresses attached; a failure to do so is logged and tolerated.
func (s *CustomerService) ReconcileCustomer(ctx context.Context, contact domain.Contact, shipping, billing locations.Address) (int64, error) {
	log := logger.Get()
	email := strings.TrimSpace(contact.Email)
	if email == "" {
		return 0, ErrEmailRequired
	}

	existing, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("service: failed to look up customer: %w", err)
	}

	if existing != nil {
		if !existing.HasShippingAddress() {
			if err := s.directory.UpdateAddresses(ctx, existing.ID, shipping, billing); err != nil {
				log.Warn("Failed to attach addresses to existing customer",
					zap.Int64("customer_id", existing.ID),
					zap.Error(err),
				)
			} else {
				log.Info("Attached addresses to existing customer", zap.Int64("customer_id", existing.ID))
			}
		}
		return existing.ID, nil
	}

	created, err := s.directory.Create(ctx, domain.Customer{
		Email:           email,
		FirstName:       contact.Name,
		LastName:        contact.Surname,
		Phone:           contact.Phone,
		ShippingAddress: &shipping,
		BillingAddress:  &billing,
	})
	if err != nil {
		return 0, fmt.Errorf("service: failed to create customer: %w", err)
	}

	log.Info("Created customer", zap.Int64("customer_id", created.ID))
	return created.ID, nil
}

// CustomerOrders returns the orders of the customer with email that carry a
// tracking number, restricted to the tracked shipping method when configured.
func (s *CustomerService) CustomerOrders(ctx context.Context, email string) ([]domain.Order, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	customer, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	orders, err := s.directory.Orders(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch orders: %w", err)
	}

	tracked := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if !o.Trackable() {
			continue
		}
		if s.trackedMethodID != 0 && o.ShippingMethodID != s.trackedMethodID {
			continue
		}
		tracked = append(tracked, o)
	}
	return tracked, nil
}
