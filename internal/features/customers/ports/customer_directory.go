package ports

import (
	"context"

	"storefront-api/internal/features/customers/domain"
	locations "storefront-api/internal/features/locations/domain"
)

// CustomerDirectory defines the interface for the store's customer records.
// This is a Secondary Port (Driven Port).
type CustomerDirectory interface {
	// FindByEmail returns the customer with email, or nil when there is none.
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	// Create stores a new customer and returns it with its assigned id.
	Create(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	// UpdateAddresses replaces both addresses of a customer.
	UpdateAddresses(ctx context.Context, customerID int64, shipping, billing locations.Address) error
	// Orders lists every order placed by a customer.
	Orders(ctx context.Context, customerID int64) ([]domain.Order, error)
}
