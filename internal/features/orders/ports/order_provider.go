package ports

import (
	"context"

	catalog "storefront-api/internal/features/catalog/domain"
	customers "storefront-api/internal/features/customers/domain"
	locations "storefront-api/internal/features/locations/domain"
	"storefront-api/internal/features/orders/domain"
	shipping "storefront-api/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
)

// OrderGateway defines the interface for creating and reading store orders.
// This is a Secondary Port (Driven Port).
type OrderGateway interface {
	// CreateOrder creates the order upstream.
	CreateOrder(ctx context.Context, draft domain.Draft) (*domain.Order, error)
	// GetOrder retrieves an order by id, or nil when it does not exist.
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
}

// IdempotencyStore deduplicates order submissions by key.
type IdempotencyStore interface {
	// Begin claims key. It returns (nil, nil) when the caller now owns the key, the
	// stored order when the key already completed, and domain.ErrSubmissionInProgress
	// when another submission holds it.
	Begin(ctx context.Context, key string) (*domain.Order, error)
	// Complete stores the order created under key.
	Complete(ctx context.Context, key string, order *domain.Order) error
	// Release drops a claim so the submission can be retried.
	Release(ctx context.Context, key string) error
}

// CustomerReconciler resolves the store customer of a checkout.
type CustomerReconciler interface {
	ReconcileCustomer(ctx context.Context, contact customers.Contact, shipping, billing locations.Address) (int64, error)
}

// ProductLineResolver turns cart items into order lines.
type ProductLineResolver interface {
	ResolveProductLines(ctx context.Context, items []catalog.CartItem) (catalog.Resolution, error)
}

// ShippingQuoter finds the eligible shipping method a checkout selected.
type ShippingQuoter interface {
	Method(ctx context.Context, regionCode, municipality string, subtotal decimal.Decimal, methodID int64) (*shipping.ShippingMethod, error)
}
