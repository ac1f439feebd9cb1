package ports

import (
	"context"

	catalog "storefront-api/internal/features/catalog/domain"
	"storefront-api/internal/features/checkout/domain"
	orders "storefront-api/internal/features/orders/domain"
	shipping "storefront-api/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
)

// CheckoutService defines the primary port for the checkout wizard.
type CheckoutService interface {
	Start(ctx context.Context, contact orders.ContactInfo, cart []catalog.CartItem) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	SelectShipping(ctx context.Context, id string, methodID int64) (*domain.Session, error)
	ConfirmBilling(ctx context.Context, id string, billing orders.BillingInfo, sameAsShipping bool) (*domain.Session, error)
	Submit(ctx context.Context, id string) (*domain.Session, error)
}

// SessionRepository defines the secondary port for session storage.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	// Get returns nil, nil when the session does not exist or has expired.
	Get(ctx context.Context, id string) (*domain.Session, error)
}

// ShippingSelector finds the eligible shipping method the customer picked.
type ShippingSelector interface {
	Method(ctx context.Context, regionCode, municipality string, subtotal decimal.Decimal, methodID int64) (*shipping.ShippingMethod, error)
}

// OrderSubmitter turns a confirmed checkout into an order.
type OrderSubmitter interface {
	AssembleAndSubmitOrder(ctx context.Context, req orders.CheckoutRequest) (*orders.Order, error)
}
