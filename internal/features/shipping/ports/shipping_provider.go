package ports

import (
	"context"

	"storefront-api/internal/features/shipping/domain"
)

// ShippingProvider lists the enabled shipping methods for a destination.
type ShippingProvider interface {
	ShippingMethods(ctx context.Context, regionCode, municipality string) ([]domain.ShippingMethod, error)
}
