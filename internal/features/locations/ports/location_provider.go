package ports

import (
	"context"

	"storefront-api/internal/features/locations/domain"
)

// LocationProvider defines the interface for retrieving countries, regions and municipalities.
// This is a Secondary Port (Driven Port).
type LocationProvider interface {
	// Countries lists the countries known to the store.
	Countries(ctx context.Context) ([]domain.Country, error)
	// Regions lists the regions of the store country.
	Regions(ctx context.Context) ([]domain.Region, error)
	// Municipalities lists the municipalities of a region.
	Municipalities(ctx context.Context, regionCode string) ([]domain.Municipality, error)
}
