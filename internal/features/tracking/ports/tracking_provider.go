package ports

import (
	"context"

	"storefront-api/internal/features/tracking/domain"
)

// TrackingProvider defines the interface for carrier tracking implementations.
type TrackingProvider interface {
	// Track retrieves the normalized tracking record of a shipment.
	// It returns domain.ErrTrackingNotFound when the carrier has no data.
	Track(ctx context.Context, trackingNumber string) (*domain.TrackingRecord, error)
}
