package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/features/tracking/domain"
	"storefront-api/internal/features/tracking/ports"

	"go.uber.org/zap"
)

var (
	// ErrTrackingNumberRequired is returned when the tracking number is blank.
	ErrTrackingNumberRequired = errors.New("tracking number is required")
	// ErrTrackingNotFound is returned when the carrier has no data for the number.
	ErrTrackingNotFound = domain.ErrTrackingNotFound
)

// TrackingService normalizes carrier tracking lookups.
type TrackingService struct {
	provider ports.TrackingProvider
}

// NewTrackingService creates a new TrackingService with the given provider.
func NewTrackingService(provider ports.TrackingProvider) *TrackingService {
	return &TrackingService{
		provider: provider,
	}
}

// TrackShipment retrieves the tracking record of trackingNumber.
func (s *TrackingService) TrackShipment(ctx context.Context, trackingNumber string) (*domain.TrackingRecord, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, ErrTrackingNumberRequired
	}

	record, err := s.provider.Track(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, domain.ErrTrackingNotFound) {
			return nil, ErrTrackingNotFound
		}
		return nil, fmt.Errorf("failed to get tracking from provider: %w", err)
	}

	logger.Get().Debug("Shipment tracked",
		zap.String("tracking_number", trackingNumber),
		zap.String("status", string(record.Status)),
		zap.Int("events", len(record.Events)),
	)
	return record, nil
}
