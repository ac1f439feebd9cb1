package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/features/shipping/domain"
	"storefront-api/internal/features/shipping/ports"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrLocationRequired is returned when the region or municipality is blank.
	ErrLocationRequired = errors.New("region and municipality are required")
	// ErrMethodNotEligible is returned when a chosen method is not offered for the destination and subtotal.
	ErrMethodNotEligible = errors.New("shipping method is not available for this order")
)

// ShippingService selects the shipping methods an order may use.
type ShippingService struct {
	provider ports.ShippingProvider
}

// NewShippingService creates a new ShippingService.
func NewShippingService(provider ports.ShippingProvider) *ShippingService {
	return &ShippingService{provider: provider}
}

// ResolveShipping returns the enabled methods for the destination whose purchase
// threshold, if any, is covered by subtotal. Upstream order is preserved.
func (s *ShippingService) ResolveShipping(ctx context.Context, regionCode, municipality string, subtotal decimal.Decimal) ([]domain.ShippingMethod, error) {
	regionCode = strings.TrimSpace(regionCode)
	municipality = strings.TrimSpace(municipality)
	if regionCode == "" || municipality == "" {
		return nil, ErrLocationRequired
	}

	methods, err := s.provider.ShippingMethods(ctx, regionCode, municipality)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve shipping: %w", err)
	}

	eligible := make([]domain.ShippingMethod, 0, len(methods))
	for _, m := range methods {
		if m.EligibleFor(subtotal) {
			eligible = append(eligible, m)
		}
	}

	logger.Get().Debug("Resolved shipping methods",
		zap.String("region", regionCode),
		zap.String("municipality", municipality),
		zap.Int("offered", len(methods)),
		zap.Int("eligible", len(eligible)),
	)

	return eligible, nil
}

// Method returns the eligible method with the given id.
func (s *ShippingService) Method(ctx context.Context, regionCode, municipality string, subtotal decimal.Decimal, methodID int64) (*domain.ShippingMethod, error) {
	methods, err := s.ResolveShipping(ctx, regionCode, municipality, subtotal)
	if err != nil {
		return nil, err
	}

	for i := range methods {
		if methods[i].ID == methodID {
			return &methods[i], nil
		}
	}
	return nil, ErrMethodNotEligible
}

// Quote prices subtotal with method.
func (s *ShippingService) Quote(method domain.ShippingMethod, subtotal decimal.Decimal) domain.Quote {
	return domain.NewQuote(method, subtotal)
}
