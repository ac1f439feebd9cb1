package adapter

import (
	"context"
	"fmt"
	"net/url"

	"storefront-api/internal/core/jumpseller"
	"storefront-api/internal/features/shipping/domain"
)

const countryCode = "CL"

// JumpsellerAdapter implements the ShippingProvider interface using the Jumpseller API.
type JumpsellerAdapter struct {
	client *jumpseller.Client
}

// NewJumpsellerAdapter creates a new instance of JumpsellerAdapter.
func NewJumpsellerAdapter(client *jumpseller.Client) *JumpsellerAdapter {
	return &JumpsellerAdapter{client: client}
}

// ShippingMethods fetches the shipping methods for a region and municipality,
// keeping only the enabled ones.
func (a *JumpsellerAdapter) ShippingMethods(ctx context.Context, regionCode, municipality string) ([]domain.ShippingMethod, error) {
	query := url.Values{}
	query.Set("country_code", countryCode)
	query.Set("state", regionCode)
	query.Set("city", municipality)

	var raw []jumpseller.ShippingMethodEnvelope
	if err := a.client.Get(ctx, "/shipping_methods.json", query, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch shipping methods: %w", err)
	}

	methods := make([]domain.ShippingMethod, 0, len(raw))
	for _, env := range raw {
		if env.ShippingMethod == nil || !env.ShippingMethod.Enabled {
			continue
		}
		methods = append(methods, toDomain(*env.ShippingMethod))
	}
	return methods, nil
}

func toDomain(m jumpseller.ShippingMethod) domain.ShippingMethod {
	method := domain.ShippingMethod{
		ID:           m.ID,
		Name:         m.Name,
		Type:         m.Type,
		Enabled:      m.Enabled,
		FreeShipping: m.FreeShipping,
		Fees:         make([]domain.Fee, 0, len(m.Fee)),
		Services:     make([]domain.Service, 0, len(m.Services)),
	}
	if m.FreeShippingMinimumPurchase.Set {
		threshold := m.FreeShippingMinimumPurchase.Amount
		method.MinimumPurchase = &threshold
	}
	for _, f := range m.Fee {
		method.Fees = append(method.Fees, domain.Fee{Type: f.Type, Value: f.Value.Decimal})
	}
	for _, s := range m.Services {
		method.Services = append(method.Services, domain.Service{
			ID:          s.ID,
			ServiceName: s.ServiceName,
			ServiceCode: s.ServiceCode,
			Name:        s.Name,
			Enabled:     s.Enabled,
		})
	}
	return method
}
