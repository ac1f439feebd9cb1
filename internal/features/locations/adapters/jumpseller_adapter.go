package adapter

import (
	"context"
	"fmt"
	"net/url"

	"storefront-api/internal/core/jumpseller"
	"storefront-api/internal/features/locations/domain"
)

// JumpsellerAdapter implements the LocationProvider interface using the Jumpseller API.
type JumpsellerAdapter struct {
	client *jumpseller.Client
}

// NewJumpsellerAdapter creates a new instance of JumpsellerAdapter.
func NewJumpsellerAdapter(client *jumpseller.Client) *JumpsellerAdapter {
	return &JumpsellerAdapter{client: client}
}

// Countries fetches the store countries.
func (a *JumpsellerAdapter) Countries(ctx context.Context) ([]domain.Country, error) {
	var raw []jumpseller.Country
	if err := a.client.Get(ctx, "/countries.json", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}

	countries := make([]domain.Country, 0, len(raw))
	for _, c := range raw {
		countries = append(countries, domain.Country{Code: c.Code, Name: c.Name})
	}
	return countries, nil
}

// Regions fetches the regions of the store country.
func (a *JumpsellerAdapter) Regions(ctx context.Context) ([]domain.Region, error) {
	var raw []jumpseller.Region
	path := fmt.Sprintf("/countries/%s/regions.json", domain.DefaultCountry)
	if err := a.client.Get(ctx, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch regions: %w", err)
	}

	regions := make([]domain.Region, 0, len(raw))
	for _, r := range raw {
		regions = append(regions, domain.Region{Code: r.Code, Name: r.Name})
	}
	return regions, nil
}

// Municipalities fetches the municipalities of a region.
func (a *JumpsellerAdapter) Municipalities(ctx context.Context, regionCode string) ([]domain.Municipality, error) {
	var raw []jumpseller.Municipality
	path := fmt.Sprintf("/countries/%s/regions/%s/municipalities.json", domain.DefaultCountry, url.PathEscape(regionCode))
	if err := a.client.Get(ctx, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch municipalities for region %s: %w", regionCode, err)
	}

	municipalities := make([]domain.Municipality, 0, len(raw))
	for _, m := range raw {
		municipalities = append(municipalities, domain.Municipality{Code: m.Code, Name: m.Name})
	}
	return municipalities, nil
}
