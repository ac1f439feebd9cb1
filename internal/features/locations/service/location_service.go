package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"storefront-api/internal/core/cache"
	"storefront-api/internal/core/logger"
	"storefront-api/internal/features/locations/domain"
	"storefront-api/internal/features/locations/ports"

	"go.uber.org/zap"
)

// ErrRegionRequired is returned when a municipality lookup has no region code.
var ErrRegionRequired = errors.New("region code is required")

const cachePrefix = "locations"

// LocationService resolves regions and municipalities, caching the upstream lists.
type LocationService struct {
	provider ports.LocationProvider
	cache    cache.Cache
	ttl      time.Duration
}

// NewLocationService creates a new LocationService. A nil cache disables caching.
func NewLocationService(provider ports.LocationProvider, c cache.Cache, ttl time.Duration) *LocationService {
	return &LocationService{
		provider: provider,
		cache:    c,
		ttl:      ttl,
	}
}

// Countries returns the store countries.
func (s *LocationService) Countries(ctx context.Context) ([]domain.Country, error) {
	return cached(ctx, s, cache.Key(cachePrefix, "countries"), s.provider.Countries)
}

// Regions returns the regions of the store country.
func (s *LocationService) Regions(ctx context.Context) ([]domain.Region, error) {
	return cached(ctx, s, cache.Key(cachePrefix, "regions"), s.provider.Regions)
}

// Municipalities returns the municipalities that belong to regionCode.
func (s *LocationService) Municipalities(ctx context.Context, regionCode string) ([]domain.Municipality, error) {
	regionCode = strings.TrimSpace(regionCode)
	if regionCode == "" {
		return nil, ErrRegionRequired
	}

	return cached(ctx, s, cache.Key(cachePrefix, "municipalities", regionCode),
		func(ctx context.Context) ([]domain.Municipality, error) {
			return s.provider.Municipalities(ctx, regionCode)
		})
}

// cached serves key from the cache, falling back to fetch and storing its result.
// Cache failures never fail the lookup.
func cached[T any](ctx context.Context, s *LocationService, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	log := logger.Get()

	if s.cache != nil {
		data, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var items []T
			if err := json.Unmarshal(data, &items); err == nil {
				return items, nil
			}
			log.Warn("Discarding undecodable cache entry", zap.String("key", key))
		case !errors.Is(err, cache.ErrCacheMiss):
			log.Warn("Location cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	// Empty lists are never cached.
	if s.cache != nil && len(items) > 0 {
		if data, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				log.Warn("Location cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return items, nil
}
