package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-api/internal/core/cache"
	"storefront-api/internal/features/checkout/domain"
)

const sessionPrefix = "checkout:session"

// RedisSessionRepository implements ports.SessionRepository using the cache.
type RedisSessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisSessionRepository creates a new RedisSessionRepository. Every save
// extends the session lifetime to ttl.
func NewRedisSessionRepository(c cache.Cache, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the session in the cache.
func (r *RedisSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}

	if err := r.cache.Set(ctx, cache.Key(sessionPrefix, session.ID), data, r.ttl); err != nil {
		return fmt.Errorf("failed to save checkout session: %w", err)
	}
	return nil
}

// Get retrieves the session from the cache.
func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.cache.Get(ctx, cache.Key(sessionPrefix, id))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checkout session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout session: %w", err)
	}
	return &session, nil
}
