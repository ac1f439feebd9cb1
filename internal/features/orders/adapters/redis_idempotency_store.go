package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-api/internal/core/cache"
	"storefront-api/internal/features/orders/domain"
)

const idempotencyPrefix = "checkout:idempotency"

const (
	statePending = "pending"
	stateDone    = "done"
)

type idempotencyRecord struct {
	State string        `json:"state"`
	Order *domain.Order `json:"order,omitempty"`
}

// RedisIdempotencyStore implements ports.IdempotencyStore on top of the cache.
type RedisIdempotencyStore struct {
	cache      cache.Cache
	pendingTTL time.Duration
	ttl        time.Duration
}

// NewRedisIdempotencyStore creates a new RedisIdempotencyStore. An unfinished
// claim expires after pendingTTL; a completed one after ttl.
func NewRedisIdempotencyStore(c cache.Cache, pendingTTL, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{
		cache:      c,
		pendingTTL: pendingTTL,
		ttl:        ttl,
	}
}

// Begin claims key with SETNX. The claim lapses after pendingTTL so a crash
// between Begin and Complete does not lock the key out for the full ttl.
func (s *RedisIdempotencyStore) Begin(ctx context.Context, key string) (*domain.Order, error) {
	pending, err := json.Marshal(idempotencyRecord{State: statePending})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal idempotency record: %w", err)
	}

	claimed, err := s.cache.SetNX(ctx, cacheKey(key), pending, s.pendingTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	if claimed {
		return nil, nil
	}

	data, err := s.cache.Get(ctx, cacheKey(key))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			// Released between SETNX and GET: the other submission failed.
			return nil, domain.ErrSubmissionInProgress
		}
		return nil, fmt.Errorf("failed to read idempotency key: %w", err)
	}

	var record idempotencyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal idempotency record: %w", err)
	}
	if record.State == stateDone && record.Order != nil {
		return record.Order, nil
	}
	return nil, domain.ErrSubmissionInProgress
}

// Complete stores order under key for the full ttl.
func (s *RedisIdempotencyStore) Complete(ctx context.Context, key string, order *domain.Order) error {
	data, err := json.Marshal(idempotencyRecord{State: stateDone, Order: order})
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency record: %w", err)
	}
	if err := s.cache.Set(ctx, cacheKey(key), data, s.ttl); err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	return nil
}

// Release deletes the claim on key.
func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.cache.Delete(ctx, cacheKey(key)); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}

func cacheKey(key string) string {
	return cache.Key(idempotencyPrefix, key)
}
