package adapter

import (
	"context"
	"testing"
	"time"

	"storefront-api/internal/core/cache"
	catalog "storefront-api/internal/features/catalog/domain"
	"storefront-api/internal/features/checkout/domain"
	orders "storefront-api/internal/features/orders/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*miniredis.Miniredis, *RedisSessionRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })
	return mr, NewRedisSessionRepository(adapter, 2*time.Hour)
}

func TestRedisSessionRepository_SaveGet(t *testing.T) {
	mr, repo := setupRepository(t)
	ctx := context.Background()

	session, err := domain.NewSession(orders.ContactInfo{
		Name:         "Ana",
		Surname:      "Rojas",
		Email:        "ana@example.com",
		Address:      "Av. Siempre Viva 742",
		City:         "Santiago",
		Municipality: "Providencia",
		Region:       "13",
	}, []catalog.CartItem{
		{ID: "101", Quantity: 1, Price: catalog.Price{Amount: decimal.NewFromInt(15000), CurrencyCode: "CLP"}},
	})
	require.NoError(t, err)
	require.NoError(t, session.SelectShipping(domain.SelectedShipping{MethodID: 7, Name: "Express", Fee: decimal.NewFromInt(3990)}))

	require.NoError(t, repo.Save(ctx, session))

	key := "checkout:session:" + session.ID
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 2*time.Hour, mr.TTL(key))

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, domain.StageShippingSelected, got.Stage)
	assert.Equal(t, "ana@example.com", got.Contact.Email)
	require.NotNil(t, got.Shipping)
	assert.True(t, got.Shipping.Fee.Equal(decimal.NewFromInt(3990)))
}

func TestRedisSessionRepository_Missing(t *testing.T) {
	_, repo := setupRepository(t)

	got, err := repo.Get(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionRepository_Expired(t *testing.T) {
	mr, repo := setupRepository(t)
	ctx := context.Background()

	session := &domain.Session{ID: "abc", Stage: domain.StageContactCollected}
	require.NoError(t, repo.Save(ctx, session))

	mr.FastForward(3 * time.Hour)

	got, err := repo.Get(ctx, "abc")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionRepository_Unavailable(t *testing.T) {
	mr, repo := setupRepository(t)
	mr.Close()

	_, err := repo.Get(context.Background(), "abc")
	assert.Error(t, err)
}
