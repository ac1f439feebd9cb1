package service

import (
	"context"
	"errors"
	"testing"

	"storefront-api/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockShippingProvider is a mock implementation of ports.ShippingProvider.
type MockShippingProvider struct {
	mock.Mock
}

func (m *MockShippingProvider) ShippingMethods(ctx context.Context, regionCode, municipality string) ([]domain.ShippingMethod, error) {
	args := m.Called(ctx, regionCode, municipality)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingMethod), args.Error(1)
}

func threshold(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func offered() []domain.ShippingMethod {
	return []domain.ShippingMethod{
		{ID: 1, Name: "Estándar", Enabled: true, Fees: []domain.Fee{{Value: decimal.NewFromInt(3990)}}},
		{ID: 2, Name: "Gratis sobre 50k", Enabled: true, FreeShipping: true, MinimumPurchase: threshold(50000)},
		{ID: 3, Name: "Gratis sobre 10k", Enabled: true, FreeShipping: true, MinimumPurchase: threshold(10000)},
	}
}

func TestShippingService_ResolveShipping(t *testing.T) {
	provider := new(MockShippingProvider)
	provider.On("ShippingMethods", mock.Anything, "13", "Santiago").Return(offered(), nil)
	svc := NewShippingService(provider)

	methods, err := svc.ResolveShipping(context.Background(), "13", "Santiago", decimal.NewFromInt(20000))

	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, int64(1), methods[0].ID)
	assert.Equal(t, int64(3), methods[1].ID)
	provider.AssertExpectations(t)
}

func TestShippingService_ResolveShipping_LocationRequired(t *testing.T) {
	provider := new(MockShippingProvider)
	svc := NewShippingService(provider)

	_, err := svc.ResolveShipping(context.Background(), "13", " ", decimal.Zero)

	assert.ErrorIs(t, err, ErrLocationRequired)
	provider.AssertNotCalled(t, "ShippingMethods", mock.Anything, mock.Anything, mock.Anything)
}

func TestShippingService_ResolveShipping_UpstreamError(t *testing.T) {
	upstream := errors.New("connection refused")
	provider := new(MockShippingProvider)
	provider.On("ShippingMethods", mock.Anything, "13", "Santiago").Return(nil, upstream).Once()
	svc := NewShippingService(provider)

	_, err := svc.ResolveShipping(context.Background(), "13", "Santiago", decimal.Zero)

	assert.ErrorIs(t, err, upstream)
	provider.AssertNumberOfCalls(t, "ShippingMethods", 1)
}

func TestShippingService_Method(t *testing.T) {
	provider := new(MockShippingProvider)
	provider.On("ShippingMethods", mock.Anything, "13", "Santiago").Return(offered(), nil)
	svc := NewShippingService(provider)
	ctx := context.Background()

	method, err := svc.Method(ctx, "13", "Santiago", decimal.NewFromInt(20000), 1)
	require.NoError(t, err)
	assert.Equal(t, "Estándar", method.Name)

	_, err = svc.Method(ctx, "13", "Santiago", decimal.NewFromInt(20000), 2)
	assert.ErrorIs(t, err, ErrMethodNotEligible)
}

func TestShippingService_Quote(t *testing.T) {
	svc := NewShippingService(nil)

	q := svc.Quote(offered()[0], decimal.NewFromInt(20000))

	assert.True(t, decimal.NewFromInt(23990).Equal(q.Total))
}
