package domain

import (
	"testing"

	"storefront-api/internal/features/locations/domain"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_HasShippingAddress(t *testing.T) {
	assert.False(t, Customer{}.HasShippingAddress())
	assert.False(t, Customer{ShippingAddress: &domain.Address{City: "Santiago"}}.HasShippingAddress())
	assert.True(t, Customer{ShippingAddress: &domain.Address{Address: "Av. Siempre Viva 742"}}.HasShippingAddress())
}

func TestOrder_Trackable(t *testing.T) {
	assert.False(t, Order{TrackingNumber: "  "}.Trackable())
	assert.True(t, Order{TrackingNumber: "9876543210"}.Trackable())
}
