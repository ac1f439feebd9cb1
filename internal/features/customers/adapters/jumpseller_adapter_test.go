package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-api/internal/core/config"
	"storefront-api/internal/core/jumpseller"
	"storefront-api/internal/features/customers/domain"
	locations "storefront-api/internal/features/locations/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(url string) *JumpsellerAdapter {
	return NewJumpsellerAdapter(jumpseller.NewClient(config.JumpsellerConfig{URL: url, Login: "l", AuthToken: "t"}, time.Second))
}

func TestJumpsellerAdapter_FindByEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/email/ana@example.cl.json", r.URL.Path)
		w.Write([]byte(`{"customer":{"id":42,"email":"ana@example.cl","shipping_address":{"address":"Av. Matta 100","region":"13"}}}`))
	}))
	defer server.Close()

	customer, err := newAdapter(server.URL).FindByEmail(context.Background(), "ana@example.cl")

	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, int64(42), customer.ID)
	assert.True(t, customer.HasShippingAddress())
	assert.Nil(t, customer.BillingAddress)
}

func TestJumpsellerAdapter_FindByEmail_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Customer not found"}`))
	}))
	defer server.Close()

	customer, err := newAdapter(server.URL).FindByEmail(context.Background(), "nobody@example.cl")

	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestJumpsellerAdapter_FindByEmail_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newAdapter(server.URL).FindByEmail(context.Background(), "ana@example.cl")

	require.Error(t, err)
}

func TestJumpsellerAdapter_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers.json", r.URL.Path)

		var body jumpseller.CustomerEnvelope
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.cl", body.Customer.Email)
		assert.Equal(t, "Ana", body.Customer.FirstName)
		if assert.NotNil(t, body.Customer.ShippingAddress) {
			assert.Equal(t, "CL", body.Customer.ShippingAddress.Country)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"customer":{"id":77,"email":"ana@example.cl"}}`))
	}))
	defer server.Close()

	addr := locations.Address{Name: "Ana", Surname: "Rojas", Address: "Av. Matta 100", City: "Santiago", Region: "13", Country: "CL"}
	created, err := newAdapter(server.URL).Create(context.Background(), domain.Customer{
		Email:           "ana@example.cl",
		FirstName:       "Ana",
		LastName:        "Rojas",
		ShippingAddress: &addr,
		BillingAddress:  &addr,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)
}

func TestJumpsellerAdapter_UpdateAddresses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/customers/42.json", r.URL.Path)

		var body map[string]map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body["customer"], "shipping_address")
		assert.Contains(t, body["customer"], "billing_address")
		assert.NotContains(t, body["customer"], "email")

		w.Write([]byte(`{"customer":{"id":42}}`))
	}))
	defer server.Close()

	addr := locations.Address{Address: "Av. Matta 100"}
	err := newAdapter(server.URL).UpdateAddresses(context.Background(), 42, addr, addr)

	require.NoError(t, err)
}

func TestJumpsellerAdapter_Orders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/42/orders.json", r.URL.Path)
		w.Write([]byte(`[
			{"order":{"id":1,"status":"Paid","shipping_method_id":689500,"tracking_number":"BX123","total":23990.0}},
			{"order":{"id":2,"status":"Pending Payment","shipping_method_id":1,"total":"1000"}}
		]`))
	}))
	defer server.Close()

	orders, err := newAdapter(server.URL).Orders(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "BX123", orders[0].TrackingNumber)
	assert.True(t, decimal.NewFromInt(23990).Equal(orders[0].Total))
	assert.True(t, decimal.NewFromInt(1000).Equal(orders[1].Total))
}
