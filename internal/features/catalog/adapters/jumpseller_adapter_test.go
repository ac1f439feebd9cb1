package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-api/internal/core/config"
	"storefront-api/internal/core/jumpseller"
	"storefront-api/internal/features/catalog/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(url string) *JumpsellerAdapter {
	return NewJumpsellerAdapter(jumpseller.NewClient(config.JumpsellerConfig{URL: url, Login: "l", AuthToken: "t"}, time.Second))
}

const productJSON = `{"product":{
  "id": 100, "name": "Polera", "price": 10000.0, "stock": 5, "stock_unlimited": false,
  "status": "available", "meta_description": "Polera de algodón",
  "images": [{"url":"a.jpg"},{"url":"b.jpg"},{"url":"c.jpg"},{"url":"d.jpg"}],
  "categories": [{"id": 3, "name": "Ropa"}],
  "variants": [{"id": 1001, "name": "S"}, {"id": 1002, "name": "M"}]
}}`

func TestJumpsellerAdapter_Product(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/100.json", r.URL.Path)
		w.Write([]byte(productJSON))
	}))
	defer server.Close()

	product, err := newAdapter(server.URL).Product(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, "Polera", product.Name)
	assert.True(t, decimal.NewFromInt(10000).Equal(product.Price))
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, product.Images)
	assert.Equal(t, int64(1001), product.DefaultVariantID())
	assert.True(t, product.Available())
}

func TestJumpsellerAdapter_Product_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newAdapter(server.URL).Product(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestJumpsellerAdapter_Categories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories.json", r.URL.Path)
		w.Write([]byte(`[{"category":{"id":3,"name":"Ropa"}},{"category":{"id":4,"name":"Accesorios"}}]`))
	}))
	defer server.Close()

	categories, err := newAdapter(server.URL).Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 3, Name: "Ropa"}, {ID: 4, Name: "Accesorios"}}, categories)
}

func TestJumpsellerAdapter_ProductsByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category/3.json", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(`[` + productJSON + `]`))
	}))
	defer server.Close()

	products, err := newAdapter(server.URL).ProductsByCategory(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(100), products[0].ID)
}

func TestJumpsellerAdapter_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/products/search.json", r.URL.Path)
		assert.Equal(t, "polera roja", q.Get("query"))
		assert.Equal(t, "name,id", q.Get("fields"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "5", q.Get("limit"))
		w.Write([]byte(`[{"product":{"id":100,"name":"Polera"}}]`))
	}))
	defer server.Close()

	products, err := newAdapter(server.URL).Search(context.Background(), "polera roja", 2)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(100), products[0].ID)
}
