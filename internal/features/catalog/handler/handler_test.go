package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/internal/features/catalog/domain"
	"storefront-api/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) Product(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockCatalog) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCatalog) ProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockCatalog) Search(ctx context.Context, query string, page int) ([]domain.Product, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func setupApp(catalog *mockCatalog) *fiber.App {
	app := fiber.New()
	NewCatalogHandler(service.NewCatalogService(catalog, 2)).Register(app)
	return app
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	catalog := new(mockCatalog)
	catalog.On("Product", mock.Anything, int64(100)).Return(&domain.Product{ID: 100, Name: "Polera"}, nil)
	catalog.On("Product", mock.Anything, int64(999)).Return(nil, fmt.Errorf("x: %w", domain.ErrProductNotFound))
	catalog.On("Product", mock.Anything, int64(500)).Return(nil, errors.New("timeout"))
	app := setupApp(catalog)

	tests := []struct {
		path     string
		expected int
	}{
		{"/catalog/products/100", http.StatusOK},
		{"/catalog/products/999", http.StatusNotFound},
		{"/catalog/products/500", http.StatusBadGateway},
		{"/catalog/products/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}

func TestCatalogHandler_GetCategoryProducts(t *testing.T) {
	products := make([]domain.Product, 0, 9)
	for i := int64(1); i <= 9; i++ {
		products = append(products, domain.Product{ID: i, Status: "available", Stock: 1})
	}
	catalog := new(mockCatalog)
	catalog.On("ProductsByCategory", mock.Anything, int64(3)).Return(products, nil)

	resp, err := setupApp(catalog).Test(httptest.NewRequest("GET", "/catalog/categories/3/products?page=3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page domain.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, domain.DefaultPerPage, page.PerPage)
	assert.Equal(t, 9, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(9), page.Items[0].ID)
}

func TestCatalogHandler_GetCategories(t *testing.T) {
	catalog := new(mockCatalog)
	catalog.On("Categories", mock.Anything).Return([]domain.Category{{ID: 3, Name: "Ropa"}}, nil)

	resp, err := setupApp(catalog).Test(httptest.NewRequest("GET", "/catalog/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []domain.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	assert.Equal(t, "Ropa", categories[0].Name)
}

func TestCatalogHandler_Search_MissingQuery(t *testing.T) {
	catalog := new(mockCatalog)

	resp, err := setupApp(catalog).Test(httptest.NewRequest("GET", "/catalog/search", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	catalog.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}
