package ports

import (
	"context"

	"storefront-api/internal/features/catalog/domain"
)

// ProductCatalog defines the interface for reading the store catalog.
// This is a Secondary Port (Driven Port).
type ProductCatalog interface {
	// Product returns one product. domain.ErrProductNotFound (wrapped) when absent.
	Product(ctx context.Context, id int64) (*domain.Product, error)
	// Categories lists every category.
	Categories(ctx context.Context) ([]domain.Category, error)
	// ProductsByCategory lists the products of a category, in upstream order.
	ProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	// Search returns the ids and names of products matching query.
	Search(ctx context.Context, query string, page int) ([]domain.Product, error)
}
