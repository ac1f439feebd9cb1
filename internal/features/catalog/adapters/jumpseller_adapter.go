package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"storefront-api/internal/core/jumpseller"
	"storefront-api/internal/features/catalog/domain"
)

const (
	// categoryFetchLimit is how many products of a category are fetched before local pagination.
	categoryFetchLimit = 100
	searchPageSize     = 5
)

// JumpsellerAdapter implements the ProductCatalog interface using the Jumpseller API.
type JumpsellerAdapter struct {
	client *jumpseller.Client
}

// NewJumpsellerAdapter creates a new instance of JumpsellerAdapter.
func NewJumpsellerAdapter(client *jumpseller.Client) *JumpsellerAdapter {
	return &JumpsellerAdapter{client: client}
}

// Product fetches a single product.
func (a *JumpsellerAdapter) Product(ctx context.Context, id int64) (*domain.Product, error) {
	var env jumpseller.ProductEnvelope
	if err := a.client.Get(ctx, fmt.Sprintf("/products/%d.json", id), nil, &env); err != nil {
		if jumpseller.IsNotFound(err) {
			return nil, fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to fetch product %d: %w", id, err)
	}

	product := toDomain(env.Product)
	return &product, nil
}

// Categories fetches every category.
func (a *JumpsellerAdapter) Categories(ctx context.Context) ([]domain.Category, error) {
	var raw []jumpseller.CategoryEnvelope
	if err := a.client.Get(ctx, "/categories.json", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(raw))
	for _, env := range raw {
		categories = append(categories, domain.Category{ID: env.Category.ID, Name: env.Category.Name})
	}
	return categories, nil
}

// ProductsByCategory fetches the products of a category.
func (a *JumpsellerAdapter) ProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(categoryFetchLimit))

	var raw []jumpseller.ProductEnvelope
	path := fmt.Sprintf("/products/category/%d.json", categoryID)
	if err := a.client.Get(ctx, path, query, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch products of category %d: %w", categoryID, err)
	}

	return toDomainList(raw), nil
}

// Search runs a product search. Only ids and names are populated.
func (a *JumpsellerAdapter) Search(ctx context.Context, q string, page int) ([]domain.Product, error) {
	query := url.Values{}
	query.Set("query", q)
	query.Set("fields", "name,id")
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(searchPageSize))

	var raw []jumpseller.ProductEnvelope
	if err := a.client.Get(ctx, "/products/search.json", query, &raw); err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return toDomainList(raw), nil
}

func toDomainList(raw []jumpseller.ProductEnvelope) []domain.Product {
	products := make([]domain.Product, 0, len(raw))
	for _, env := range raw {
		products = append(products, toDomain(env.Product))
	}
	return products
}

func toDomain(p jumpseller.Product) domain.Product {
	product := domain.Product{
		ID:              p.ID,
		Name:            p.Name,
		MetaDescription: p.MetaDescription,
		Price:           p.Price.Decimal,
		Currency:        p.Currency,
		Stock:           p.Stock,
		StockUnlimited:  p.StockUnlimited,
		Status:          p.Status,
		Permalink:       p.Permalink,
		Images:          make([]string, 0, min(len(p.Images), domain.MaxProductImages)),
	}
	for _, img := range p.Images {
		if len(product.Images) == domain.MaxProductImages {
			break
		}
		product.Images = append(product.Images, img.URL)
	}
	for _, c := range p.Categories {
		product.Categories = append(product.Categories, domain.Category{ID: c.ID, Name: c.Name})
	}
	for _, v := range p.Variants {
		product.Variants = append(product.Variants, domain.Variant{ID: v.ID, Name: v.Name})
	}
	return product
}
