package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/features/catalog/domain"
	"storefront-api/internal/features/catalog/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrQueryRequired is returned when a search has no query text.
var ErrQueryRequired = errors.New("search query is required")

const defaultConcurrency = 4

// Skip reasons reported on a Resolution.
const (
	ReasonInvalidID       = "invalid product id"
	ReasonInvalidQuantity = "quantity must be at least 1"
	ReasonNotFound        = "product not found"
	ReasonLookupFailed    = "product lookup failed"
)

// CatalogService reads the store catalog and resolves carts into order lines.
type CatalogService struct {
	catalog ports.ProductCatalog
	// concurrency bounds the parallel product lookups of one request.
	concurrency int
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalog ports.ProductCatalog, concurrency int) *CatalogService {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &CatalogService{
		catalog:     catalog,
		concurrency: concurrency,
	}
}

// ResolveProductLines looks up every cart item and turns it into an order line
// priced at the cart price. Items that cannot be resolved are skipped with a reason.
// Lines keep the relative order of the cart. The only error is cancellation of ctx.
func (s *CatalogService) ResolveProductLines(ctx context.Context, items []domain.CartItem) (domain.Resolution, error) {
	log := logger.Get()

	type outcome struct {
		line   *domain.OrderProductLine
		reason string
	}
	outcomes := make([]outcome, len(items))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, item := range items {
		id, err := strconv.ParseInt(strings.TrimSpace(item.ID), 10, 64)
		if err != nil || id <= 0 {
			outcomes[i].reason = ReasonInvalidID
			continue
		}
		if item.Quantity < 1 {
			outcomes[i].reason = ReasonInvalidQuantity
			continue
		}

		g.Go(func() error {
			product, err := s.catalog.Product(ctx, id)
			if err != nil {
				reason := ReasonLookupFailed
				if errors.Is(err, domain.ErrProductNotFound) {
					reason = ReasonNotFound
				}
				log.Warn("Skipping cart item",
					zap.String("item_id", item.ID),
					zap.String("reason", reason),
					zap.Error(err),
				)
				outcomes[i].reason = reason
				return nil
			}

			outcomes[i].line = &domain.OrderProductLine{
				ProductID: id,
				VariantID: product.DefaultVariantID(),
				Name:      product.Name,
				Qty:       item.Quantity,
				Price:     item.Price.Amount,
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return domain.Resolution{}, err
	}

	res := domain.Resolution{Lines: make([]domain.OrderProductLine, 0, len(items))}
	for i, o := range outcomes {
		if o.line != nil {
			res.Lines = append(res.Lines, *o.line)
			continue
		}
		res.Skipped = append(res.Skipped, domain.SkippedItem{ItemID: items[i].ID, Reason: o.reason})
	}

	if len(res.Skipped) > 0 {
		log.Info("Resolved cart with skipped items",
			zap.Int("lines", len(res.Lines)),
			zap.Int("skipped", len(res.Skipped)),
		)
	}
	return res, nil
}

// Product returns a single product.
func (s *CatalogService) Product(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.catalog.Product(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get product: %w", err)
	}
	return product, nil
}

// Categories lists every category.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// ProductsByCategory returns one page of the available products of a category.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID int64, page, perPage int) (domain.Page, error) {
	products, err := s.catalog.ProductsByCategory(ctx, categoryID)
	if err != nil {
		return domain.Page{}, fmt.Errorf("service: failed to list category products: %w", err)
	}
	return domain.Paginate(availableOnly(products), page, perPage), nil
}

// Search returns the available products matching query, with full details.
// Hits whose details cannot be fetched are dropped.
func (s *CatalogService) Search(ctx context.Context, query string, page int) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}
	if page < 1 {
		page = 1
	}

	hits, err := s.catalog.Search(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search products: %w", err)
	}

	details := make([]*domain.Product, len(hits))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, hit := range hits {
		g.Go(func() error {
			product, err := s.catalog.Product(gctx, hit.ID)
			if err != nil {
				logger.Get().Warn("Dropping search hit", zap.Int64("product_id", hit.ID), zap.Error(err))
				return nil
			}
			details[i] = product
			return nil
		})
	}
	_ = g.Wait()

	products := make([]domain.Product, 0, len(details))
	for _, p := range details {
		if p != nil {
			products = append(products, *p)
		}
	}
	return availableOnly(products), nil
}

func availableOnly(products []domain.Product) []domain.Product {
	available := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Available() {
			available = append(available, p)
		}
	}
	return available
}
