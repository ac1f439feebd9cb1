package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/core/server"
	"storefront-api/internal/features/catalog/domain"
	"storefront-api/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for catalog browsing.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Register mounts the catalog routes on router.
func (h *CatalogHandler) Register(router fiber.Router) {
	group := router.Group("/catalog")
	group.Get("/products/:id", h.GetProduct)
	group.Get("/categories", h.GetCategories)
	group.Get("/categories/:id/products", h.GetCategoryProducts)
	group.Get("/search", h.Search)
}

// GetProduct godoc
// @Summary Get a product
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return server.Fail(c, http.StatusBadRequest, "product id must be a positive integer", "id")
	}

	product, err := h.service.Product(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return server.Fail(c, http.StatusNotFound, "Product not found")
		}
		return upstreamFailure(c, "product", err)
	}
	return c.JSON(product)
}

// GetCategories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 502 {object} server.ErrorResponse
// @Router /catalog/categories [get]
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories(c.UserContext())
	if err != nil {
		return upstreamFailure(c, "categories", err)
	}
	return c.JSON(categories)
}

// GetCategoryProducts godoc
// @Summary List available products of a category, paginated
// @Tags catalog
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number, from 1"
// @Param per_page query int false "Page size, 1 to 50"
// @Success 200 {object} domain.Page
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /catalog/categories/{id}/products [get]
func (h *CatalogHandler) GetCategoryProducts(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return server.Fail(c, http.StatusBadRequest, "category id must be a positive integer", "id")
	}

	page, err := h.service.ProductsByCategory(c.UserContext(), id, c.QueryInt("page", 1), c.QueryInt("per_page", domain.DefaultPerPage))
	if err != nil {
		return upstreamFailure(c, "category products", err)
	}
	return c.JSON(page)
}

// Search godoc
// @Summary Search products
// @Tags catalog
// @Produce json
// @Param q query string true "Search text"
// @Param page query int false "Page number, from 1"
// @Success 200 {array} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /catalog/search [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	products, err := h.service.Search(c.UserContext(), c.Query("q"), c.QueryInt("page", 1))
	if err != nil {
		if errors.Is(err, service.ErrQueryRequired) {
			return server.Fail(c, http.StatusBadRequest, err.Error(), "q")
		}
		return upstreamFailure(c, "search results", err)
	}
	return c.JSON(products)
}

func upstreamFailure(c *fiber.Ctx, what string, err error) error {
	logger.Get().Error("Failed to fetch "+what,
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.Fail(c, http.StatusBadGateway, "failed to fetch "+what)
}
