package handler

import (
	"errors"
	"net/http"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/core/server"
	"storefront-api/internal/features/shipping/domain"
	"storefront-api/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ShippingHandler handles HTTP requests for shipping quotes.
type ShippingHandler struct {
	service *service.ShippingService
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(svc *service.ShippingService) *ShippingHandler {
	return &ShippingHandler{service: svc}
}

// Register mounts the shipping routes on router.
func (h *ShippingHandler) Register(router fiber.Router) {
	router.Get("/shipping/methods", h.GetMethods)
}

// QuotedMethod is a shipping method priced for the requested subtotal.
type QuotedMethod struct {
	domain.ShippingMethod
	// Quote is the price breakdown with this method.
	Quote domain.Quote `json:"quote"`
}

// GetMethods godoc
// @Summary List eligible shipping methods
// @Description Returns the enabled methods for the destination whose purchase threshold the subtotal covers, each with its quote.
// @Tags shipping
// @Produce json
// @Param region query string true "Region code"
// @Param municipality query string true "Municipality name"
// @Param subtotal query number false "Cart subtotal"
// @Success 200 {array} QuotedMethod
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /shipping/methods [get]
func (h *ShippingHandler) GetMethods(c *fiber.Ctx) error {
	subtotal := decimal.Zero
	if raw := c.Query("subtotal"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			return server.Fail(c, http.StatusBadRequest, "subtotal must be a non-negative number", "subtotal")
		}
		subtotal = d
	}

	methods, err := h.service.ResolveShipping(c.UserContext(), c.Query("region"), c.Query("municipality"), subtotal)
	if err != nil {
		if errors.Is(err, service.ErrLocationRequired) {
			return server.Fail(c, http.StatusBadRequest, err.Error(), "region", "municipality")
		}
		logger.Get().Error("Failed to resolve shipping methods",
			zap.String("ray_id", server.RayID(c)),
			zap.Error(err),
		)
		return server.Fail(c, http.StatusBadGateway, "failed to fetch shipping methods")
	}

	quoted := make([]QuotedMethod, 0, len(methods))
	for _, m := range methods {
		quoted = append(quoted, QuotedMethod{ShippingMethod: m, Quote: h.service.Quote(m, subtotal)})
	}
	return c.JSON(quoted)
}
