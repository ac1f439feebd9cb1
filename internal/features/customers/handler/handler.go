package handler

import (
	"errors"
	"net/http"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/core/server"
	"storefront-api/internal/features/customers/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CustomerHandler handles HTTP requests related to customers.
type CustomerHandler struct {
	service *service.CustomerService
}

// NewCustomerHandler creates a new instance of CustomerHandler.
func NewCustomerHandler(s *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// Register mounts the customer routes on router.
func (h *CustomerHandler) Register(router fiber.Router) {
	router.Get("/customers/orders", h.GetOrders)
}

// GetOrders handles the request to list a customer's trackable orders.
// @Summary List a customer's orders that carry tracking
// @Description Looks the customer up by email and returns the orders that have a tracking number.
// @Tags customers
// @Produce json
// @Param email query string true "Customer Email"
// @Success 200 {array} domain.Order
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /customers/orders [get]
func (h *CustomerHandler) GetOrders(c *fiber.Ctx) error {
	email := c.Query("email")

	orders, err := h.service.CustomerOrders(c.UserContext(), email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			return server.Fail(c, http.StatusBadRequest, "Email is required", "email")
		case errors.Is(err, service.ErrCustomerNotFound):
			return server.Fail(c, http.StatusNotFound, "Customer not found")
		}

		logger.Get().Error("Failed to fetch customer orders",
			zap.String("ray_id", server.RayID(c)),
			zap.Error(err),
		)
		return server.Fail(c, http.StatusBadGateway, "failed to fetch orders")
	}

	return c.Status(http.StatusOK).JSON(orders)
}
