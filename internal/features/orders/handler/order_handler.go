package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/core/server"
	"storefront-api/internal/features/orders/domain"
	"storefront-api/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader carries the client-chosen deduplication key of a checkout.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// Register mounts the order routes on router.
func (h *OrderHandler) Register(router fiber.Router) {
	router.Post("/checkout", h.Checkout)
	router.Get("/orders/:id", h.GetOrder)
}

// Checkout handles a one-shot checkout submission.
// @Summary Submit a complete checkout
// @Description Validates both addresses, reconciles the customer, resolves the cart and creates the order.
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body domain.CheckoutRequest true "Checkout"
// @Success 200 {object} domain.Result
// @Failure 400 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Failure 503 {object} server.ErrorResponse
// @Router /checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var req domain.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	req.IdempotencyKey = c.Get(IdempotencyKeyHeader)

	order, err := h.service.AssembleAndSubmitOrder(c.UserContext(), req)
	if err != nil {
		return CheckoutFailure(c, err)
	}

	return c.Status(http.StatusOK).JSON(domain.Result{Success: true, Order: order})
}

// CheckoutFailure maps an order assembly error to its HTTP response.
func CheckoutFailure(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return server.Fail(c, http.StatusBadRequest, vErr.Error(), vErr.Fields...)
	case errors.Is(err, domain.ErrEmptyCart):
		return server.Fail(c, http.StatusBadRequest, err.Error(), "items")
	case errors.Is(err, domain.ErrIdempotencyKeyRequired):
		return server.Fail(c, http.StatusBadRequest, err.Error(), IdempotencyKeyHeader)
	case errors.Is(err, domain.ErrNoProductsResolved):
		return server.Fail(c, http.StatusBadRequest, err.Error(), "items")
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return server.Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrIdempotencyUnavailable):
		return server.Fail(c, http.StatusServiceUnavailable, domain.ErrIdempotencyUnavailable.Error())
	}

	logger.Get().Error("Checkout failed",
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.Fail(c, http.StatusBadGateway, err.Error())
}

// GetOrder handles the request to retrieve an order context-aware error handling.
// @Summary Get Order by ID
// @Description Fetch order details using Order ID and Email.
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Param email query string true "Customer Email"
// @Success 200 {object} domain.Order
// @Failure 400 {object} server.ErrorResponse
// @Failure 401 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return server.Fail(c, http.StatusBadRequest, "Order ID must be a positive integer", "id")
	}

	email := c.Query("email")
	if email == "" {
		return server.Fail(c, http.StatusBadRequest, "Email is required", "email")
	}

	order, err := h.service.GetOrder(c.UserContext(), orderID, email)
	if err != nil {
		logger.Get().Error("Failed to fetch order",
			zap.Int64("order_id", orderID),
			zap.String("ray_id", server.RayID(c)),
			zap.Error(err),
		)

		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return server.Fail(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrEmailMismatch):
			return server.Fail(c, http.StatusUnauthorized, "Email mismatch")
		}
		return server.Fail(c, http.StatusBadGateway, err.Error())
	}

	return c.Status(http.StatusOK).JSON(order)
}
