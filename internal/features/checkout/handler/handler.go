package handler

import (
	"errors"
	"net/http"

	"storefront-api/internal/core/server"
	catalog "storefront-api/internal/features/catalog/domain"
	"storefront-api/internal/features/checkout/domain"
	"storefront-api/internal/features/checkout/ports"
	orders "storefront-api/internal/features/orders/domain"
	ordershandler "storefront-api/internal/features/orders/handler"
	shippingsvc "storefront-api/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for the checkout wizard.
type CheckoutHandler struct {
	service ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// Register mounts the checkout session routes on router.
func (h *CheckoutHandler) Register(router fiber.Router) {
	sessions := router.Group("/checkout/sessions")
	sessions.Post("/", h.Start)
	sessions.Get("/:id", h.Get)
	sessions.Put("/:id/shipping", h.SelectShipping)
	sessions.Put("/:id/billing", h.ConfirmBilling)
	sessions.Post("/:id/submit", h.Submit)
}

// StartRequest opens a checkout session.
type StartRequest struct {
	Contact orders.ContactInfo `json:"contact"`
	Items   []catalog.CartItem `json:"items"`
}

// SelectShippingRequest picks a shipping method.
type SelectShippingRequest struct {
	ShippingMethodID int64 `json:"shipping_method_id"`
}

// ConfirmBillingRequest confirms the billing data.
type ConfirmBillingRequest struct {
	Billing        orders.BillingInfo `json:"billing"`
	SameAsShipping bool               `json:"same_as_shipping"`
}

// Start handles POST /checkout/sessions.
// @Summary Start a checkout
// @Description Validates the contact data and cart and opens a checkout session.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body StartRequest true "Contact and cart"
// @Success 201 {object} domain.Session
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /checkout/sessions [post]
func (h *CheckoutHandler) Start(c *fiber.Ctx) error {
	var req StartRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, http.StatusBadRequest, "Invalid request body")
	}

	session, err := h.service.Start(c.UserContext(), req.Contact, req.Items)
	if err != nil {
		return sessionFailure(c, err)
	}
	return c.Status(http.StatusCreated).JSON(session)
}

// Get handles GET /checkout/sessions/:id.
// @Summary Get a checkout session
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Session
// @Failure 404 {object} server.ErrorResponse
// @Router /checkout/sessions/{id} [get]
func (h *CheckoutHandler) Get(c *fiber.Ctx) error {
	session, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return sessionFailure(c, err)
	}
	return c.JSON(session)
}

// SelectShipping handles PUT /checkout/sessions/:id/shipping.
// @Summary Select the shipping method
// @Description Quotes the method for the session destination and cart. May be repeated until the order is submitted.
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectShippingRequest true "Shipping method"
// @Success 200 {object} domain.Session
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Router /checkout/sessions/{id}/shipping [put]
func (h *CheckoutHandler) SelectShipping(c *fiber.Ctx) error {
	var req SelectShippingRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.ShippingMethodID <= 0 {
		return server.Fail(c, http.StatusBadRequest, "shipping_method_id is required", "shipping_method_id")
	}

	session, err := h.service.SelectShipping(c.UserContext(), c.Params("id"), req.ShippingMethodID)
	if err != nil {
		return sessionFailure(c, err)
	}
	return c.JSON(session)
}

// ConfirmBilling handles PUT /checkout/sessions/:id/billing.
// @Summary Confirm the billing data
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body ConfirmBillingRequest true "Billing data"
// @Success 200 {object} domain.Session
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Router /checkout/sessions/{id}/billing [put]
func (h *CheckoutHandler) ConfirmBilling(c *fiber.Ctx) error {
	var req ConfirmBillingRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, http.StatusBadRequest, "Invalid request body")
	}

	session, err := h.service.ConfirmBilling(c.UserContext(), c.Params("id"), req.Billing, req.SameAsShipping)
	if err != nil {
		return sessionFailure(c, err)
	}
	return c.JSON(session)
}

// Submit handles POST /checkout/sessions/:id/submit.
// @Summary Submit the checkout
// @Description Creates the order. Submitting again returns the same order.
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Session
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Failure 503 {object} server.ErrorResponse
// @Router /checkout/sessions/{id}/submit [post]
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	session, err := h.service.Submit(c.UserContext(), c.Params("id"))
	if err != nil {
		return sessionFailure(c, err)
	}
	return c.JSON(session)
}

func sessionFailure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return server.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return server.Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, shippingsvc.ErrMethodNotEligible):
		return server.Fail(c, http.StatusBadRequest, err.Error(), "shipping_method_id")
	}
	return ordershandler.CheckoutFailure(c, err)
}
