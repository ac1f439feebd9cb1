package handler

import (
	"errors"
	"net/http"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/core/server"
	"storefront-api/internal/features/tracking/domain"
	"storefront-api/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// Register mounts the tracking routes on router.
func (h *TrackingHandler) Register(router fiber.Router) {
	router.Get("/tracking/:number", h.GetTracking)
	router.Post("/tracking", h.PostTracking)
}

// TrackRequest is the body of POST /tracking.
type TrackRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// GetTracking godoc
// @Summary Track a shipment
// @Description Retrieves the normalized tracking record of a Blue Express shipment.
// @Tags tracking
// @Produce json
// @Param number path string true "Tracking Number"
// @Success 200 {object} domain.Result
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /tracking/{number} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	return h.track(c, c.Params("number"))
}

// PostTracking godoc
// @Summary Track a shipment
// @Description Same as GET /tracking/{number} with the number in the body.
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body TrackRequest true "Tracking number"
// @Success 200 {object} domain.Result
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /tracking [post]
func (h *TrackingHandler) PostTracking(c *fiber.Ctx) error {
	var req TrackRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	return h.track(c, req.TrackingNumber)
}

func (h *TrackingHandler) track(c *fiber.Ctx, trackingNumber string) error {
	record, err := h.trackingService.TrackShipment(c.UserContext(), trackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrackingNumberRequired):
			return server.Fail(c, http.StatusBadRequest, err.Error(), "tracking_number")
		case errors.Is(err, service.ErrTrackingNotFound):
			return server.Fail(c, http.StatusNotFound, err.Error())
		}

		logger.Get().Error("Failed to track shipment",
			zap.String("tracking_number", trackingNumber),
			zap.String("ray_id", server.RayID(c)),
			zap.Error(err),
		)
		return server.Fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(domain.Result{Success: true, Data: record})
}
