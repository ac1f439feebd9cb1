package handler

import (
	"errors"
	"net/http"

	"storefront-api/internal/core/logger"
	"storefront-api/internal/core/server"
	"storefront-api/internal/features/locations/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocationHandler exposes the region and municipality lists used by the checkout wizard.
type LocationHandler struct {
	service *service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(svc *service.LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// Register mounts the location routes on router.
func (h *LocationHandler) Register(router fiber.Router) {
	group := router.Group("/locations")
	group.Get("/countries", h.GetCountries)
	group.Get("/regions", h.GetRegions)
	group.Get("/regions/:code/municipalities", h.GetMunicipalities)
}

// GetCountries godoc
// @Summary List countries
// @Tags locations
// @Produce json
// @Success 200 {array} domain.Country
// @Failure 502 {object} server.ErrorResponse
// @Router /locations/countries [get]
func (h *LocationHandler) GetCountries(c *fiber.Ctx) error {
	countries, err := h.service.Countries(c.UserContext())
	if err != nil {
		return upstreamFailure(c, "countries", err)
	}
	return c.JSON(countries)
}

// GetRegions godoc
// @Summary List regions
// @Tags locations
// @Produce json
// @Success 200 {array} domain.Region
// @Failure 502 {object} server.ErrorResponse
// @Router /locations/regions [get]
func (h *LocationHandler) GetRegions(c *fiber.Ctx) error {
	regions, err := h.service.Regions(c.UserContext())
	if err != nil {
		return upstreamFailure(c, "regions", err)
	}
	return c.JSON(regions)
}

// GetMunicipalities godoc
// @Summary List municipalities of a region
// @Tags locations
// @Produce json
// @Param code path string true "Region code"
// @Success 200 {array} domain.Municipality
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /locations/regions/{code}/municipalities [get]
func (h *LocationHandler) GetMunicipalities(c *fiber.Ctx) error {
	municipalities, err := h.service.Municipalities(c.UserContext(), c.Params("code"))
	if err != nil {
		if errors.Is(err, service.ErrRegionRequired) {
			return server.Fail(c, http.StatusBadRequest, err.Error(), "region")
		}
		return upstreamFailure(c, "municipalities", err)
	}
	return c.JSON(municipalities)
}

func upstreamFailure(c *fiber.Ctx, what string, err error) error {
	logger.Get().Error("Failed to fetch "+what,
		zap.String("ray_id", server.RayID(c)),
		zap.Error(err),
	)
	return server.Fail(c, http.StatusBadGateway, "failed to fetch "+what)
}
