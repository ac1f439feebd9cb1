package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-api/internal/core/server"
	"storefront-api/internal/features/tracking/domain"
	"storefront-api/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTrackingProvider is a mock implementation of TrackingProvider for testing.
type mockTrackingProvider struct {
	returnRecord *domain.TrackingRecord
	returnError  error
	ctxErr       error
}

// Track implements TrackingProvider.
func (m *mockTrackingProvider) Track(ctx context.Context, trackingNumber string) (*domain.TrackingRecord, error) {
	m.ctxErr = ctx.Err()
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.returnRecord, nil
}

func setupApp(provider *mockTrackingProvider) *fiber.App {
	handler := NewTrackingHandler(service.NewTrackingService(provider))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	handler.Register(app)
	return app
}

// TestTrackingHandler_GetTracking_Success verifies successful tracking retrieval.
func TestTrackingHandler_GetTracking_Success(t *testing.T) {
	app := setupApp(&mockTrackingProvider{
		returnRecord: &domain.TrackingRecord{
			TrackingNumber: "12345",
			Status:         domain.TrackingStatusDelivered,
			Events:         []domain.TrackingEvent{{Date: "2024-03-10T08:05:00", Status: "EN"}},
		},
	})

	req := httptest.NewRequest("GET", "/tracking/12345", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result domain.Result
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Data)
	assert.Equal(t, domain.TrackingStatusDelivered, result.Data.Status)
	assert.Len(t, result.Data.Events, 1)
}

// TestTrackingHandler_PassesLiveContext verifies the provider receives a
// context that is not already cancelled.
func TestTrackingHandler_PassesLiveContext(t *testing.T) {
	provider := &mockTrackingProvider{
		returnRecord: &domain.TrackingRecord{TrackingNumber: "12345", Status: domain.TrackingStatusInTransit},
	}
	app := setupApp(provider)

	resp, err := app.Test(httptest.NewRequest("GET", "/tracking/12345", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, provider.ctxErr)
}

// TestTrackingHandler_PostTracking_Success verifies the body variant.
func TestTrackingHandler_PostTracking_Success(t *testing.T) {
	app := setupApp(&mockTrackingProvider{
		returnRecord: &domain.TrackingRecord{TrackingNumber: "12345", Status: domain.TrackingStatusInTransit},
	})

	req := httptest.NewRequest("POST", "/tracking", strings.NewReader(`{"tracking_number": "12345"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result domain.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "12345", result.Data.TrackingNumber)
}

// TestTrackingHandler_PostTracking_MissingNumber verifies tracking number validation.
func TestTrackingHandler_PostTracking_MissingNumber(t *testing.T) {
	app := setupApp(&mockTrackingProvider{})

	req := httptest.NewRequest("POST", "/tracking", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Error, "tracking number is required")
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

// TestTrackingHandler_GetTracking_NotFound verifies the carrier not-found response.
func TestTrackingHandler_GetTracking_NotFound(t *testing.T) {
	app := setupApp(&mockTrackingProvider{returnError: domain.ErrTrackingNotFound})

	req := httptest.NewRequest("GET", "/tracking/000", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errResp server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.False(t, errResp.Success)
	assert.Equal(t, "no tracking information found for this number", errResp.Error)
}

// TestTrackingHandler_GetTracking_ProviderError verifies the raw message is surfaced.
func TestTrackingHandler_GetTracking_ProviderError(t *testing.T) {
	app := setupApp(&mockTrackingProvider{returnError: errors.New("error tracking shipment: Unauthorized")})

	req := httptest.NewRequest("GET", "/tracking/12345", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var errResp server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Error, "Unauthorized")
}
