package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/internal/core/server"
	catalog "storefront-api/internal/features/catalog/domain"
	"storefront-api/internal/features/checkout/domain"
	orders "storefront-api/internal/features/orders/domain"
	shippingsvc "storefront-api/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCheckoutService is a mock implementation of ports.CheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) session(args mock.Arguments) (*domain.Session, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockCheckoutService) Start(ctx context.Context, contact orders.ContactInfo, cart []catalog.CartItem) (*domain.Session, error) {
	return m.session(m.Called(ctx, contact, cart))
}

func (m *MockCheckoutService) Get(ctx context.Context, id string) (*domain.Session, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockCheckoutService) SelectShipping(ctx context.Context, id string, methodID int64) (*domain.Session, error) {
	return m.session(m.Called(ctx, id, methodID))
}

func (m *MockCheckoutService) ConfirmBilling(ctx context.Context, id string, billing orders.BillingInfo, sameAsShipping bool) (*domain.Session, error) {
	return m.session(m.Called(ctx, id, billing, sameAsShipping))
}

func (m *MockCheckoutService) Submit(ctx context.Context, id string) (*domain.Session, error) {
	return m.session(m.Called(ctx, id))
}

func setupApp(service *MockCheckoutService) *fiber.App {
	app := fiber.New()
	NewCheckoutHandler(service).Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, server.ErrorResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var errResp server.ErrorResponse
	if resp.StatusCode >= 400 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	}
	return resp, errResp
}

func TestCheckoutHandler_Start(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockService := new(MockCheckoutService)
		app := setupApp(mockService)

		mockService.On("Start", mock.Anything, mock.MatchedBy(func(c orders.ContactInfo) bool {
			return c.Email == "ana@example.com"
		}), mock.Anything).Return(&domain.Session{ID: "s-1", Stage: domain.StageContactCollected}, nil)

		resp, _ := doJSON(t, app, http.MethodPost, "/checkout/sessions", StartRequest{
			Contact: orders.ContactInfo{Email: "ana@example.com"},
			Items:   []catalog.CartItem{{ID: "1", Quantity: 1}},
		})

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var session domain.Session
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
		assert.Equal(t, "s-1", session.ID)
		assert.Equal(t, domain.StageContactCollected, session.Stage)
	})

	t.Run("Validation error", func(t *testing.T) {
		mockService := new(MockCheckoutService)
		app := setupApp(mockService)

		mockService.On("Start", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &orders.ValidationError{Fields: []string{"contact.email"}})

		resp, errResp := doJSON(t, app, http.MethodPost, "/checkout/sessions", StartRequest{})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{"contact.email"}, errResp.Fields)
	})

	t.Run("Invalid body", func(t *testing.T) {
		app := setupApp(new(MockCheckoutService))

		req := httptest.NewRequest(http.MethodPost, "/checkout/sessions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCheckoutHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		call   string
		args   []any
		body   any
		err    error
		status int
	}{
		{
			name:   "Unknown session",
			method: http.MethodGet,
			path:   "/checkout/sessions/nope",
			call:   "Get",
			args:   []any{mock.Anything, "nope"},
			err:    domain.ErrSessionNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "Out of order billing",
			method: http.MethodPut,
			path:   "/checkout/sessions/s-1/billing",
			call:   "ConfirmBilling",
			args:   []any{mock.Anything, "s-1", mock.Anything, true},
			body:   ConfirmBillingRequest{SameAsShipping: true},
			err:    domain.ErrInvalidTransition,
			status: http.StatusConflict,
		},
		{
			name:   "Ineligible shipping",
			method: http.MethodPut,
			path:   "/checkout/sessions/s-1/shipping",
			call:   "SelectShipping",
			args:   []any{mock.Anything, "s-1", int64(9)},
			body:   SelectShippingRequest{ShippingMethodID: 9},
			err:    shippingsvc.ErrMethodNotEligible,
			status: http.StatusBadRequest,
		},
		{
			name:   "Submission in progress",
			method: http.MethodPost,
			path:   "/checkout/sessions/s-1/submit",
			call:   "Submit",
			args:   []any{mock.Anything, "s-1"},
			err:    orders.ErrSubmissionInProgress,
			status: http.StatusConflict,
		},
		{
			name:   "Upstream failure",
			method: http.MethodPost,
			path:   "/checkout/sessions/s-1/submit",
			call:   "Submit",
			args:   []any{mock.Anything, "s-1"},
			err:    errors.New("store unavailable"),
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCheckoutService)
			app := setupApp(mockService)
			mockService.On(tt.call, tt.args...).Return(nil, tt.err)

			resp, errResp := doJSON(t, app, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.False(t, errResp.Success)
			assert.NotEmpty(t, errResp.Error)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCheckoutHandler_SelectShipping_RequiresMethod(t *testing.T) {
	mockService := new(MockCheckoutService)
	app := setupApp(mockService)

	resp, errResp := doJSON(t, app, http.MethodPut, "/checkout/sessions/s-1/shipping", SelectShippingRequest{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"shipping_method_id"}, errResp.Fields)
	mockService.AssertNotCalled(t, "SelectShipping", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutHandler_Submit(t *testing.T) {
	mockService := new(MockCheckoutService)
	app := setupApp(mockService)

	mockService.On("Submit", mock.Anything, "s-1").Return(&domain.Session{
		ID:    "s-1",
		Stage: domain.StageSubmitted,
		Order: &orders.Order{ID: 5001, Status: orders.StatusPendingPayment},
	}, nil)

	resp, _ := doJSON(t, app, http.MethodPost, "/checkout/sessions/s-1/submit", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var session domain.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.Equal(t, domain.StageSubmitted, session.Stage)
	require.NotNil(t, session.Order)
	assert.Equal(t, int64(5001), session.Order.ID)
}
