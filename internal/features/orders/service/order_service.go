package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront-api/internal/core/events"
	"storefront-api/internal/core/logger"
	customers "storefront-api/internal/features/customers/domain"
	"storefront-api/internal/features/orders/domain"
	"storefront-api/internal/features/orders/ports"
	shippingsvc "storefront-api/internal/features/shipping/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrOrderNotFound is returned when the order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrEmailMismatch is returned when the provided email does not match the order's email.
var ErrEmailMismatch = errors.New("email does not match order record")

// publishTimeout bounds how long a successful checkout waits on the event broker.
const publishTimeout = 5 * time.Second

// OrderService assembles checkouts into store orders and reads them back.
type OrderService struct {
	gateway     ports.OrderGateway
	customers   ports.CustomerReconciler
	products    ports.ProductLineResolver
	shipping    ports.ShippingQuoter
	idempotency ports.IdempotencyStore
	publisher   events.Publisher
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	gateway ports.OrderGateway,
	customers ports.CustomerReconciler,
	products ports.ProductLineResolver,
	shipping ports.ShippingQuoter,
	idempotency ports.IdempotencyStore,
	publisher events.Publisher,
) *OrderService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &OrderService{
		gateway:     gateway,
		customers:   customers,
		products:    products,
		shipping:    shipping,
		idempotency: idempotency,
		publisher:   publisher,
	}
}

// AssembleAndSubmitOrder validates the checkout, reconciles the customer, resolves
// the cart and creates the order upstream. Submissions are deduplicated by
// req.IdempotencyKey: a completed key returns the order it created.
func (s *OrderService) AssembleAndSubmitOrder(ctx context.Context, req domain.CheckoutRequest) (order *domain.Order, err error) {
	log := logger.Get()

	key := strings.TrimSpace(req.IdempotencyKey)
	if key == "" {
		return nil, domain.ErrIdempotencyKeyRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prior, err := s.idempotency.Begin(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionInProgress) {
			return nil, err
		}
		log.Error("Idempotency store unavailable", zap.String("idempotency_key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrIdempotencyUnavailable, err)
	}
	if prior != nil {
		log.Info("Replaying completed checkout", zap.String("idempotency_key", key), zap.Int64("order_id", prior.ID))
		return prior, nil
	}

	defer func() {
		if err == nil {
			return
		}
		if relErr := s.idempotency.Release(context.WithoutCancel(ctx), key); relErr != nil {
			log.Warn("Failed to release idempotency key", zap.String("idempotency_key", key), zap.Error(relErr))
		}
	}()

	shippingAddr, billingAddr := req.Addresses()

	customerID, err := s.customers.ReconcileCustomer(ctx, customers.Contact{
		Email:   strings.TrimSpace(req.Contact.Email),
		Name:    shippingAddr.Name,
		Surname: shippingAddr.Surname,
		Phone:   strings.TrimSpace(req.Contact.Phone),
	}, shippingAddr, billingAddr)
	if err != nil {
		return nil, fmt.Errorf("service: failed to reconcile customer: %w", err)
	}

	resolution, err := s.products.ResolveProductLines(ctx, req.Items)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve products: %w", err)
	}
	if len(resolution.Lines) == 0 {
		return nil, domain.ErrNoProductsResolved
	}

	subtotal := resolution.Subtotal()
	fee := s.shippingFee(ctx, req, subtotal)

	order, err = s.gateway.CreateOrder(ctx, domain.Draft{
		CustomerID:       customerID,
		Email:            strings.TrimSpace(req.Contact.Email),
		ShippingMethodID: req.ShippingMethodID,
		ShippingAddress:  shippingAddr,
		BillingAddress:   billingAddr,
		Lines:            resolution.Lines,
		Subtotal:         subtotal,
		ShippingFee:      fee,
		Total:            subtotal.Add(fee),
		Status:           domain.StatusPendingPayment,
		PaymentMethod:    domain.PaymentMethodWebpay,
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}
	order.Skipped = resolution.Skipped

	log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", customerID),
		zap.Int("lines", len(order.Products)),
		zap.Int("skipped", len(order.Skipped)),
		zap.String("total", order.Total.String()),
	)

	if err := s.idempotency.Complete(context.WithoutCancel(ctx), key, order); err != nil {
		log.Warn("Failed to record completed checkout", zap.String("idempotency_key", key), zap.Error(err))
	}
	s.publishCreated(ctx, order)

	return order, nil
}

// shippingFee returns the quoted fee carried by req, or resolves it from the
// selected method. An unknown or ineligible method costs nothing.
func (s *OrderService) shippingFee(ctx context.Context, req domain.CheckoutRequest, subtotal decimal.Decimal) decimal.Decimal {
	if req.ShippingFee != nil {
		return *req.ShippingFee
	}
	if req.ShippingMethodID == 0 || s.shipping == nil {
		return decimal.Zero
	}

	method, err := s.shipping.Method(ctx, req.Contact.Region, req.Contact.Municipality, subtotal, req.ShippingMethodID)
	if err != nil {
		level := zap.WarnLevel
		if errors.Is(err, shippingsvc.ErrMethodNotEligible) {
			level = zap.InfoLevel
		}
		logger.Get().Check(level, "Shipping fee unknown, charging none").Write(
			zap.Int64("shipping_method_id", req.ShippingMethodID),
			zap.Error(err),
		)
		return decimal.Zero
	}
	return method.EffectiveFee()
}

func (s *OrderService) publishCreated(ctx context.Context, order *domain.Order) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Email:       order.Email,
		Subtotal:    order.Subtotal,
		ShippingFee: order.ShippingFee,
		Total:       order.Total,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, strconv.FormatInt(order.ID, 10), event); err != nil {
		logger.Get().Warn("Failed to publish order created event", zap.Int64("order_id", order.ID), zap.Error(err))
	}
}

// GetOrder retrieves an order by ID and validates that the provided email matches the order's email.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64, email string) (*domain.Order, error) {
	order, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !strings.EqualFold(order.Email, strings.TrimSpace(email)) {
		return nil, ErrEmailMismatch
	}

	return order, nil
}
