package service

import (
	"context"
	"fmt"

	"storefront-api/internal/core/logger"
	catalog "storefront-api/internal/features/catalog/domain"
	"storefront-api/internal/features/checkout/domain"
	"storefront-api/internal/features/checkout/ports"
	orders "storefront-api/internal/features/orders/domain"

	"go.uber.org/zap"
)

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	repo      ports.SessionRepository
	shipping  ports.ShippingSelector
	submitter ports.OrderSubmitter
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(repo ports.SessionRepository, shipping ports.ShippingSelector, submitter ports.OrderSubmitter) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		repo:      repo,
		shipping:  shipping,
		submitter: submitter,
	}
}

// Start opens a session with the contact and cart.
func (s *CheckoutServiceImpl) Start(ctx context.Context, contact orders.ContactInfo, cart []catalog.CartItem) (*domain.Session, error) {
	session, err := domain.NewSession(contact, cart)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("service: failed to save checkout session: %w", err)
	}

	logger.Get().Info("Checkout session started",
		zap.String("session_id", session.ID),
		zap.Int("items", len(cart)),
	)
	return session, nil
}

// Get retrieves a session.
func (s *CheckoutServiceImpl) Get(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get checkout session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// SelectShipping quotes methodID for the session destination and cart subtotal
// and stores it on the session.
func (s *CheckoutServiceImpl) SelectShipping(ctx context.Context, id string, methodID int64) (*domain.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Stage == domain.StageSubmitted {
		return nil, domain.ErrInvalidTransition
	}

	method, err := s.shipping.Method(ctx, session.Contact.Region, session.Contact.Municipality, session.Subtotal(), methodID)
	if err != nil {
		return nil, err
	}

	if err := session.SelectShipping(domain.SelectedShipping{
		MethodID: method.ID,
		Name:     method.Name,
		Fee:      method.EffectiveFee(),
	}); err != nil {
		return nil, err
	}

	return s.save(ctx, session)
}

// ConfirmBilling stores the billing choice of the session.
func (s *CheckoutServiceImpl) ConfirmBilling(ctx context.Context, id string, billing orders.BillingInfo, sameAsShipping bool) (*domain.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.ConfirmBilling(billing, sameAsShipping); err != nil {
		return nil, err
	}

	return s.save(ctx, session)
}

// Submit places the order of a confirmed session. The session id is the
// idempotency key, so a submitted session returns the order it already created.
func (s *CheckoutServiceImpl) Submit(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Stage == domain.StageSubmitted {
		return session, nil
	}

	req, err := session.CheckoutRequest()
	if err != nil {
		return nil, err
	}

	order, err := s.submitter.AssembleAndSubmitOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	session.MarkSubmitted(order)
	if err := s.repo.Save(context.WithoutCancel(ctx), session); err != nil {
		// The order exists; a retry replays it through the idempotency key.
		logger.Get().Warn("Failed to save submitted checkout session",
			zap.String("session_id", session.ID),
			zap.Int64("order_id", order.ID),
			zap.Error(err),
		)
	}
	return session, nil
}

func (s *CheckoutServiceImpl) save(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("service: failed to save checkout session: %w", err)
	}
	return session, nil
}
