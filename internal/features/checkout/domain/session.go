package domain

import (
	"errors"
	"strings"
	"time"

	catalog "storefront-api/internal/features/catalog/domain"
	orders "storefront-api/internal/features/orders/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stage is the position of a checkout session in the wizard.
type Stage string

const (
	StageContactCollected Stage = "CONTACT_COLLECTED"
	StageShippingSelected Stage = "SHIPPING_SELECTED"
	StageBillingConfirmed Stage = "BILLING_CONFIRMED"
	StageSubmitted        Stage = "SUBMITTED"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("checkout session not found")
	// ErrInvalidTransition is returned when a step is taken out of order.
	ErrInvalidTransition = errors.New("checkout step not allowed at this stage")
)

// order returns the position of s in the wizard, 0 for unknown stages.
func (s Stage) order() int {
	switch s {
	case StageContactCollected:
		return 1
	case StageShippingSelected:
		return 2
	case StageBillingConfirmed:
		return 3
	case StageSubmitted:
		return 4
	}
	return 0
}

// SelectedShipping is the shipping method chosen for the session and its fee.
type SelectedShipping struct {
	MethodID int64           `json:"method_id"`
	Name     string          `json:"name"`
	Fee      decimal.Decimal `json:"fee"`
}

// Session is a checkout in progress.
type Session struct {
	ID             string              `json:"id"`
	Stage          Stage               `json:"stage"`
	Contact        orders.ContactInfo  `json:"contact"`
	Cart           []catalog.CartItem  `json:"cart"`
	Shipping       *SelectedShipping   `json:"shipping,omitempty"`
	Billing        *orders.BillingInfo `json:"billing,omitempty"`
	SameAsShipping bool                `json:"same_as_shipping"`
	Order          *orders.Order       `json:"order,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// NewSession starts a checkout for contact and cart.
func NewSession(contact orders.ContactInfo, cart []catalog.CartItem) (*Session, error) {
	if len(cart) == 0 {
		return nil, orders.ErrEmptyCart
	}
	if missing := missingContactFields(contact); len(missing) > 0 {
		return nil, &orders.ValidationError{Fields: missing}
	}

	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Stage:     StageContactCollected,
		Contact:   contact,
		Cart:      cart,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func missingContactFields(c orders.ContactInfo) []string {
	values := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"surname", c.Surname},
		{"email", c.Email},
		{"address", c.Address},
		{"city", c.City},
		{"region", c.Region},
		{"municipality", c.Municipality},
	}

	var missing []string
	for _, v := range values {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, "contact."+v.name)
		}
	}
	return missing
}

// Subtotal is the cart subtotal at cart prices.
func (s *Session) Subtotal() decimal.Decimal {
	return catalog.CartSubtotal(s.Cart)
}

// SelectShipping stores the chosen method. It may be repeated until submission.
func (s *Session) SelectShipping(selected SelectedShipping) error {
	if s.Stage.order() < StageContactCollected.order() || s.Stage == StageSubmitted {
		return ErrInvalidTransition
	}

	s.Shipping = &selected
	if s.Stage.order() < StageShippingSelected.order() {
		s.Stage = StageShippingSelected
	}
	s.touch()
	return nil
}

// ConfirmBilling stores the billing choice. A separate billing address must be complete.
func (s *Session) ConfirmBilling(billing orders.BillingInfo, sameAsShipping bool) error {
	if s.Stage.order() < StageShippingSelected.order() || s.Stage == StageSubmitted {
		return ErrInvalidTransition
	}

	if !sameAsShipping {
		var missing []string
		for _, f := range billing.BillingAddress().MissingFields() {
			missing = append(missing, "billing_address."+f)
		}
		if len(missing) > 0 {
			return &orders.ValidationError{Fields: missing}
		}
	}

	s.SameAsShipping = sameAsShipping
	s.Billing = &billing
	if sameAsShipping {
		s.Billing = nil
	}
	s.Stage = StageBillingConfirmed
	s.touch()
	return nil
}

// CheckoutRequest builds the order submission of a confirmed session, keyed by the session id.
func (s *Session) CheckoutRequest() (orders.CheckoutRequest, error) {
	if s.Stage != StageBillingConfirmed || s.Shipping == nil {
		return orders.CheckoutRequest{}, ErrInvalidTransition
	}

	req := orders.CheckoutRequest{
		Contact:          s.Contact,
		SameAsShipping:   s.SameAsShipping,
		Items:            s.Cart,
		ShippingMethodID: s.Shipping.MethodID,
		IdempotencyKey:   s.ID,
	}
	fee := s.Shipping.Fee
	req.ShippingFee = &fee
	if s.Billing != nil {
		req.Billing = *s.Billing
	}
	return req, nil
}

// MarkSubmitted records the created order.
func (s *Session) MarkSubmitted(order *orders.Order) {
	s.Order = order
	s.Stage = StageSubmitted
	s.touch()
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
