package domain

import (
	"errors"
	"strings"
	"time"

	catalog "storefront-api/internal/features/catalog/domain"
	locations "storefront-api/internal/features/locations/domain"

	"github.com/shopspring/decimal"
)

const (
	// StatusPendingPayment is the status every new order is created with.
	StatusPendingPayment = "Pending Payment"
	// PaymentMethodWebpay is the payment method of every new order.
	PaymentMethodWebpay = "webpay"
)

var (
	// ErrEmptyCart is returned when a checkout has no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoProductsResolved is returned when none of the cart items could be resolved.
	ErrNoProductsResolved = errors.New("no products could be processed for the order")
	// ErrIdempotencyKeyRequired is returned when a submission carries no idempotency key.
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	// ErrSubmissionInProgress is returned when the same idempotency key is already being processed.
	ErrSubmissionInProgress = errors.New("a submission with this idempotency key is already in progress")
	// ErrIdempotencyUnavailable is returned when submissions cannot be deduplicated.
	ErrIdempotencyUnavailable = errors.New("checkout is temporarily unavailable")
)

// ValidationError lists the input fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ContactInfo is the buyer and shipping destination collected on the first checkout step.
type ContactInfo struct {
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Postal       string `json:"postal,omitempty"`
	Municipality string `json:"municipality"`
	Region       string `json:"region"`
}

// ShippingAddress builds the shipping address of the contact.
func (c ContactInfo) ShippingAddress() locations.Address {
	return locations.Address{
		Name:         strings.TrimSpace(c.Name),
		Surname:      strings.TrimSpace(c.Surname),
		Address:      strings.TrimSpace(c.Address),
		City:         strings.TrimSpace(c.City),
		Postal:       strings.TrimSpace(c.Postal),
		Municipality: strings.TrimSpace(c.Municipality),
		Region:       strings.TrimSpace(c.Region),
		Country:      locations.DefaultCountry,
	}
}

// BillingInfo is the invoicing identity and address.
type BillingInfo struct {
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	TaxID        string `json:"taxid"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Postal       string `json:"postal,omitempty"`
	Municipality string `json:"municipality"`
	Region       string `json:"region"`
}

// BillingAddress builds the billing address.
func (b BillingInfo) BillingAddress() locations.Address {
	return locations.Address{
		Name:         strings.TrimSpace(b.Name),
		Surname:      strings.TrimSpace(b.Surname),
		TaxID:        strings.TrimSpace(b.TaxID),
		Address:      strings.TrimSpace(b.Address),
		City:         strings.TrimSpace(b.City),
		Postal:       strings.TrimSpace(b.Postal),
		Municipality: strings.TrimSpace(b.Municipality),
		Region:       strings.TrimSpace(b.Region),
		Country:      locations.DefaultCountry,
	}
}

// CheckoutRequest is everything needed to place an order.
type CheckoutRequest struct {
	Contact          ContactInfo        `json:"contact"`
	Billing          BillingInfo        `json:"billing"`
	SameAsShipping   bool               `json:"same_as_shipping"`
	Items            []catalog.CartItem `json:"items"`
	ShippingMethodID int64              `json:"shipping_method_id"`
	// ShippingFee is the fee already quoted for the method. When nil the fee is resolved
	// from the shipping method.
	ShippingFee *decimal.Decimal `json:"-"`
	// IdempotencyKey deduplicates submissions of the same checkout.
	IdempotencyKey string `json:"-"`
}

// Addresses returns the shipping and billing addresses of the request. With
// SameAsShipping the billing address is a copy of the shipping one with no tax id.
func (r CheckoutRequest) Addresses() (shipping, billing locations.Address) {
	shipping = r.Contact.ShippingAddress()
	if r.SameAsShipping {
		billing = shipping
		billing.TaxID = ""
		return shipping, billing
	}
	return shipping, r.Billing.BillingAddress()
}

// Validate checks the cart and both addresses. It returns ErrEmptyCart or a
// *ValidationError naming every missing field, prefixed by the address it belongs to.
func (r CheckoutRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrEmptyCart
	}

	var fields []string
	if strings.TrimSpace(r.Contact.Email) == "" {
		fields = append(fields, "contact.email")
	}

	shipping, billing := r.Addresses()
	for _, f := range shipping.MissingFields() {
		fields = append(fields, "shipping_address."+f)
	}
	for _, f := range billing.MissingFields() {
		fields = append(fields, "billing_address."+f)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Draft is an order ready to be created upstream.
type Draft struct {
	CustomerID       int64
	Email            string
	ShippingMethodID int64
	ShippingAddress  locations.Address
	BillingAddress   locations.Address
	Lines            []catalog.OrderProductLine
	Subtotal         decimal.Decimal
	ShippingFee      decimal.Decimal
	Total            decimal.Decimal
	Status           string
	PaymentMethod    string
}

// Order is a store order.
type Order struct {
	// ID is the upstream order id.
	ID int64 `json:"id"`
	// Status is the upstream order status.
	Status string `json:"status"`
	// CustomerID is the store customer the order belongs to.
	CustomerID int64 `json:"customer_id"`
	// Email is the customer's email.
	Email string `json:"email,omitempty"`
	// ShippingMethodID is the selected shipping method.
	ShippingMethodID int64 `json:"shipping_method_id"`
	// ShippingAddress is where the order ships to.
	ShippingAddress locations.Address `json:"shipping_address"`
	// BillingAddress is the invoicing address.
	BillingAddress locations.Address `json:"billing_address"`
	// Products are the resolved order lines.
	Products []catalog.OrderProductLine `json:"products"`
	// Skipped lists cart items that were left out.
	Skipped []catalog.SkippedItem `json:"skipped,omitempty"`
	// Subtotal is the sum of the product lines.
	Subtotal decimal.Decimal `json:"subtotal"`
	// ShippingFee is the fee of the selected method.
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	// Total is subtotal plus shipping fee.
	Total decimal.Decimal `json:"total"`
	// PaymentMethod is the payment method the order awaits.
	PaymentMethod string `json:"payment_method"`
	// CheckoutURL is the upstream payment page, when provided.
	CheckoutURL string `json:"checkout_url,omitempty"`
	// TrackingNumber is set once the order has shipped.
	TrackingNumber string `json:"tracking_number,omitempty"`
	// CreatedAt is the upstream creation timestamp.
	CreatedAt string `json:"created_at,omitempty"`
}

// Result is the outcome of a checkout submission.
type Result struct {
	Success bool   `json:"success"`
	Order   *Order `json:"order,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OrderCreatedEvent is published after an order is created.
type OrderCreatedEvent struct {
	OrderID     int64           `json:"order_id"`
	CustomerID  int64           `json:"customer_id"`
	Email       string          `json:"email"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}
