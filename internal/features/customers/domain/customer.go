package domain

import (
	"strings"

	"storefront-api/internal/features/locations/domain"

	"github.com/shopspring/decimal"
)

// Contact is the buyer identity collected at checkout.
type Contact struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
}

// Customer is a store customer record.
type Customer struct {
	ID              int64           `json:"id"`
	Email           string          `json:"email"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Phone           string          `json:"phone"`
	ShippingAddress *domain.Address `json:"shipping_address,omitempty"`
	BillingAddress  *domain.Address `json:"billing_address,omitempty"`
}

// HasShippingAddress reports whether the record carries a usable shipping address.
func (c Customer) HasShippingAddress() bool {
	return c.ShippingAddress != nil && strings.TrimSpace(c.ShippingAddress.Address) != ""
}

// Order is a past order of a customer, as listed on the order history page.
type Order struct {
	ID                 int64           `json:"id"`
	Status             string          `json:"status"`
	ShippingMethodID   int64           `json:"shipping_method_id"`
	ShippingMethodName string          `json:"shipping_method_name,omitempty"`
	TrackingNumber     string          `json:"tracking_number"`
	TrackingCompany    string          `json:"tracking_company,omitempty"`
	Total              decimal.Decimal `json:"total"`
	CreatedAt          string          `json:"created_at"`
}

// Trackable reports whether the order carries a tracking number.
func (o Order) Trackable() bool {
	return strings.TrimSpace(o.TrackingNumber) != ""
}
