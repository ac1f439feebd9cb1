package jumpseller

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a money value that decodes from JSON numbers or numeric strings
// and always encodes as a bare JSON number.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON encodes the amount as an unquoted number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts 10000, 10000.0, "10000.0" and null.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.UnmarshalJSON(b)
}

// MinimumPurchase models free_shipping_minimum_purchase, which Jumpseller sends
// either as false (no threshold) or as a numeric threshold.
type MinimumPurchase struct {
	// Set is true when a threshold applies.
	Set bool
	// Amount is the threshold value when Set.
	Amount decimal.Decimal
}

// UnmarshalJSON decodes booleans, numbers and numeric strings.
func (m *MinimumPurchase) UnmarshalJSON(b []byte) error {
	*m = MinimumPurchase{}
	switch string(b) {
	case "null", "false", `""`:
		return nil
	case "true":
		// A bare true carries no threshold to compare against.
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("invalid free_shipping_minimum_purchase %s: %w", string(b), err)
	}
	if d.IsPositive() {
		m.Set = true
		m.Amount = d
	}
	return nil
}

// MarshalJSON mirrors the upstream encoding.
func (m MinimumPurchase) MarshalJSON() ([]byte, error) {
	if !m.Set {
		return []byte("false"), nil
	}
	return []byte(m.Amount.String()), nil
}

// Address is a customer shipping or billing address.
type Address struct {
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	TaxID        string `json:"taxid,omitempty"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Postal       string `json:"postal"`
	Municipality string `json:"municipality"`
	Region       string `json:"region"`
	Country      string `json:"country"`
}

// Customer is a store customer record.
type Customer struct {
	ID              int64    `json:"id,omitempty"`
	Email           string   `json:"email,omitempty"`
	FirstName       string   `json:"first_name,omitempty"`
	LastName        string   `json:"last_name,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
	BillingAddress  *Address `json:"billing_address,omitempty"`
}

// CustomerEnvelope wraps a customer in request and response bodies.
type CustomerEnvelope struct {
	Customer Customer `json:"customer"`
}

// Category is a product category.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryEnvelope wraps a category in list responses.
type CategoryEnvelope struct {
	Category Category `json:"category"`
}

// Image is a product image.
type Image struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// Variant is a product variant.
type Variant struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     Amount `json:"price"`
	Stock     int    `json:"stock"`
	SKU       string `json:"sku"`
	Status    string `json:"status"`
}

// Product is a catalog product.
type Product struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	MetaDescription string     `json:"meta_description"`
	Price           Amount     `json:"price"`
	Stock           int        `json:"stock"`
	StockUnlimited  bool       `json:"stock_unlimited"`
	SKU             string     `json:"sku"`
	Status          string     `json:"status"`
	Permalink       string     `json:"permalink"`
	Currency        string     `json:"currency"`
	Categories      []Category `json:"categories"`
	Images          []Image    `json:"images"`
	Variants        []Variant  `json:"variants"`
}

// ProductEnvelope wraps a product in responses.
type ProductEnvelope struct {
	Product Product `json:"product"`
}

// ShippingFee is one entry of a shipping method fee schedule.
type ShippingFee struct {
	Type  string `json:"type"`
	Value Amount `json:"value"`
}

// ShippingService is a carrier service offered by a shipping method.
type ShippingService struct {
	ID          int64  `json:"id"`
	ServiceName string `json:"service_name"`
	ServiceCode string `json:"service_code"`
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
}

// ShippingMethod is a store shipping method.
type ShippingMethod struct {
	ID                          int64             `json:"id"`
	Type                        string            `json:"type"`
	Name                        string            `json:"name"`
	Enabled                     bool              `json:"enabled"`
	FreeShipping                bool              `json:"free_shipping"`
	FreeShippingMinimumPurchase MinimumPurchase   `json:"free_shipping_minimum_purchase"`
	Fee                         []ShippingFee     `json:"fee"`
	State                       string            `json:"state"`
	City                        string            `json:"city"`
	Services                    []ShippingService `json:"services"`
}

// ShippingMethodEnvelope wraps a shipping method in list responses.
type ShippingMethodEnvelope struct {
	ShippingMethod *ShippingMethod `json:"shipping_method"`
}

// Country is a country supported by the store.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Region is a first-level administrative division of a country.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Municipality is a second-level administrative division within a region.
type Municipality struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// OrderCustomer is the customer block of an order.
type OrderCustomer struct {
	ID              int64    `json:"id,omitempty"`
	Email           string   `json:"email,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
	BillingAddress  *Address `json:"billing_address,omitempty"`
}

// OrderProduct is a product line of an order.
type OrderProduct struct {
	ID        int64  `json:"id"`
	VariantID int64  `json:"variant_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Qty       int    `json:"qty"`
	Price     Amount `json:"price"`
	Discount  Amount `json:"discount"`
}

// BillingInformation carries invoicing metadata.
type BillingInformation struct {
	BusinessActivity string `json:"business_activity"`
	CompanyName      string `json:"company_name"`
	TaxpayerType     string `json:"taxpayer_type"`
}

// Order is a store order, used both for creation payloads and responses.
type Order struct {
	ID                   int64               `json:"id,omitempty"`
	Status               string              `json:"status,omitempty"`
	ShippingMethodID     int64               `json:"shipping_method_id,omitempty"`
	ShippingMethodName   string              `json:"shipping_method_name,omitempty"`
	ShippingRequired     bool                `json:"shipping_required"`
	AllowMissingProducts bool                `json:"allow_missing_products"`
	Customer             OrderCustomer       `json:"customer"`
	Products             []OrderProduct      `json:"products"`
	Subtotal             Amount              `json:"subtotal"`
	Total                Amount              `json:"total"`
	PaymentMethod        string              `json:"payment_method,omitempty"`
	BillingInformation   *BillingInformation `json:"billing_information,omitempty"`
	CheckoutURL          string              `json:"checkout_url,omitempty"`
	TrackingNumber       string              `json:"tracking_number,omitempty"`
	TrackingCompany      string              `json:"tracking_company,omitempty"`
	CreatedAt            string              `json:"created_at,omitempty"`
}

// OrderEnvelope wraps an order in request and response bodies.
type OrderEnvelope struct {
	Order Order `json:"order"`
}
