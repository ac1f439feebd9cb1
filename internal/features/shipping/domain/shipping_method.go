package domain

import "github.com/shopspring/decimal"

// Fee is one entry of a shipping method fee schedule.
type Fee struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// Service is a carrier service offered through a shipping method.
type Service struct {
	ID          int64  `json:"id"`
	ServiceName string `json:"service_name"`
	ServiceCode string `json:"service_code"`
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
}

// ShippingMethod is a store shipping method as offered to a location.
type ShippingMethod struct {
	// ID is the upstream shipping method id.
	ID int64 `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Type is the upstream method type (e.g. "custom", "pickup").
	Type string `json:"type"`
	// Enabled reports whether the store offers the method at all.
	Enabled bool `json:"enabled"`
	// FreeShipping makes the effective fee zero.
	FreeShipping bool `json:"free_shipping"`
	// MinimumPurchase is the purchase threshold, nil when none applies.
	MinimumPurchase *decimal.Decimal `json:"free_shipping_minimum_purchase,omitempty"`
	// Fees is the fee schedule; only the first entry is charged.
	Fees []Fee `json:"fee"`
	// Services lists the carrier services behind the method.
	Services []Service `json:"services"`
}

// EffectiveFee is zero for free shipping, otherwise the first scheduled fee, otherwise zero.
func (m ShippingMethod) EffectiveFee() decimal.Decimal {
	if m.FreeShipping || len(m.Fees) == 0 {
		return decimal.Zero
	}
	return m.Fees[0].Value
}

// EligibleFor reports whether the method can be offered for an order of subtotal.
// A missing threshold never excludes a method.
func (m ShippingMethod) EligibleFor(subtotal decimal.Decimal) bool {
	if !m.Enabled {
		return false
	}
	return m.MinimumPurchase == nil || subtotal.GreaterThanOrEqual(*m.MinimumPurchase)
}

// Quote is the price breakdown of an order shipped with a given method.
type Quote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Total       decimal.Decimal `json:"total"`
}

// NewQuote prices subtotal with the effective fee of m.
func NewQuote(m ShippingMethod, subtotal decimal.Decimal) Quote {
	fee := m.EffectiveFee()
	return Quote{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal.Add(fee),
	}
}
