package domain

import "github.com/shopspring/decimal"

// Price is a unit price as shown in the cart.
type Price struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code"`
}

// CartItem is one line of the shopper's cart. ID is the product id as text.
type CartItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    Price  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
}

// OrderProductLine is a cart item resolved against the catalog.
type OrderProductLine struct {
	ProductID int64           `json:"id"`
	VariantID int64           `json:"variant_id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
}

// Total is price times quantity.
func (l OrderProductLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// SkippedItem records a cart item left out of the order.
type SkippedItem struct {
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

// Resolution is the outcome of resolving a cart. Lines keep cart order.
type Resolution struct {
	Lines   []OrderProductLine `json:"lines"`
	Skipped []SkippedItem      `json:"skipped,omitempty"`
}

// Subtotal is the sum of every line total.
func (r Resolution) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range r.Lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// CartSubtotal sums price times quantity over the cart as submitted.
func CartSubtotal(items []CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price.Amount.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}
