package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxProductImages caps the images returned per product.
const MaxProductImages = 3

// StatusAvailable is the upstream status of a sellable product.
const StatusAvailable = "available"

// Category is a product category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Variant is a purchasable variant of a product.
type Variant struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Product is a catalog product.
type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	MetaDescription string          `json:"meta_description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency,omitempty"`
	Stock           int             `json:"stock"`
	StockUnlimited  bool            `json:"stock_unlimited"`
	Status          string          `json:"status"`
	Permalink       string          `json:"permalink,omitempty"`
	Images          []string        `json:"images"`
	Categories      []Category      `json:"categories,omitempty"`
	Variants        []Variant       `json:"variants,omitempty"`
}

// Available reports whether the product can be sold right now.
func (p Product) Available() bool {
	if !strings.EqualFold(p.Status, StatusAvailable) {
		return false
	}
	return p.StockUnlimited || p.Stock > 0
}

// DefaultVariantID is the id of the first variant, or 0 when there are none.
func (p Product) DefaultVariantID() int64 {
	if len(p.Variants) == 0 {
		return 0
	}
	return p.Variants[0].ID
}

// ErrProductNotFound is returned when the catalog has no product with the requested id.
var ErrProductNotFound = errors.New("product not found")
