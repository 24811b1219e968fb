package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line in a cart. The product reference is shared with the
// catalog store and must be treated as read-only.
type CartItem struct {
	ID            string    `json:"id"`
	Product       *Product  `json:"product"`
	Quantity      int       `json:"quantity"`
	SelectedSize  Size      `json:"selectedSize"`
	SelectedColor Color     `json:"selectedColor"`
	AddedAt       time.Time `json:"addedAt"`
}

// LineTotal is unit price times quantity.
func (ci *CartItem) LineTotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
