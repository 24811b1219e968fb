package calc

import "github.com/shopspring/decimal"

// Tax is charged at a flat 8%; shipping is always free.
var taxRate = decimal.New(8, -2)

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

func TaxRate() decimal.Decimal {
	return taxRate
}

func CalculateTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxRate).Round(2)
}

// Summarize derives the full order summary from a subtotal.
func Summarize(subtotal decimal.Decimal) Totals {
	tax := CalculateTax(subtotal)
	shipping := decimal.Zero
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}
