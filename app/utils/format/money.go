package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2, Thousand: ",", Decimal: "."}

// USD renders a decimal amount as "$1,234.00".
func USD(amount decimal.Decimal) string {
	return usd.FormatMoneyDecimal(amount)
}
