// Package money holds the arithmetic rules for invoice amounts: exact
// decimal line totals and subtotals, with rounding applied only where the
// GST amount is fixed into an invoice.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// GSTRate is the fixed tax rate applied to every invoice subtotal. Changing
// it changes the meaning of persisted data, so it is deliberately not
// configurable.
var GSTRate = decimal.NewFromFloat(0.18)

// LineTotal returns qty x price. Exact: no rounding is involved because
// prices carry at most 2 decimal places and qty is an integer.
func LineTotal(qty int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

// Subtotal sums the line totals of items. Exact.
func Subtotal(items []model.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total)
	}
	return sum
}

// GST returns the tax on a subtotal, rounded half-up to 2 decimal places.
// This is the only place rounding happens.
func GST(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(GSTRate).Round(2)
}

// GrandTotal returns subtotal plus its GST.
func GrandTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(GST(subtotal))
}

// CheckPrice validates a unit price: non-negative, no more than 2 decimal
// places.
func CheckPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("price %s is negative", price)
	}
	cents := price.Mul(decimal.NewFromInt(100))
	if !cents.Equal(cents.Floor()) {
		return fmt.Errorf("price %s has more than 2 decimal places", price)
	}
	return nil
}
