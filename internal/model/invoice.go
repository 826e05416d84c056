package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCustomer is recorded when an invoice is saved without a customer name.
const DefaultCustomer = "Walk-in Customer"

// DateFormat is the stored form of invoice dates. It sorts lexicographically,
// which the sales report's month-prefix filter depends on.
const DateFormat = "2006-01-02"

// MonthFormat is the year-month prefix of DateFormat.
const MonthFormat = "2006-01"

// LineItem is a single row on an invoice.
type LineItem struct {
	Name  string
	Qty   int
	Price decimal.Decimal // unit price, at most 2 decimal places
	Total decimal.Decimal // always Qty x Price
}

// Invoice is an invoice header plus its items. ID 0 means draft (not yet
// persisted); the store assigns the real identity on save.
type Invoice struct {
	ID         int
	Customer   string
	Date       time.Time
	Subtotal   decimal.Decimal
	GST        decimal.Decimal
	GrandTotal decimal.Decimal
	Items      []LineItem
}

// DateString returns the invoice date in stored form, e.g. "2025-08-30".
func (inv Invoice) DateString() string {
	return inv.Date.Format(DateFormat)
}

// MonthString returns the invoice's year-month prefix, e.g. "2025-08".
func (inv Invoice) MonthString() string {
	return inv.Date.Format(MonthFormat)
}

// Draft reports whether the invoice has been persisted yet.
func (inv Invoice) Draft() bool {
	return inv.ID == 0
}
