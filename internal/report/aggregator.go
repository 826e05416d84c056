// Package report aggregates persisted invoices into daily and monthly sales
// figures and exports the full history for external use.
package report

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// ErrNoInvoices means the store holds no invoices at all. Distinct from a
// zero sum for a day with no activity.
var ErrNoInvoices = errors.New("no invoices recorded")

// HeaderLoader supplies persisted invoice headers. Satisfied by *store.Store.
type HeaderLoader interface {
	LoadAllInvoices() ([]model.Invoice, error)
}

// Summary holds the sales figures for one as-of date, plus the full header
// dump used by the export.
type Summary struct {
	Date     string // "2025-08-30"
	Month    string // "2025-08"
	Daily    decimal.Decimal
	Monthly  decimal.Decimal
	Invoices []model.Invoice // all headers, store order
}

// Summarize loads all invoice headers and sums grand totals for the asOf
// date (exact match) and its calendar month (date-string prefix match).
func Summarize(loader HeaderLoader, asOf time.Time) (*Summary, error) {
	invoices, err := loader.LoadAllInvoices()
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, ErrNoInvoices
	}

	sum := &Summary{
		Date:     asOf.Format(model.DateFormat),
		Month:    asOf.Format(model.MonthFormat),
		Daily:    decimal.Zero,
		Monthly:  decimal.Zero,
		Invoices: invoices,
	}
	for _, inv := range invoices {
		date := inv.DateString()
		if date == sum.Date {
			sum.Daily = sum.Daily.Add(inv.GrandTotal)
		}
		if strings.HasPrefix(date, sum.Month) {
			sum.Monthly = sum.Monthly.Add(inv.GrandTotal)
		}
	}
	return sum, nil
}
