// Package ledger holds the in-memory working set of line items for the
// invoice currently being composed. Input validation happens here, at the
// boundary where raw field values arrive; nothing below this layer ever
// sees an invalid quantity or price.
package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/money"
)

// ValidationError identifies which input field was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Totals is the running subtotal/tax/grand-total triple for the working set.
type Totals struct {
	Subtotal   decimal.Decimal
	GST        decimal.Decimal
	GrandTotal decimal.Decimal
}

// Ledger is an ordered working set of line items. Insertion order is
// meaningful: it is reproduced in the persisted records and the rendered
// document. The zero value is an empty ledger ready for use.
type Ledger struct {
	items []model.LineItem
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{}
}

// AddItem validates raw field values, and on success appends a new line item
// and returns it. On failure it returns a ValidationError naming the bad
// field and the ledger is left untouched.
func (l *Ledger) AddItem(name, qty, price string) (model.LineItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.LineItem{}, ValidationError{Field: "name", Reason: "must not be empty"}
	}

	q, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil {
		return model.LineItem{}, ValidationError{Field: "qty", Reason: fmt.Sprintf("%q is not an integer", qty)}
	}
	if q <= 0 {
		return model.LineItem{}, ValidationError{Field: "qty", Reason: fmt.Sprintf("%d is not positive", q)}
	}

	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return model.LineItem{}, ValidationError{Field: "price", Reason: fmt.Sprintf("%q is not a number", price)}
	}
	if err := money.CheckPrice(p); err != nil {
		return model.LineItem{}, ValidationError{Field: "price", Reason: err.Error()}
	}

	item := model.LineItem{
		Name:  name,
		Qty:   q,
		Price: p,
		Total: money.LineTotal(q, p),
	}
	l.items = append(l.items, item)
	return item, nil
}

// RemoveAll empties the ledger unconditionally.
func (l *Ledger) RemoveAll() {
	l.items = nil
}

// Items returns a copy of the current items in insertion order.
func (l *Ledger) Items() []model.LineItem {
	out := make([]model.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items in the ledger.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Totals recomputes the subtotal/GST/grand-total triple from the current
// items. It is a pure function of the working set, never cached.
func (l *Ledger) Totals() Totals {
	sub := money.Subtotal(l.items)
	return Totals{
		Subtotal:   sub,
		GST:        money.GST(sub),
		GrandTotal: money.GrandTotal(sub),
	}
}
