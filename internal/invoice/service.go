// Package invoice assembles drafts from the working ledger and drives the
// save lifecycle.
package invoice

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tillbook-dev/tillbook/internal/ledger"
	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/money"
)

// ErrNoItems is returned when a draft is built from an empty ledger. An
// invoice with zero line items is not a valid entity and is never persisted.
var ErrNoItems = errors.New("invoice has no items")

// Store persists finished drafts. Satisfied by *store.Store.
type Store interface {
	SaveInvoice(draft model.Invoice) (int, error)
}

// Build assembles an invoice draft from a ledger snapshot. A blank customer
// becomes the walk-in default; a zero date becomes now. The returned draft
// has ID 0 until the store assigns one.
func Build(customer string, date time.Time, items []model.LineItem) (model.Invoice, error) {
	if len(items) == 0 {
		return model.Invoice{}, ErrNoItems
	}
	if customer == "" {
		customer = model.DefaultCustomer
	}
	if date.IsZero() {
		date = time.Now()
	}

	sub := money.Subtotal(items)
	return model.Invoice{
		Customer:   customer,
		Date:       date,
		Subtotal:   sub,
		GST:        money.GST(sub),
		GrandTotal: money.GrandTotal(sub),
		Items:      items,
	}, nil
}

// Service is one invoicing session: it owns the working ledger and the
// store, and exposes the operations the presentation layer calls.
type Service struct {
	ledger *ledger.Ledger
	store  Store
	log    *zap.SugaredLogger
	now    func() time.Time
}

// NewService creates a session with an empty ledger.
func NewService(store Store, log *zap.SugaredLogger) *Service {
	return &Service{
		ledger: ledger.New(),
		store:  store,
		log:    log,
		now:    time.Now,
	}
}

// AddItem validates and appends a line item to the working ledger.
func (s *Service) AddItem(name, qty, price string) (model.LineItem, error) {
	return s.ledger.AddItem(name, qty, price)
}

// RemoveAll empties the working ledger.
func (s *Service) RemoveAll() {
	s.ledger.RemoveAll()
}

// ClearWorkingState resets the session to a fresh start.
func (s *Service) ClearWorkingState() {
	s.ledger.RemoveAll()
}

// Items returns the working ledger's items in entry order.
func (s *Service) Items() []model.LineItem {
	return s.ledger.Items()
}

// Totals returns the current subtotal/GST/grand-total triple.
func (s *Service) Totals() ledger.Totals {
	return s.ledger.Totals()
}

// SaveInvoice builds a draft from the working ledger and persists it,
// returning the saved invoice with its assigned identity. The ledger is
// left intact either way: on failure the user retries without re-entering
// items, and after success the caller decides when to reset.
func (s *Service) SaveInvoice(customer string) (model.Invoice, error) {
	draft, err := Build(customer, s.now(), s.ledger.Items())
	if err != nil {
		return model.Invoice{}, err
	}

	id, err := s.store.SaveInvoice(draft)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("saving invoice: %w", err)
	}
	draft.ID = id

	s.log.Infow("invoice saved",
		"id", id,
		"customer", draft.Customer,
		"items", len(draft.Items),
		"grand_total", draft.GrandTotal.StringFixed(2),
	)
	return draft, nil
}
