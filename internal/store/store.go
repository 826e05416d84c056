// Package store is the persistence gateway: invoice headers and their line
// items in a SQLite file. Identity is assigned by the database; money
// columns hold exact decimal strings.
package store

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/tillbook-dev/tillbook/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS invoices (
	invoice_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_name TEXT NOT NULL,
	date         TEXT NOT NULL,
	total        TEXT NOT NULL,
	gst          TEXT NOT NULL,
	grand_total  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	invoice_id INTEGER NOT NULL REFERENCES invoices(invoice_id),
	item_name  TEXT NOT NULL,
	qty        INTEGER NOT NULL,
	price      TEXT NOT NULL,
	total      TEXT NOT NULL
);
`

// Store wraps the SQLite database holding persisted invoices.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite file at path, creating it and the schema if
// needed.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// invoiceRow is the invoices table layout.
type invoiceRow struct {
	ID         int    `db:"invoice_id"`
	Customer   string `db:"customer_name"`
	Date       string `db:"date"`
	Total      string `db:"total"`
	GST        string `db:"gst"`
	GrandTotal string `db:"grand_total"`
}

// itemRow is the items table layout.
type itemRow struct {
	ID        int    `db:"id"`
	InvoiceID int    `db:"invoice_id"`
	Name      string `db:"item_name"`
	Qty       int    `db:"qty"`
	Price     string `db:"price"`
	Total     string `db:"total"`
}

// SaveInvoice persists a draft: one header row plus one row per line item,
// in ledger order, in a single transaction. Returns the assigned identity.
// Any failure rolls the whole invoice back.
func (s *Store) SaveInvoice(draft model.Invoice) (int, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO invoices (customer_name, date, total, gst, grand_total) VALUES (?, ?, ?, ?, ?)`,
		draft.Customer, draft.DateString(),
		draft.Subtotal.StringFixed(2), draft.GST.StringFixed(2), draft.GrandTotal.StringFixed(2),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting invoice header: %w", err)
	}

	id64, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading invoice id: %w", err)
	}
	id := int(id64)

	for _, it := range draft.Items {
		_, err := tx.Exec(
			`INSERT INTO items (invoice_id, item_name, qty, price, total) VALUES (?, ?, ?, ?, ?)`,
			id, it.Name, it.Qty, it.Price.StringFixed(2), it.Total.StringFixed(2),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting item %q for invoice %d: %w", it.Name, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing invoice %d: %w", id, err)
	}
	return id, nil
}

// LoadAllInvoices returns every persisted invoice header, without items.
func (s *Store) LoadAllInvoices() ([]model.Invoice, error) {
	var rows []invoiceRow
	if err := s.db.Select(&rows, `SELECT * FROM invoices`); err != nil {
		return nil, fmt.Errorf("loading invoices: %w", err)
	}

	invoices := make([]model.Invoice, 0, len(rows))
	for _, r := range rows {
		inv, err := r.toModel()
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// LoadInvoice returns one invoice with its items in original ledger order.
func (s *Store) LoadInvoice(id int) (model.Invoice, error) {
	var row invoiceRow
	if err := s.db.Get(&row, `SELECT * FROM invoices WHERE invoice_id = ?`, id); err != nil {
		return model.Invoice{}, fmt.Errorf("loading invoice %d: %w", id, err)
	}

	inv, err := row.toModel()
	if err != nil {
		return model.Invoice{}, err
	}

	var itemRows []itemRow
	if err := s.db.Select(&itemRows, `SELECT * FROM items WHERE invoice_id = ? ORDER BY id`, id); err != nil {
		return model.Invoice{}, fmt.Errorf("loading items for invoice %d: %w", id, err)
	}

	for _, ir := range itemRows {
		price, err := decimal.NewFromString(ir.Price)
		if err != nil {
			return model.Invoice{}, fmt.Errorf("item %d: parsing price %q: %w", ir.ID, ir.Price, err)
		}
		total, err := decimal.NewFromString(ir.Total)
		if err != nil {
			return model.Invoice{}, fmt.Errorf("item %d: parsing total %q: %w", ir.ID, ir.Total, err)
		}
		inv.Items = append(inv.Items, model.LineItem{
			Name:  ir.Name,
			Qty:   ir.Qty,
			Price: price,
			Total: total,
		})
	}
	return inv, nil
}

func (r invoiceRow) toModel() (model.Invoice, error) {
	date, err := time.Parse(model.DateFormat, r.Date)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("invoice %d: parsing date %q: %w", r.ID, r.Date, err)
	}
	sub, err := decimal.NewFromString(r.Total)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("invoice %d: parsing total %q: %w", r.ID, r.Total, err)
	}
	gst, err := decimal.NewFromString(r.GST)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("invoice %d: parsing gst %q: %w", r.ID, r.GST, err)
	}
	grand, err := decimal.NewFromString(r.GrandTotal)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("invoice %d: parsing grand_total %q: %w", r.ID, r.GrandTotal, err)
	}
	return model.Invoice{
		ID:         r.ID,
		Customer:   r.Customer,
		Date:       date,
		Subtotal:   sub,
		GST:        gst,
		GrandTotal: grand,
	}, nil
}
