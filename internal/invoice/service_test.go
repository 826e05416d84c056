package invoice

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tillbook-dev/tillbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// mockStore records saved drafts and hands out sequential identities.
type mockStore struct {
	saved  []model.Invoice
	nextID int
	err    error
}

func (m *mockStore) SaveInvoice(draft model.Invoice) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	m.saved = append(m.saved, draft)
	return m.nextID, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(store Store) *Service {
	svc := NewService(store, zap.NewNop().Sugar())
	svc.now = func() time.Time { return date(2025, 8, 30) }
	return svc
}

func TestBuild(t *testing.T) {
	items := []model.LineItem{
		{Name: "Mouse", Qty: 2, Price: dec("499.00"), Total: dec("998.00")},
		{Name: "Keyboard", Qty: 1, Price: dec("1999.00"), Total: dec("1999.00")},
	}

	inv, err := Build("Priya", date(2025, 8, 30), items)
	require.NoError(t, err)
	assert.True(t, inv.Draft())
	assert.Equal(t, "Priya", inv.Customer)
	assert.Equal(t, "2025-08-30", inv.DateString())
	assert.Equal(t, "2997.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "539.46", inv.GST.StringFixed(2))
	assert.Equal(t, "3536.46", inv.GrandTotal.StringFixed(2))
}

func TestBuild_EmptyLedger(t *testing.T) {
	_, err := Build("Priya", date(2025, 8, 30), nil)
	require.ErrorIs(t, err, ErrNoItems)
}

func TestBuild_Defaults(t *testing.T) {
	items := []model.LineItem{{Name: "Cable", Qty: 1, Price: dec("99.00"), Total: dec("99.00")}}

	inv, err := Build("", time.Time{}, items)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCustomer, inv.Customer)
	assert.False(t, inv.Date.IsZero())
}

func TestSaveInvoice(t *testing.T) {
	store := &mockStore{}
	svc := newTestService(store)

	_, err := svc.AddItem("Mouse", "2", "499.00")
	require.NoError(t, err)
	_, err = svc.AddItem("Keyboard", "1", "1999.00")
	require.NoError(t, err)

	inv, err := svc.SaveInvoice("")
	require.NoError(t, err)
	assert.Equal(t, 1, inv.ID)
	assert.Equal(t, model.DefaultCustomer, inv.Customer)
	assert.Equal(t, "2025-08-30", inv.DateString())
	assert.Equal(t, "3536.46", inv.GrandTotal.StringFixed(2))

	// Persisted item set matches the ledger, in order.
	require.Len(t, store.saved, 1)
	items := store.saved[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, "Mouse", items[0].Name)
	assert.Equal(t, "Keyboard", items[1].Name)

	// The ledger survives a save; reset is an explicit, separate step.
	assert.Equal(t, 2, len(svc.Items()))
	svc.ClearWorkingState()
	assert.Empty(t, svc.Items())
	assert.Equal(t, "0.00", svc.Totals().GrandTotal.StringFixed(2))
}

func TestSaveInvoice_EmptyLedger(t *testing.T) {
	store := &mockStore{}
	svc := newTestService(store)

	_, err := svc.SaveInvoice("Priya")
	require.ErrorIs(t, err, ErrNoItems)
	assert.Empty(t, store.saved, "no store writes on an empty ledger")
}

func TestSaveInvoice_StoreFailureKeepsLedger(t *testing.T) {
	store := &mockStore{err: errors.New("disk full")}
	svc := newTestService(store)

	_, err := svc.AddItem("Mouse", "2", "499.00")
	require.NoError(t, err)

	_, err = svc.SaveInvoice("Priya")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// Working state stays intact so the save can be retried.
	assert.Equal(t, 1, len(svc.Items()))

	store.err = nil
	inv, err := svc.SaveInvoice("Priya")
	require.NoError(t, err)
	assert.Equal(t, 1, inv.ID)
}
