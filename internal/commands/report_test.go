package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReport_EmptyStore(t *testing.T) {
	_, opts := initShop(t)

	// An empty store is informational, not an error.
	require.NoError(t, runReport(opts, time.Now(), false))
}

func TestRunReport_Export(t *testing.T) {
	dir, opts := initShop(t)

	require.NoError(t, runNew(opts, "", []string{"Mouse,2,499.00"}, true))
	require.NoError(t, runReport(opts, time.Now(), true))

	_, err := os.Stat(filepath.Join(dir, "exports", "Sales_Report.xlsx"))
	require.NoError(t, err)
}

func TestRunPDF(t *testing.T) {
	dir, opts := initShop(t)

	require.NoError(t, runNew(opts, "Priya", []string{"Keyboard,1,1999.00"}, true))
	require.NoError(t, runPDF(opts, 1, ""))

	_, err := os.Stat(filepath.Join(dir, "exports", "Invoice_1.pdf"))
	require.NoError(t, err)
}

func TestRunPDF_Unknown(t *testing.T) {
	_, opts := initShop(t)

	err := runPDF(opts, 99, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoice 99")
}
