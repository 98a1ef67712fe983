package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilibill/bills-tracker/internal/extract"
	"github.com/utilibill/bills-tracker/internal/repository"
)

const billOneText = `Statement Date: February 11, 2025
ACCOUNT NUMBER 1234-5678-901
JOHN SMITH
01/09/25 - 02/07/25
30 days 3990 kwh
Basic service charge 19.00
3990 kwh 07894 @ 0. Delivery charge 314.97
Amount due 905.15
`

const billTwoText = `Statement Date: March 12, 2025
ACCOUNT NUMBER 9999-9999-999
02/07/25 - 03/10/25
31 days 3550 kwh
Amount due 802.44
`

func writeBill(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func newTestProcessor(t *testing.T) (*Processor, *repository.BillRepository) {
	t.Helper()
	db, err := repository.OpenSQLite(":memory:", slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repository.Migrate(context.Background(), db))

	bills := repository.NewBillRepository(db, repository.DialectSQLite)
	accounts := repository.NewAccountRepository(db, repository.DialectSQLite)
	proc := NewProcessor(nil, extract.NewFileExtractor(nil), nil, bills, accounts)
	return proc, bills
}

func TestProcessor_ProcessFile(t *testing.T) {
	proc, bills := newTestProcessor(t)
	dir := t.TempDir()
	path := writeBill(t, dir, "feb.txt", billOneText)

	rec, err := proc.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "feb.txt", rec.FileName)
	assert.Equal(t, 30, rec.Days)
	assert.Equal(t, 0.07894, rec.Electric.DeliveryRate)
	assert.Equal(t, 905.15, rec.AmountDue)

	stored, err := bills.ListBills(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestProcessor_ProcessFile_MissingFile(t *testing.T) {
	proc, _ := newTestProcessor(t)
	_, err := proc.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestProcessor_ProcessBatch(t *testing.T) {
	proc, _ := newTestProcessor(t)
	dir := t.TempDir()
	one := writeBill(t, dir, "feb.txt", billOneText)
	two := writeBill(t, dir, "mar.txt", billTwoText)
	missing := filepath.Join(dir, "gone.txt")

	result, err := proc.ProcessBatch(context.Background(), []string{one, missing, two})
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, []string{missing}, result.Failed)

	// Account identity comes from the first document with an account number
	// and is never overwritten by later documents.
	assert.Equal(t, "1234-5678-901", result.Account.AccountNumber)
	assert.Equal(t, "JOHN SMITH", result.Account.CustomerName)
}

func TestProcessor_ParseOnlyWithoutRepos(t *testing.T) {
	dir := t.TempDir()
	path := writeBill(t, dir, "feb.txt", billOneText)

	proc := NewProcessor(nil, extract.NewFileExtractor(nil), nil, nil, nil)
	rec, err := proc.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3990.0, rec.Electric.UsageKWh)
}
