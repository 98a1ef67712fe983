package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilibill/bills-tracker/internal/common"
	"github.com/utilibill/bills-tracker/internal/entity"
)

func openTestDB(t *testing.T) *BillRepository {
	t.Helper()
	db, err := OpenSQLite(":memory:", slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return NewBillRepository(db, DialectSQLite)
}

func TestBillRepository_SaveAndList(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	stmt := time.Date(2025, time.February, 11, 0, 0, 0, 0, time.UTC)
	rec := entity.BillRecord{
		FileName:      "feb-2025.pdf",
		StatementDate: &stmt,
		Days:          30,
		AmountDue:     905.15,
	}
	rec.Electric.UsageKWh = 3990
	rec.Electric.DeliveryRate = 0.07894

	saved, err := repo.SaveBill(ctx, rec)
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", saved.ID.String())

	got, err := repo.ListBills(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "feb-2025.pdf", got[0].FileName)
	assert.Equal(t, 30, got[0].Days)
	assert.Equal(t, 0.07894, got[0].Electric.DeliveryRate)
	require.NotNil(t, got[0].StatementDate)
	assert.Equal(t, stmt, got[0].StatementDate.UTC())
}

func TestBillRepository_UpsertByFileName(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	rec := entity.BillRecord{FileName: "same.pdf", AmountDue: 100}
	_, err := repo.SaveBill(ctx, rec)
	require.NoError(t, err)

	rec.AmountDue = 200
	rec.ID = uuid.Nil // fresh ID; conflict resolves on file_name
	_, err = repo.SaveBill(ctx, rec)
	require.NoError(t, err)

	got, err := repo.ListBills(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 200.0, got[0].AmountDue)
}

func TestBillRepository_DateWindow(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	for _, d := range []string{"2025-01-11", "2025-02-11", "2025-03-11"} {
		stmt, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		_, err = repo.SaveBill(ctx, entity.BillRecord{FileName: d + ".pdf", StatementDate: &stmt})
		require.NoError(t, err)
	}

	from := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListBills(ctx, &from, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-02-11.pdf", got[0].FileName)
}

func TestAccountRepository_FirstWins(t *testing.T) {
	repo := openTestDB(t)
	accounts := NewAccountRepository(repo.db, DialectSQLite)
	ctx := context.Background()

	_, err := accounts.GetAccount(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	first := entity.AccountInfo{AccountNumber: "1234-5678-901", CustomerName: "JOHN SMITH"}
	require.NoError(t, accounts.SaveAccount(ctx, first))
	require.NoError(t, accounts.SaveAccount(ctx, entity.AccountInfo{AccountNumber: "9999-9999-999"}))

	got, err := accounts.GetAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}
