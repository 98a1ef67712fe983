package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/utilibill/bills-tracker/internal/common"
	"github.com/utilibill/bills-tracker/internal/entity"
)

// AccountRepository keeps the single account identity for the batch. The
// first extraction wins; later saves are ignored unless the stored row is
// empty.
type AccountRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewAccountRepository(db *sql.DB, dialect Dialect) *AccountRepository {
	return &AccountRepository{db: db, dialect: dialect}
}

func (r *AccountRepository) rebind(q string) string {
	return (&BillRepository{dialect: r.dialect}).rebind(q)
}

// GetAccount returns the stored identity, or common.ErrNotFound.
func (r *AccountRepository) GetAccount(ctx context.Context) (entity.AccountInfo, error) {
	var info entity.AccountInfo
	row := r.db.QueryRowContext(ctx,
		`SELECT account_number, customer_name, service_address, city_state_zip FROM account_info WHERE id = 1`)
	err := row.Scan(&info.AccountNumber, &info.CustomerName, &info.ServiceAddress, &info.CityStateZip)
	if errors.Is(err, sql.ErrNoRows) {
		return info, common.ErrNotFound
	}
	if err != nil {
		return info, fmt.Errorf("get account: %w", err)
	}
	return info, nil
}

// SaveAccount stores info if no identity is held yet.
func (r *AccountRepository) SaveAccount(ctx context.Context, info entity.AccountInfo) error {
	if info.Empty() {
		return nil
	}
	existing, err := r.GetAccount(ctx)
	if err == nil && !existing.Empty() {
		return nil
	}
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	q := `INSERT INTO account_info (id, account_number, customer_name, service_address, city_state_zip)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
		account_number = excluded.account_number,
		customer_name = excluded.customer_name,
		service_address = excluded.service_address,
		city_state_zip = excluded.city_state_zip`
	if _, err := r.db.ExecContext(ctx, r.rebind(q),
		info.AccountNumber, info.CustomerName, info.ServiceAddress, info.CityStateZip); err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}
