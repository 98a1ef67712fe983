package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// DDL is portable across PostgreSQL and SQLite; the repositories rebind
// placeholders per dialect at query time.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS bills (
		id TEXT PRIMARY KEY,
		file_name TEXT NOT NULL,
		statement_date TIMESTAMP,
		service_start TIMESTAMP,
		service_end TIMESTAMP,
		days INTEGER NOT NULL DEFAULT 0,
		elec_usage_kwh REAL NOT NULL DEFAULT 0,
		elec_basic_service REAL NOT NULL DEFAULT 0,
		elec_delivery_rate REAL NOT NULL DEFAULT 0,
		elec_delivery_charge REAL NOT NULL DEFAULT 0,
		elec_transition_rate REAL NOT NULL DEFAULT 0,
		elec_transition_charge REAL NOT NULL DEFAULT 0,
		elec_sbc_rate REAL NOT NULL DEFAULT 0,
		elec_sbc_charge REAL NOT NULL DEFAULT 0,
		elec_supply_rate REAL NOT NULL DEFAULT 0,
		elec_supply_charge REAL NOT NULL DEFAULT 0,
		elec_total_delivery REAL NOT NULL DEFAULT 0,
		elec_total_supply REAL NOT NULL DEFAULT 0,
		elec_total_taxes REAL NOT NULL DEFAULT 0,
		elec_total_cost REAL NOT NULL DEFAULT 0,
		gas_usage_therms REAL NOT NULL DEFAULT 0,
		gas_basic_service REAL NOT NULL DEFAULT 0,
		gas_delivery_rate REAL NOT NULL DEFAULT 0,
		gas_delivery_charge REAL NOT NULL DEFAULT 0,
		gas_supply_rate REAL NOT NULL DEFAULT 0,
		gas_supply_charge REAL NOT NULL DEFAULT 0,
		gas_total_delivery REAL NOT NULL DEFAULT 0,
		gas_total_supply REAL NOT NULL DEFAULT 0,
		gas_total_taxes REAL NOT NULL DEFAULT 0,
		gas_total_cost REAL NOT NULL DEFAULT 0,
		total_energy_charges REAL NOT NULL DEFAULT 0,
		miscellaneous_charges REAL NOT NULL DEFAULT 0,
		amount_due REAL NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS bills_file_name_idx ON bills (file_name)`,
	`CREATE INDEX IF NOT EXISTS bills_statement_date_idx ON bills (statement_date)`,
	`CREATE TABLE IF NOT EXISTS account_info (
		id INTEGER PRIMARY KEY,
		account_number TEXT NOT NULL DEFAULT '',
		customer_name TEXT NOT NULL DEFAULT '',
		service_address TEXT NOT NULL DEFAULT '',
		city_state_zip TEXT NOT NULL DEFAULT ''
	)`,
}

// Migrate creates the schema when missing. Idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
