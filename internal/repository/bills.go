package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/utilibill/bills-tracker/internal/entity"
)

// Dialect selects placeholder style for the hand-written SQL.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// BillRepository persists assembled bill records. Re-processing the same file
// upserts by file name; records are otherwise immutable.
type BillRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewBillRepository(db *sql.DB, dialect Dialect) *BillRepository {
	return &BillRepository{db: db, dialect: dialect}
}

// rebind rewrites ? placeholders to $N for PostgreSQL.
func (r *BillRepository) rebind(q string) string {
	if r.dialect != DialectPostgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, ch := range q {
		if ch == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

const billColumns = `id, file_name, statement_date, service_start, service_end, days,
	elec_usage_kwh, elec_basic_service, elec_delivery_rate, elec_delivery_charge,
	elec_transition_rate, elec_transition_charge, elec_sbc_rate, elec_sbc_charge,
	elec_supply_rate, elec_supply_charge, elec_total_delivery, elec_total_supply,
	elec_total_taxes, elec_total_cost,
	gas_usage_therms, gas_basic_service, gas_delivery_rate, gas_delivery_charge,
	gas_supply_rate, gas_supply_charge, gas_total_delivery, gas_total_supply,
	gas_total_taxes, gas_total_cost,
	total_energy_charges, miscellaneous_charges, amount_due, created_at`

// SaveBill inserts rec, replacing any earlier record for the same file name.
// Returns the stored record with its assigned ID.
func (r *BillRepository) SaveBill(ctx context.Context, rec entity.BillRecord) (entity.BillRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	q := `INSERT INTO bills (` + billColumns + `) VALUES (` +
		strings.TrimSuffix(strings.Repeat("?, ", 34), ", ") + `)
		ON CONFLICT (file_name) DO UPDATE SET
		statement_date = excluded.statement_date,
		service_start = excluded.service_start,
		service_end = excluded.service_end,
		days = excluded.days,
		elec_usage_kwh = excluded.elec_usage_kwh,
		elec_basic_service = excluded.elec_basic_service,
		elec_delivery_rate = excluded.elec_delivery_rate,
		elec_delivery_charge = excluded.elec_delivery_charge,
		elec_transition_rate = excluded.elec_transition_rate,
		elec_transition_charge = excluded.elec_transition_charge,
		elec_sbc_rate = excluded.elec_sbc_rate,
		elec_sbc_charge = excluded.elec_sbc_charge,
		elec_supply_rate = excluded.elec_supply_rate,
		elec_supply_charge = excluded.elec_supply_charge,
		elec_total_delivery = excluded.elec_total_delivery,
		elec_total_supply = excluded.elec_total_supply,
		elec_total_taxes = excluded.elec_total_taxes,
		elec_total_cost = excluded.elec_total_cost,
		gas_usage_therms = excluded.gas_usage_therms,
		gas_basic_service = excluded.gas_basic_service,
		gas_delivery_rate = excluded.gas_delivery_rate,
		gas_delivery_charge = excluded.gas_delivery_charge,
		gas_supply_rate = excluded.gas_supply_rate,
		gas_supply_charge = excluded.gas_supply_charge,
		gas_total_delivery = excluded.gas_total_delivery,
		gas_total_supply = excluded.gas_total_supply,
		gas_total_taxes = excluded.gas_total_taxes,
		gas_total_cost = excluded.gas_total_cost,
		total_energy_charges = excluded.total_energy_charges,
		miscellaneous_charges = excluded.miscellaneous_charges,
		amount_due = excluded.amount_due`

	e, g := rec.Electric, rec.Gas
	_, err := r.db.ExecContext(ctx, r.rebind(q),
		rec.ID.String(), rec.FileName, nullTime(rec.StatementDate), nullTime(rec.ServiceStart),
		nullTime(rec.ServiceEnd), rec.Days,
		e.UsageKWh, e.BasicServiceCharge, e.DeliveryRate, e.DeliveryCharge,
		e.TransitionRate, e.TransitionCharge, e.SBCRate, e.SBCCharge,
		e.SupplyRate, e.SupplyCharge, e.TotalDelivery, e.TotalSupply,
		e.TotalTaxes, e.TotalCost,
		g.UsageTherms, g.BasicServiceCharge, g.DeliveryRate, g.DeliveryCharge,
		g.SupplyRate, g.SupplyCharge, g.TotalDelivery, g.TotalSupply,
		g.TotalTaxes, g.TotalCost,
		rec.TotalEnergyCharges, rec.MiscellaneousCharges, rec.AmountDue, rec.CreatedAt,
	)
	if err != nil {
		return rec, fmt.Errorf("save bill: %w", err)
	}
	return rec, nil
}

// ListBills returns records sorted by statement date, optionally limited to a
// date window (inclusive). Records without a statement date sort first.
func (r *BillRepository) ListBills(ctx context.Context, from, to *time.Time) ([]entity.BillRecord, error) {
	q := `SELECT ` + billColumns + ` FROM bills`
	var conds []string
	var args []any
	if from != nil {
		conds = append(conds, "statement_date >= ?")
		args = append(args, *from)
	}
	if to != nil {
		conds = append(conds, "statement_date <= ?")
		args = append(args, *to)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY statement_date, file_name"

	rows, err := r.db.QueryContext(ctx, r.rebind(q), args...)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}
	defer rows.Close()

	var recs []entity.BillRecord
	for rows.Next() {
		rec, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func scanBill(rows *sql.Rows) (entity.BillRecord, error) {
	var rec entity.BillRecord
	var id string
	var stmtDate, start, end sql.NullTime
	e, g := &rec.Electric, &rec.Gas
	err := rows.Scan(
		&id, &rec.FileName, &stmtDate, &start, &end, &rec.Days,
		&e.UsageKWh, &e.BasicServiceCharge, &e.DeliveryRate, &e.DeliveryCharge,
		&e.TransitionRate, &e.TransitionCharge, &e.SBCRate, &e.SBCCharge,
		&e.SupplyRate, &e.SupplyCharge, &e.TotalDelivery, &e.TotalSupply,
		&e.TotalTaxes, &e.TotalCost,
		&g.UsageTherms, &g.BasicServiceCharge, &g.DeliveryRate, &g.DeliveryCharge,
		&g.SupplyRate, &g.SupplyCharge, &g.TotalDelivery, &g.TotalSupply,
		&g.TotalTaxes, &g.TotalCost,
		&rec.TotalEnergyCharges, &rec.MiscellaneousCharges, &rec.AmountDue, &rec.CreatedAt,
	)
	if err != nil {
		return rec, fmt.Errorf("scan bill: %w", err)
	}
	if parsed, perr := uuid.Parse(id); perr == nil {
		rec.ID = parsed
	}
	rec.StatementDate = timePtr(stmtDate)
	rec.ServiceStart = timePtr(start)
	rec.ServiceEnd = timePtr(end)
	return rec, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
