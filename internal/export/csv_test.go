package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilibill/bills-tracker/internal/entity"
)

func sampleRecord() entity.BillRecord {
	stmt := time.Date(2025, time.February, 11, 0, 0, 0, 0, time.UTC)
	rec := entity.BillRecord{
		FileName:             "feb-2025.pdf",
		StatementDate:        &stmt,
		Days:                 30,
		TotalEnergyCharges:   899.9,
		MiscellaneousCharges: 5.25,
		AmountDue:            905.15,
	}
	rec.Electric = entity.ElectricCharges{
		UsageKWh:       3990,
		DeliveryRate:   0.07894,
		DeliveryCharge: 314.97,
		TransitionRate: 0.0013546,
		SBCRate:        0.0058,
		SupplyRate:     0.10468973,
	}
	rec.Gas = entity.GasCharges{
		UsageTherms:  84,
		DeliveryRate: 0.61484,
		SupplyRate:   0.584921,
	}
	return rec
}

func TestWriteCSV_PrecisionContract(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []entity.BillRecord{sampleRecord()}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, rows[1], len(CSVHeader))

	row := rows[1]
	col := func(name string) string {
		for i, h := range CSVHeader {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("no column %q", name)
		return ""
	}

	assert.Equal(t, "feb-2025.pdf", col("File"))
	assert.Equal(t, "2025-02-11", col("Statement Date"))
	assert.Equal(t, "", col("Service Start"))
	assert.Equal(t, "30", col("Days"))
	// Per-charge rate precisions are fixed by the export contract.
	assert.Equal(t, "0.078940", col("Electric Delivery Rate"))
	assert.Equal(t, "0.0013546", col("Electric Transition Rate"))
	assert.Equal(t, "0.005800", col("Electric SBC Rate"))
	assert.Equal(t, "0.10468973", col("Electric Supply Rate"))
	assert.Equal(t, "0.61484", col("Gas Delivery Rate"))
	assert.Equal(t, "0.584921", col("Gas Supply Rate"))
	// Currency is always two decimals.
	assert.Equal(t, "314.97", col("Electric Delivery Charge"))
	assert.Equal(t, "899.90", col("Total Energy Charges"))
	assert.Equal(t, "905.15", col("Amount Due"))
	assert.Equal(t, "0.00", col("Gas Total Cost"))
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	data, err := WriteXLSX([]entity.BillRecord{sampleRecord()}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
