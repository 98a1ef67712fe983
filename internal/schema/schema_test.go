package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilibill/bills-tracker/internal/entity"
)

func TestValidateBillRecord_ZeroRecordPasses(t *testing.T) {
	rec := entity.BillRecord{FileName: "empty.pdf"}
	require.NoError(t, ValidateBillRecord(rec))
}

func TestValidateBillRecord_PopulatedPasses(t *testing.T) {
	rec := entity.BillRecord{
		FileName:  "feb.pdf",
		Days:      30,
		AmountDue: 905.15,
	}
	rec.Electric.UsageKWh = 3990
	rec.Electric.DeliveryRate = 0.07894
	require.NoError(t, ValidateBillRecord(rec))
}

func TestValidateBillRecord_NegativeDaysFails(t *testing.T) {
	rec := entity.BillRecord{FileName: "bad.pdf", Days: -1}
	assert.Error(t, ValidateBillRecord(rec))
}

func TestValidateBillRecord_MissingFileNameFails(t *testing.T) {
	assert.Error(t, ValidateBillRecord(entity.BillRecord{}))
}
