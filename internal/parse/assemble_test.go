package parse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssembler() *Assembler { return NewAssembler(nil) }

const fullBillText = `Statement Date: February 11, 2025
ACCOUNT NUMBER 1234-5678-901
Service period 01/09/25 - 02/07/25
30 days 3990 kwh
Basic service charge 19.00
3990 kwh 07894 @ 0. Delivery charge 314.97
3990 kwh 0013546 @ 0. Transition charge 5.40
3990 kwh 0058 @ 0. System benefits charge 2.31
3990 kwh @ 0.10468973 Supply charge 417.71
Subtotal electricity delivery 341.68
Subtotal electricity supply 417.71
Subtotal electricity taxes 12.40
Total electricity cost 771.79
Gas service charge 24.12
30 days 84 therms
84 therms 61484 @ 0. Delivery charge 51.65
84 therms @ 0.584921 Supply charge 49.13
Subtotal gas delivery 75.77
Subtotal gas supply 49.13
Subtotal gas taxes 3.21
Total gas cost 128.11
Total energy charges 899.90
Miscellaneous charges 5.25
Amount due 905.15
`

func TestAssemble_EndToEnd(t *testing.T) {
	rec := newTestAssembler().Assemble(fullBillText, "feb-2025.pdf")

	assert.Equal(t, "feb-2025.pdf", rec.FileName)
	require.NotNil(t, rec.StatementDate)
	assert.Equal(t, date(2025, time.February, 11), *rec.StatementDate)
	require.NotNil(t, rec.ServiceStart)
	require.NotNil(t, rec.ServiceEnd)
	assert.Equal(t, date(2025, time.January, 9), *rec.ServiceStart)
	assert.Equal(t, date(2025, time.February, 7), *rec.ServiceEnd)
	assert.Equal(t, 30, rec.Days)

	e := rec.Electric
	assert.Equal(t, 3990.0, e.UsageKWh)
	assert.Equal(t, 19.00, e.BasicServiceCharge)
	assert.Equal(t, 0.07894, e.DeliveryRate)
	assert.Equal(t, 314.97, e.DeliveryCharge)
	assert.Equal(t, 0.0013546, e.TransitionRate)
	assert.Equal(t, 5.40, e.TransitionCharge)
	assert.Equal(t, 0.0058, e.SBCRate)
	assert.Equal(t, 2.31, e.SBCCharge)
	assert.Equal(t, 0.10468973, e.SupplyRate)
	assert.Equal(t, 417.71, e.SupplyCharge)
	assert.Equal(t, 341.68, e.TotalDelivery)
	assert.Equal(t, 417.71, e.TotalSupply)
	assert.Equal(t, 12.40, e.TotalTaxes)
	assert.Equal(t, 771.79, e.TotalCost)

	g := rec.Gas
	assert.Equal(t, 84.0, g.UsageTherms)
	assert.Equal(t, 24.12, g.BasicServiceCharge)
	assert.Equal(t, 0.61484, g.DeliveryRate)
	assert.Equal(t, 51.65, g.DeliveryCharge)
	assert.Equal(t, 0.584921, g.SupplyRate)
	assert.Equal(t, 49.13, g.SupplyCharge)
	assert.Equal(t, 75.77, g.TotalDelivery)
	assert.Equal(t, 49.13, g.TotalSupply)
	assert.Equal(t, 3.21, g.TotalTaxes)
	assert.Equal(t, 128.11, g.TotalCost)

	assert.Equal(t, 899.90, rec.TotalEnergyCharges)
	assert.Equal(t, 5.25, rec.MiscellaneousCharges)
	assert.Equal(t, 905.15, rec.AmountDue)
}

func TestAssemble_Idempotent(t *testing.T) {
	a := newTestAssembler()
	first := a.Assemble(fullBillText, "feb-2025.pdf")
	second := a.Assemble(fullBillText, "feb-2025.pdf")
	assert.Equal(t, first, second)
}

func TestAssemble_Totality(t *testing.T) {
	a := newTestAssembler()
	inputs := []string{
		"",
		"no recognizable labels here",
		"\x00\xff\xfe{{{ 12/34 kwh @ @ @",
		strings.Repeat("amount due ", 1000),
		"Delivery charge\nSupply charge\nkwh therms",
	}
	for _, in := range inputs {
		rec := a.Assemble(in, "junk.txt")
		assert.Equal(t, "junk.txt", rec.FileName)
		assert.Equal(t, 0.0, rec.AmountDue)
		assert.Nil(t, rec.StatementDate)
		assert.Equal(t, 0, rec.Days)
	}
}

func TestAssemble_DerivedDays(t *testing.T) {
	rec := newTestAssembler().Assemble("Service period 01/09/25 - 02/07/25\n", "x.pdf")
	require.NotNil(t, rec.ServiceStart)
	require.NotNil(t, rec.ServiceEnd)
	assert.Equal(t, 29, rec.Days)
}

func TestAssemble_MultiMonthFallback(t *testing.T) {
	// The single-period line resolves to a rate of exactly 0, which the chain
	// treats as "no match"; the repeated-month lines are reconciled instead.
	text := `30 days 3990 kwh
3990 kwh 0 @ 0. Delivery charge 14.00
Delivery charge 1330 kwh 07894 @ 0. 104.99
Delivery charge 2660 kwh 08123 @ 0. 216.08
`
	rec := newTestAssembler().Assemble(text, "split.pdf")
	wantRate := (1330*0.07894 + 2660*0.08123) / 3990
	assert.InDelta(t, wantRate, rec.Electric.DeliveryRate, 1e-12)
	assert.InDelta(t, 321.07, rec.Electric.DeliveryCharge, 1e-9)
}

func TestAssemble_SinglePeriodPreferred(t *testing.T) {
	// When the single-period pattern resolves to a non-zero rate it wins even
	// if repeated-month lines are also present.
	text := `3990 kwh 07894 @ 0. Delivery charge 314.97
Delivery charge 1330 kwh 09999 @ 0. 133.00
Delivery charge 2660 kwh 09999 @ 0. 266.00
`
	rec := newTestAssembler().Assemble(text, "both.pdf")
	assert.Equal(t, 0.07894, rec.Electric.DeliveryRate)
	assert.Equal(t, 314.97, rec.Electric.DeliveryCharge)
}

func TestAssemble_SharedBasicServiceLabel(t *testing.T) {
	// Some layouts reuse "Basic service charge" for both fuels: first
	// occurrence is electricity, second is gas.
	text := `Basic service charge 19.00
Basic service charge 24.12
`
	rec := newTestAssembler().Assemble(text, "two.pdf")
	assert.Equal(t, 19.00, rec.Electric.BasicServiceCharge)
	assert.Equal(t, 24.12, rec.Gas.BasicServiceCharge)
}

func TestAssemble_StatementDateShortForm(t *testing.T) {
	rec := newTestAssembler().Assemble("Statement Date: 02/11/25\n", "d.pdf")
	require.NotNil(t, rec.StatementDate)
	assert.Equal(t, date(2025, time.February, 11), *rec.StatementDate)
}
