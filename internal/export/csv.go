package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/utilibill/bills-tracker/internal/entity"
)

// CSVHeader is the fixed column layout existing exports consume. Order and
// formatting are part of the interoperability contract.
var CSVHeader = []string{
	"File",
	"Statement Date",
	"Service Start",
	"Service End",
	"Days",
	"Electric Usage (kWh)",
	"Electric Basic Service",
	"Electric Delivery Rate",
	"Electric Delivery Charge",
	"Electric Transition Rate",
	"Electric Transition Charge",
	"Electric SBC Rate",
	"Electric SBC Charge",
	"Electric Supply Rate",
	"Electric Supply Charge",
	"Electric Total Delivery",
	"Electric Total Supply",
	"Electric Total Taxes",
	"Electric Total Cost",
	"Gas Usage (therms)",
	"Gas Basic Service",
	"Gas Delivery Rate",
	"Gas Delivery Charge",
	"Gas Supply Rate",
	"Gas Supply Charge",
	"Gas Total Delivery",
	"Gas Total Supply",
	"Gas Total Taxes",
	"Gas Total Cost",
	"Total Energy Charges",
	"Miscellaneous Charges",
	"Amount Due",
}

// Rate precisions are per charge type and must match existing exports:
// electricity delivery and SBC 6 decimals, transition 7, supply 8; gas
// delivery 5, gas supply 6. Currency is always 2.
func csvRow(r entity.BillRecord) []string {
	e, g := r.Electric, r.Gas
	return []string{
		r.FileName,
		csvDate(r.StatementDate),
		csvDate(r.ServiceStart),
		csvDate(r.ServiceEnd),
		fmt.Sprintf("%d", r.Days),
		csvQty(e.UsageKWh),
		money2(e.BasicServiceCharge),
		fmt.Sprintf("%.6f", e.DeliveryRate),
		money2(e.DeliveryCharge),
		fmt.Sprintf("%.7f", e.TransitionRate),
		money2(e.TransitionCharge),
		fmt.Sprintf("%.6f", e.SBCRate),
		money2(e.SBCCharge),
		fmt.Sprintf("%.8f", e.SupplyRate),
		money2(e.SupplyCharge),
		money2(e.TotalDelivery),
		money2(e.TotalSupply),
		money2(e.TotalTaxes),
		money2(e.TotalCost),
		csvQty(g.UsageTherms),
		money2(g.BasicServiceCharge),
		fmt.Sprintf("%.5f", g.DeliveryRate),
		money2(g.DeliveryCharge),
		fmt.Sprintf("%.6f", g.SupplyRate),
		money2(g.SupplyCharge),
		money2(g.TotalDelivery),
		money2(g.TotalSupply),
		money2(g.TotalTaxes),
		money2(g.TotalCost),
		money2(r.TotalEnergyCharges),
		money2(r.MiscellaneousCharges),
		money2(r.AmountDue),
	}
}

// WriteCSV writes one flattened row per record, in the order given.
func WriteCSV(w io.Writer, recs []entity.BillRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range recs {
		if err := cw.Write(csvRow(r)); err != nil {
			return fmt.Errorf("write csv row %q: %w", r.FileName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func money2(v float64) string { return fmt.Sprintf("%.2f", v) }

func csvQty(v float64) string { return fmt.Sprintf("%g", v) }
