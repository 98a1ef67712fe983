package parse

import "github.com/utilibill/bills-tracker/internal/entity"

// extractDocumentTotals fills the document-level monetary totals. Each is a
// single literal-label pattern with no fallback; an absent label leaves 0.
func extractDocumentTotals(text string, rec *entity.BillRecord) {
	rec.TotalEnergyCharges = moneyAfter(reTotalEnergy, text)
	rec.MiscellaneousCharges = moneyAfter(reMiscCharges, text)
	rec.AmountDue = moneyAfter(reAmountDue, text)
}
