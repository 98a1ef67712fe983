package parse

// PeriodCharge is one repeated charge line, one per calendar month the bill
// spans.
type PeriodCharge struct {
	Quantity float64
	Rate     float64
	Charge   float64
}

// Reconcile folds per-month charge lines into a usage-weighted rate and the
// exact sum of the listed charges. The summed charge is never recomputed from
// the averaged rate; each source line is rounded independently and the sum
// must match the bill.
func Reconcile(periods []PeriodCharge) (rate, charge float64) {
	var qty, weighted float64
	for _, p := range periods {
		qty += p.Quantity
		weighted += p.Quantity * p.Rate
		charge += p.Charge
	}
	if qty == 0 {
		return 0, charge
	}
	return weighted / qty, charge
}
