package parse

import "regexp"

// All charge patterns capture (quantity, rate-or-digit-run, charge) in that
// order, so the matcher constructors below can be shared across fuels.

// singlePeriod matches the one-billing-period encoding with a split-digit
// rate. A reconstructed rate of exactly 0 reports no match so the chain can
// fall through to the repeated-month encoding.
func singlePeriod(re *regexp.Regexp) matcher {
	return func(text string) (RateCharge, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return RateCharge{}, false
		}
		rate := ReconstructRate(m[2])
		if rate == 0 {
			return RateCharge{}, false
		}
		return RateCharge{Rate: rate, Charge: ParseNumber(m[3])}, true
	}
}

// multiMonth matches the repeated per-month encoding and reconciles the lines
// into one usage-weighted rate and summed charge.
func multiMonth(re *regexp.Regexp) matcher {
	return func(text string) (RateCharge, bool) {
		ms := re.FindAllStringSubmatch(text, -1)
		if len(ms) == 0 {
			return RateCharge{}, false
		}
		periods := make([]PeriodCharge, 0, len(ms))
		for _, m := range ms {
			periods = append(periods, PeriodCharge{
				Quantity: ParseNumber(m[1]),
				Rate:     ReconstructRate(m[2]),
				Charge:   ParseNumber(m[3]),
			})
		}
		rate, charge := Reconcile(periods)
		return RateCharge{Rate: rate, Charge: charge}, true
	}
}

// literalRate matches the encoding where the rate appears as a plain decimal
// instead of split digits.
func literalRate(re *regexp.Regexp) matcher {
	return func(text string) (RateCharge, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return RateCharge{}, false
		}
		rate := ParseNumber(m[2])
		if rate == 0 {
			return RateCharge{}, false
		}
		return RateCharge{Rate: rate, Charge: ParseNumber(m[3])}, true
	}
}

// moneyAfter returns the first captured amount for a literal-label pattern,
// or 0 when the label is absent.
func moneyAfter(re *regexp.Regexp, text string) float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return ParseNumber(m[1])
}
