package parse

import "github.com/utilibill/bills-tracker/internal/entity"

// extractElectric runs the electricity field chain over the whole text.
// Usage is filled in by the assembler, which shares the days/usage line with
// the service-period pass.
func extractElectric(text string) entity.ElectricCharges {
	var e entity.ElectricCharges

	if ms := reBasicService.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		e.BasicServiceCharge = ParseNumber(ms[0][1])
	}

	delivery := firstMatch(text,
		singlePeriod(reElecDeliverySingle),
		multiMonth(reElecDeliveryMonthly),
	)
	e.DeliveryRate, e.DeliveryCharge = delivery.Rate, delivery.Charge

	transition := firstMatch(text,
		singlePeriod(reElecTransitionSingle),
		multiMonth(reElecTransitionMonthly),
	)
	e.TransitionRate, e.TransitionCharge = transition.Rate, transition.Charge

	sbc := firstMatch(text,
		singlePeriod(reElecSBCSingle),
		multiMonth(reElecSBCMonthly),
	)
	e.SBCRate, e.SBCCharge = sbc.Rate, sbc.Charge

	supply := firstMatch(text,
		singlePeriod(reElecSupplySplit),
		literalRate(reElecSupplyLiteral),
	)
	e.SupplyRate, e.SupplyCharge = supply.Rate, supply.Charge

	e.TotalDelivery = moneyAfter(reElecSubDelivery, text)
	e.TotalSupply = moneyAfter(reElecSubSupply, text)
	e.TotalTaxes = moneyAfter(reElecSubTaxes, text)
	e.TotalCost = moneyAfter(reElecTotalCost, text)
	return e
}
