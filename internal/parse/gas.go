package parse

import "github.com/utilibill/bills-tracker/internal/entity"

// extractGas runs the gas field chain. Layouts label the gas service charge
// explicitly ("Gas service charge") or reuse the electricity label, in which
// case the second occurrence in document order is the gas one.
func extractGas(text string) entity.GasCharges {
	var g entity.GasCharges

	if m := reGasService.FindStringSubmatch(text); m != nil {
		g.BasicServiceCharge = ParseNumber(m[1])
	} else if ms := reBasicService.FindAllStringSubmatch(text, -1); len(ms) > 1 {
		g.BasicServiceCharge = ParseNumber(ms[1][1])
	}

	delivery := firstMatch(text,
		singlePeriod(reGasDeliverySingle),
		multiMonth(reGasDeliveryMonthly),
	)
	g.DeliveryRate, g.DeliveryCharge = delivery.Rate, delivery.Charge

	// Supply has three known encodings: split-digit single period, repeated
	// months, and a plain literal decimal rate.
	supply := firstMatch(text,
		singlePeriod(reGasSupplySingle),
		multiMonth(reGasSupplyMonthly),
		literalRate(reGasSupplyLiteral),
	)
	g.SupplyRate, g.SupplyCharge = supply.Rate, supply.Charge

	g.TotalDelivery = moneyAfter(reGasSubDelivery, text)
	g.TotalSupply = moneyAfter(reGasSubSupply, text)
	g.TotalTaxes = moneyAfter(reGasSubTaxes, text)
	g.TotalCost = moneyAfter(reGasTotalCost, text)
	return g
}
