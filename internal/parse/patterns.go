package parse

import "regexp"

// Pattern fragments. A "money" amount always carries two decimals on bills;
// the split-digit rate is a bare digit run positioned next to the literal
// "@ 0." token (see ReconstructRate).
const (
	qty     = `([\d,]+)`
	money   = `\$?(\d[\d,]*\.\d{2})`
	rateLit = `(0?\.\d+)`
	splitAt = `\s+(\d+)\s+@\s*0\.`
	gasUnit = `(?:therms|ccf)`
)

// Document-level fields.
var (
	reStatementDate = regexp.MustCompile(`(?i)statement date[:\s]+([A-Za-z]+\.? \d{1,2},? \d{4}|\d{1,2}/\d{1,2}/\d{2})`)
	reServicePeriod = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2})\s*(?:-|to|through)\s*(\d{1,2}/\d{1,2}/\d{2})`)

	reDaysUsageElec = regexp.MustCompile(`(?i)(\d+)\s*days\s+` + qty + `\s*kwh`)
	reDaysUsageGas  = regexp.MustCompile(`(?i)(\d+)\s*days\s+` + qty + `\s*` + gasUnit)
	reUsageElec     = regexp.MustCompile(`(?i)total usage[:\s]+` + qty + `\s*kwh`)
	reUsageGas      = regexp.MustCompile(`(?i)total usage[:\s]+` + qty + `\s*` + gasUnit)

	reBasicService = regexp.MustCompile(`(?i)basic service charge[:\s]+` + money)
	reGasService   = regexp.MustCompile(`(?i)gas (?:basic )?service charge[:\s]+` + money)
)

// Electricity compound charges. The single-period form places the split-digit
// rate before the label, the repeated-month form places the label first, one
// line per covered month.
var (
	reElecDeliverySingle  = regexp.MustCompile(`(?i)` + qty + `\s*kwh` + splitAt + `\s*delivery charge[:\s]+` + money)
	reElecDeliveryMonthly = regexp.MustCompile(`(?i)delivery charge\s+` + qty + `\s*kwh` + splitAt + `\s+` + money)

	reElecTransitionSingle  = regexp.MustCompile(`(?i)` + qty + `\s*kwh` + splitAt + `\s*transition charge[:\s]+` + money)
	reElecTransitionMonthly = regexp.MustCompile(`(?i)transition charge\s+` + qty + `\s*kwh` + splitAt + `\s+` + money)

	reElecSBCSingle  = regexp.MustCompile(`(?i)` + qty + `\s*kwh` + splitAt + `\s*(?:system benefits|sbc) charge[:\s]+` + money)
	reElecSBCMonthly = regexp.MustCompile(`(?i)(?:system benefits|sbc) charge\s+` + qty + `\s*kwh` + splitAt + `\s+` + money)

	reElecSupplySplit   = regexp.MustCompile(`(?i)` + qty + `\s*kwh` + splitAt + `\s*supply charge[:\s]+` + money)
	reElecSupplyLiteral = regexp.MustCompile(`(?i)` + qty + `\s*kwh\s+@\s*` + rateLit + `\s*supply charge[:\s]+` + money)
)

// Gas compound charges; the unit keyword keeps these from matching the
// electricity lines. Supply has a third encoding with a literal decimal rate.
var (
	reGasDeliverySingle  = regexp.MustCompile(`(?i)` + qty + `\s*` + gasUnit + splitAt + `\s*delivery charge[:\s]+` + money)
	reGasDeliveryMonthly = regexp.MustCompile(`(?i)delivery charge\s+` + qty + `\s*` + gasUnit + splitAt + `\s+` + money)

	reGasSupplySingle  = regexp.MustCompile(`(?i)` + qty + `\s*` + gasUnit + splitAt + `\s*supply charge[:\s]+` + money)
	reGasSupplyMonthly = regexp.MustCompile(`(?i)supply charge\s+` + qty + `\s*` + gasUnit + splitAt + `\s+` + money)
	reGasSupplyLiteral = regexp.MustCompile(`(?i)` + qty + `\s*` + gasUnit + `\s+@\s*` + rateLit + `\s*supply charge[:\s]+` + money)
)

// Roll-up totals: single literal-label patterns, no fallback. Absent means 0.
var (
	reElecSubDelivery = regexp.MustCompile(`(?i)subtotal electric(?:ity)? delivery(?: services)?[:\s]+` + money)
	reElecSubSupply   = regexp.MustCompile(`(?i)subtotal electric(?:ity)? supply(?: services)?[:\s]+` + money)
	reElecSubTaxes    = regexp.MustCompile(`(?i)subtotal electric(?:ity)? taxes(?: and surcharges)?[:\s]+` + money)
	reElecTotalCost   = regexp.MustCompile(`(?i)total electric(?:ity)? cost[:\s]+` + money)

	reGasSubDelivery = regexp.MustCompile(`(?i)subtotal (?:natural )?gas delivery(?: services)?[:\s]+` + money)
	reGasSubSupply   = regexp.MustCompile(`(?i)subtotal (?:natural )?gas supply(?: services)?[:\s]+` + money)
	reGasSubTaxes    = regexp.MustCompile(`(?i)subtotal (?:natural )?gas taxes(?: and surcharges)?[:\s]+` + money)
	reGasTotalCost   = regexp.MustCompile(`(?i)total (?:natural )?gas cost[:\s]+` + money)

	reTotalEnergy = regexp.MustCompile(`(?i)total energy charges[:\s]+` + money)
	reMiscCharges = regexp.MustCompile(`(?i)miscellaneous charges[:\s]+` + money)
	reAmountDue   = regexp.MustCompile(`(?i)amount due[:\s]+` + money)
)

// Account identity.
var (
	reAccountNumber = regexp.MustCompile(`\b(\d{4}-\d{4}-\d{3})\b`)
	reCapsToken     = regexp.MustCompile(`^[A-Z]{2,}$`)
	reStreetLine    = regexp.MustCompile(`(?im)^\s*(\d+\s+[A-Z0-9][\w .]*?(?:AVE|AVENUE|ST|STREET|RD|ROAD|DR|DRIVE|LN|LANE|BLVD|CT|COURT|PL|PLACE|WAY|TER|CIR)\.?)\s*$`)
	reCityStateZip  = regexp.MustCompile(`(?m)^\s*([A-Za-z][A-Za-z .]*,?\s+[A-Z]{2}\s+\d{5}(?:-\d{4})?)\s*$`)
)
