package parse

import (
	"log/slog"
	"math"
	"time"

	"github.com/utilibill/bills-tracker/internal/entity"
)

// Assembler turns one extracted-text blob into a BillRecord. It is stateless
// and safe to share across goroutines; each call is independent.
type Assembler struct {
	log *slog.Logger
}

func NewAssembler(log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{log: log}
}

// Assemble runs every field-extraction pass over text and returns the
// composed record. Total for any string input: a field that matches nothing
// stays at its zero value, and no input can make this panic.
func (a *Assembler) Assemble(text, fileName string) entity.BillRecord {
	text = NormalizeText(text)
	rec := entity.BillRecord{FileName: fileName}

	if m := reStatementDate.FindStringSubmatch(text); m != nil {
		rec.StatementDate = ParseDate(m[1])
	}
	if m := reServicePeriod.FindStringSubmatch(text); m != nil {
		rec.ServiceStart = ParseDate(m[1])
		rec.ServiceEnd = ParseDate(m[2])
	}

	days, kwh, therms := extractUsage(text)
	rec.Days = days
	rec.Electric = extractElectric(text)
	rec.Electric.UsageKWh = kwh
	rec.Gas = extractGas(text)
	rec.Gas.UsageTherms = therms
	extractDocumentTotals(text, &rec)

	if rec.Days == 0 && rec.ServiceStart != nil && rec.ServiceEnd != nil {
		rec.Days = spanDays(*rec.ServiceStart, *rec.ServiceEnd)
	}

	a.log.Debug("assemble.ok",
		"file", fileName,
		"days", rec.Days,
		"kwh", rec.Electric.UsageKWh,
		"therms", rec.Gas.UsageTherms,
		"amount_due", rec.AmountDue,
	)
	return rec
}

// extractUsage reads the "NN days NNNN kwh" style line per fuel. The days
// value comes from whichever fuel line carries it; a "Total usage" label is
// the fallback when the combined line is absent.
func extractUsage(text string) (days int, kwh, therms float64) {
	if m := reDaysUsageElec.FindStringSubmatch(text); m != nil {
		days = int(ParseNumber(m[1]))
		kwh = ParseNumber(m[2])
	} else if m := reUsageElec.FindStringSubmatch(text); m != nil {
		kwh = ParseNumber(m[1])
	}
	if m := reDaysUsageGas.FindStringSubmatch(text); m != nil {
		if days == 0 {
			days = int(ParseNumber(m[1]))
		}
		therms = ParseNumber(m[2])
	} else if m := reUsageGas.FindStringSubmatch(text); m != nil {
		therms = ParseNumber(m[1])
	}
	return days, kwh, therms
}

// spanDays derives the billing-period length as ceil(|end-start|) in days.
func spanDays(start, end time.Time) int {
	return int(math.Ceil(math.Abs(end.Sub(start).Hours()) / 24))
}
