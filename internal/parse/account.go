package parse

import (
	"strings"

	"github.com/utilibill/bills-tracker/constants"
	"github.com/utilibill/bills-tracker/internal/entity"
)

// ExtractAccountInfo recovers the best-effort account identity from one
// document's text. Any field may come back empty; callers run this once per
// batch, on the first document that yields an account number.
func ExtractAccountInfo(text string) entity.AccountInfo {
	text = NormalizeText(text)
	var info entity.AccountInfo

	if m := reAccountNumber.FindStringSubmatch(text); m != nil {
		info.AccountNumber = m[1]
	}
	info.CustomerName = extractCustomerName(text)
	if m := reStreetLine.FindStringSubmatch(text); m != nil {
		info.ServiceAddress = m[1]
	}
	if m := reCityStateZip.FindStringSubmatch(text); m != nil {
		info.CityStateZip = m[1]
	}
	return info
}

// extractCustomerName takes the first pair of consecutive all-caps tokens
// where neither token is billing vocabulary. Exactly two tokens; pairs are
// checked in document order, including pairs that share a token with an
// excluded neighbor.
func extractCustomerName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		for i := 0; i+1 < len(fields); i++ {
			a, b := fields[i], fields[i+1]
			if !reCapsToken.MatchString(a) || !reCapsToken.MatchString(b) {
				continue
			}
			if constants.IsExcludedNameToken(a) || constants.IsExcludedNameToken(b) {
				continue
			}
			return a + " " + b
		}
	}
	return ""
}
