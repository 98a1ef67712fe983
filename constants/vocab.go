package constants

import "strings"

// nameExclusions holds uppercase tokens that appear on bills in all caps but
// are never part of a customer name: street suffixes, place names, and
// utility/billing jargon. Customer-name extraction skips any token pair where
// either token is in this set.
var nameExclusions = map[string]struct{}{
	// street suffixes
	"AVE": {}, "AVENUE": {}, "ST": {}, "STREET": {}, "RD": {}, "ROAD": {},
	"DR": {}, "DRIVE": {}, "LN": {}, "LANE": {}, "BLVD": {}, "BOULEVARD": {},
	"CT": {}, "COURT": {}, "PL": {}, "PLACE": {}, "TER": {}, "TERRACE": {},
	"CIR": {}, "CIRCLE": {}, "HWY": {}, "HIGHWAY": {}, "APT": {}, "UNIT": {},
	"PO": {}, "BOX": {},
	// place names
	"NEW": {}, "YORK": {}, "ALBANY": {}, "BUFFALO": {}, "ROCHESTER": {},
	"SYRACUSE": {}, "BINGHAMTON": {}, "ITHACA": {}, "NY": {}, "USA": {},
	// utility and billing jargon
	"ACCOUNT": {}, "NUMBER": {}, "AMOUNT": {}, "DUE": {}, "DATE": {},
	"TOTAL": {}, "SUBTOTAL": {}, "ENERGY": {}, "ELECTRIC": {},
	"ELECTRICITY": {}, "GAS": {}, "NATURAL": {}, "SERVICE": {},
	"SERVICES": {}, "BILLING": {}, "BILL": {}, "STATEMENT": {},
	"CHARGE": {}, "CHARGES": {}, "DELIVERY": {}, "SUPPLY": {},
	"TRANSITION": {}, "BENEFITS": {}, "SYSTEM": {}, "TAXES": {},
	"SURCHARGES": {}, "KWH": {}, "THERMS": {}, "CCF": {}, "METER": {},
	"READING": {}, "USAGE": {}, "PERIOD": {}, "DAYS": {}, "BASIC": {},
	"PAYMENT": {}, "PAYMENTS": {}, "BALANCE": {}, "PREVIOUS": {},
	"PLEASE": {}, "PAY": {}, "CUSTOMER": {}, "UTILITY": {}, "UTILITIES": {},
	"POWER": {}, "LIGHT": {}, "CORP": {}, "CORPORATION": {}, "COMPANY": {},
	"INC": {}, "LLC": {}, "PAGE": {}, "MISCELLANEOUS": {}, "ADDRESS": {},
	"COST": {}, "RATE": {}, "SC": {}, "SBC": {},
}

// IsExcludedNameToken reports whether token can never be part of a customer
// name. The comparison is case-insensitive; the vocabulary itself is
// uppercase because names on bills are.
func IsExcludedNameToken(token string) bool {
	_, ok := nameExclusions[strings.ToUpper(token)]
	return ok
}
