package parse

import (
	"strconv"
	"strings"
)

// ParseNumber parses a locale-formatted decimal such as "3,990.25".
// Empty or unparsable input yields 0; callers treat 0 as "not found".
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ReconstructRate reassembles a decimal rate whose fractional digits the
// upstream text extractor emits as a separate token from the literal "0.":
// "07894" becomes 0.07894. This is a point fix for that known artifact, not
// general number parsing.
func ReconstructRate(digits string) float64 {
	digits = strings.TrimSpace(digits)
	if digits == "" {
		return 0
	}
	return ParseNumber("0." + digits)
}
