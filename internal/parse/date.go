package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var reShortDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)

// Layouts for the spelled-out notation, comma optional.
var longDateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Jan. 2, 2006",
	"Jan. 2 2006",
}

// ParseDate recognizes the two date notations bills use, tried in order:
// MM/DD/YY with a fixed century pivot (YY > 50 reads as 19YY, otherwise
// 20YY), then "Month DD, YYYY". Nil means "unknown", not an error.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if m := reShortDate.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year > 50 {
			year += 1900
		} else {
			year += 2000
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return nil
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	for _, layout := range longDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}
	return nil
}
