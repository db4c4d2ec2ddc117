package dateutil

import (
	"fmt"
	"time"
)

// Layout is the wire format for civil dates.
const Layout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// Today returns the current date at UTC midnight.
func Today() time.Time {
	return Truncate(time.Now().UTC())
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths advances a date by whole calendar months. Go's AddDate
// normalizes overflow (Jan 31 + 1 month = Mar 3), matching the
// membership arithmetic used throughout.
func AddMonths(t time.Time, months int) time.Time {
	return Truncate(t).AddDate(0, months, 0)
}

// AddDays advances a date by whole days.
func AddDays(t time.Time, days int) time.Time {
	return Truncate(t).AddDate(0, 0, days)
}

// DaysBetween returns b - a in whole days; negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)).Hours() / 24)
}

// RangesOverlap reports whether [aStart,aEnd] and [bStart,bEnd]
// intersect, endpoints included.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !Truncate(aStart).After(Truncate(bEnd)) && !Truncate(bStart).After(Truncate(aEnd))
}

// FormatDate renders a date in wire format.
func FormatDate(t time.Time) string {
	return Truncate(t).Format(Layout)
}

// FormatAmount renders a currency amount with its symbol, two decimals.
func FormatAmount(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
