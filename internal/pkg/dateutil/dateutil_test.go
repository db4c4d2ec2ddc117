package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	start, _ := ParseDate("2025-01-10")
	assert.Equal(t, "2025-02-10", FormatDate(AddMonths(start, 1)))
	assert.Equal(t, "2025-04-10", FormatDate(AddMonths(start, 3)))

	// Month-end overflow normalizes forward.
	eom, _ := ParseDate("2025-01-31")
	assert.Equal(t, "2025-03-03", FormatDate(AddMonths(eom, 1)))
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDate("2025-01-10")
	b, _ := ParseDate("2025-01-17")
	assert.Equal(t, 7, DaysBetween(a, b))
	assert.Equal(t, -7, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestRangesOverlap(t *testing.T) {
	d := func(s string) time.Time {
		v, err := ParseDate(s)
		assert.NoError(t, err)
		return v
	}

	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"disjoint before", "2025-01-01", "2025-01-10", "2025-01-11", "2025-01-20", false},
		{"touching endpoint", "2025-01-01", "2025-01-10", "2025-01-10", "2025-01-20", true},
		{"contained", "2025-01-01", "2025-12-31", "2025-06-01", "2025-06-30", true},
		{"disjoint after", "2025-02-01", "2025-02-28", "2025-01-01", "2025-01-31", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RangesOverlap(d(tc.aStart), d(tc.aEnd), d(tc.bStart), d(tc.bEnd)))
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("10/01/2025")
	assert.Error(t, err)
}
