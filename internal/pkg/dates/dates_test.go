package dates

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func TestAddDaysCalendarArithmetic(t *testing.T) {
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-15", Format(AddDays(base, 5)))
	assert.Equal(t, "2024-01-10", Format(AddDays(base, 0)))
	assert.Equal(t, "2024-02-01", Format(AddDays(base, 22)))
}

func TestAddDaysIgnoresTimeOfDay(t *testing.T) {
	for _, hour := range []int{0, 1, 11, 23} {
		at := time.Date(2024, 3, 30, hour, 59, 0, 0, time.Local)
		assert.Equal(t, "2024-04-04", Format(AddDays(at, 5)), "hour %d", hour)
	}
}

func TestAddDaysAcrossYearBoundary(t *testing.T) {
	base := time.Date(2023, 12, 30, 15, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-02", Format(AddDays(base, 3)))
}

func TestParseLocalRoundTrip(t *testing.T) {
	d, err := ParseLocal("2024-01-15")
	assert.NoError(t, err)
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, "2024-01-15", Format(d))

	_, err = ParseLocal("15/01/2024")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 10, 23, 0, 0, 0, time.Local)
	b := time.Date(2024, 1, 12, 1, 0, 0, 0, time.Local)
	assert.Equal(t, 2, DaysBetween(a, b))
	assert.Equal(t, -2, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDaysBetweenAcrossDSTTransitions(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	// Spring forward: March 10 2024 is only 23 hours long in New York,
	// which must not cost a day in the count.
	a := time.Date(2024, 3, 8, 12, 0, 0, 0, ny)
	b := time.Date(2024, 3, 11, 12, 0, 0, 0, ny)
	assert.Equal(t, 3, DaysBetween(a, b))

	// Fall back: November 3 2024 is 25 hours long and must not add one.
	a = time.Date(2024, 11, 1, 12, 0, 0, 0, ny)
	b = time.Date(2024, 11, 4, 12, 0, 0, 0, ny)
	assert.Equal(t, 3, DaysBetween(a, b))
}
