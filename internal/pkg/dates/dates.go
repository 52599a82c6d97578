package dates

import "time"

const Layout = "2006-01-02"

// AddDays returns the calendar date that is days after t, at local
// midnight. It works on date components, not on raw durations, so the
// result never shifts a day across DST or timezone boundaries.
func AddDays(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, t.Location())
}

// Format renders t as an ISO calendar date (YYYY-MM-DD).
func Format(t time.Time) string {
	return t.Format(Layout)
}

// ParseLocal parses an ISO calendar date at local midnight.
func ParseLocal(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}

// DaysBetween returns the number of calendar days from a to b,
// negative when b is before a. Both dates are rebuilt from their
// components in UTC before subtracting, so a DST transition between
// them cannot shave the count short.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}
