// internal/app/system/dates/dates.go
package dates

import "time"

// Layout is the calendar-date format used throughout the service. Dates are
// stored and compared as strings in this format, so lexicographic order
// equals chronological order.
const Layout = "2006-01-02"

// IsValid reports whether s is a well-formed calendar date (YYYY-MM-DD).
// time.Parse alone accepts unpadded months and days, so the parsed value
// must format back to the input.
func IsValid(s string) bool {
	t, err := time.Parse(Layout, s)
	return err == nil && t.Format(Layout) == s
}

// Today returns the current UTC date as an ISO string.
func Today() string {
	return time.Now().UTC().Format(Layout)
}
