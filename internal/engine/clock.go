package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is used to determine "today" for validation and age calculation.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current calendar day as seen by the clock's location.
func Today(c Clock) CalendarDate {
	return DateOf(c.Now())
}
