package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

// CalendarDate is a proleptic Gregorian day with no time-of-day and no offset.
// Values built through ParseDate or NewCalendarDate always name a real day.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate validates the fields and returns the corresponding date.
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	if month < time.January || month > time.December {
		return CalendarDate{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("%w: day %d does not exist in %04d-%02d", ErrInvalidDate, day, year, month)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// ParseDate reads a YYYY-MM-DD string field by field.
//
// The string is never handed to a generic time parser: those read it as UTC
// midnight, which moves the local calendar day backward west of Greenwich.
func ParseDate(raw string) (CalendarDate, error) {
	parts := strings.Split(raw, config.DateSeparator)
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	year, okY := parseField(parts[0], 4, 4)
	month, okM := parseField(parts[1], 1, 2)
	day, okD := parseField(parts[2], 1, 2)
	if !okY || !okM || !okD {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	d, err := NewCalendarDate(year, time.Month(month), day)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w (input %q)", err, raw)
	}
	return d, nil
}

// parseField accepts only ASCII digits, so signs and spaces are rejected.
func parseField(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// DateOf returns the wall-clock day of t in its own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// DaysInMonth returns the length of the month, accounting for leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String renders the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf(config.FormatISODate, d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than o.
func (d CalendarDate) Before(o CalendarDate) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d CalendarDate) After(o CalendarDate) bool { return d.Compare(o) > 0 }

// Time returns midnight of d in loc.
func (d CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Format renders d with a Go time layout (e.g. "02/01/2006" for DD/MM/YYYY).
func (d CalendarDate) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

// AddDays moves d by n calendar days.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}
