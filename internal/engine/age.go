package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-age/internal/config"
)

// AgeBreakdown is an exact age in calendar units.
// Months stay in [0,11] and Days in [0,30].
type AgeBreakdown struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// Valid reports whether the breakdown respects the unit ranges.
func (a AgeBreakdown) Valid() bool {
	return a.Years >= 0 &&
		a.Months >= 0 && a.Months <= config.MaxMonths &&
		a.Days >= 0 && a.Days <= config.MaxDays
}

// Validate fails with ErrFutureDate when birth is strictly later than today.
// The comparison is on calendar days; the same day passes.
func Validate(birth, today CalendarDate) error {
	if birth.After(today) {
		return fmt.Errorf("%w: %s is after %s", ErrFutureDate, birth, today)
	}
	return nil
}

// ComputeAge subtracts birth from today with calendar borrowing.
// The caller must have checked Validate(birth, today).
//
// A day borrow takes the length of the month preceding today's month. The
// birth day is clamped to that length, so a birth on the 31st borrowing from
// a 29-day February counts as a birth on the 29th.
func ComputeAge(birth, today CalendarDate) AgeBreakdown {
	years := today.Year - birth.Year
	months := int(today.Month) - int(birth.Month)
	days := today.Day - birth.Day

	if days < 0 {
		prev := today.Month - 1
		prevYear := today.Year
		if prev < 1 {
			prev = 12
			prevYear--
		}
		dim := DaysInMonth(prevYear, prev)
		days = dim - min(birth.Day, dim) + today.Day
		months--
	}

	if months < 0 {
		months += config.MonthsPerYear
		years--
	}

	return AgeBreakdown{Years: years, Months: months, Days: days}
}

// Calculate runs the whole pipeline on a raw form value: presence check,
// normalization, validation and computation. It is a pure function of
// (raw, today) so the presentation layer carries no calendar logic.
func Calculate(raw string, today CalendarDate) (CalendarDate, AgeBreakdown, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CalendarDate{}, AgeBreakdown{}, ErrMissingInput
	}

	birth, err := ParseDate(raw)
	if err != nil {
		return CalendarDate{}, AgeBreakdown{}, err
	}
	if err := Validate(birth, today); err != nil {
		return CalendarDate{}, AgeBreakdown{}, err
	}

	age := ComputeAge(birth, today)
	slog.Debug(config.MsgAgeComputed,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyInput, raw,
		config.LogKeyToday, today.String(),
		config.LogKeyYears, age.Years,
		config.LogKeyMonths, age.Months,
		config.LogKeyDays, age.Days,
	)
	return birth, age, nil
}
