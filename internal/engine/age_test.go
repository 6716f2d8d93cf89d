package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/engine"
)

// TestComputeAge covers the borrow paths and the canonical edge cases.
func TestComputeAge(t *testing.T) {
	tests := []struct {
		name  string
		birth string
		today string
		want  engine.AgeBreakdown
		desc  string
	}{
		{
			name:  "Leap day birth, common-year reference",
			birth: "2020-02-29",
			today: "2021-02-28",
			want:  engine.AgeBreakdown{Years: 0, Months: 11, Days: 30},
			desc:  "Borrow from January (31): 31 - 29 + 28 = 30, then borrow a year",
		},
		{
			name:  "Month end into short February",
			birth: "2000-01-31",
			today: "2000-03-01",
			want:  engine.AgeBreakdown{Years: 0, Months: 1, Days: 1},
			desc:  "Borrow from February 2000 (29), birth day clamped to 29",
		},
		{
			name:  "Same day of year",
			birth: "1990-06-15",
			today: "2024-06-15",
			want:  engine.AgeBreakdown{Years: 34, Months: 0, Days: 0},
		},
		{
			name:  "Year rollover borrow",
			birth: "1999-12-31",
			today: "2000-01-01",
			want:  engine.AgeBreakdown{Years: 0, Months: 0, Days: 1},
			desc:  "Borrow from December of the previous year",
		},
		{
			name:  "Borrow from leap February",
			birth: "1990-05-20",
			today: "2024-03-10",
			want:  engine.AgeBreakdown{Years: 33, Months: 9, Days: 19},
			desc:  "29 - 20 + 10 = 19",
		},
		{
			name:  "Borrow from 30-day month",
			birth: "2000-03-31",
			today: "2000-05-01",
			want:  engine.AgeBreakdown{Years: 0, Months: 1, Days: 1},
		},
		{
			name:  "No borrow",
			birth: "2010-02-03",
			today: "2024-08-19",
			want:  engine.AgeBreakdown{Years: 14, Months: 6, Days: 16},
		},
		{
			name:  "Day before birthday",
			birth: "1990-06-15",
			today: "2024-06-14",
			want:  engine.AgeBreakdown{Years: 33, Months: 11, Days: 30},
			desc:  "Borrow from May (31): 31 - 15 + 14 = 30",
		},
		{
			name:  "Newborn",
			birth: "2024-06-14",
			today: "2024-06-15",
			want:  engine.AgeBreakdown{Years: 0, Months: 0, Days: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.ComputeAge(mustDate(t, tt.birth), mustDate(t, tt.today))
			assert.Equal(t, tt.want, got, tt.desc)
		})
	}
}

// TestComputeAge_SameDay checks {0,0,0} for every day of a leap year.
func TestComputeAge_SameDay(t *testing.T) {
	d := engine.CalendarDate{Year: 2024, Month: time.January, Day: 1}
	for ; d.Year == 2024; d = d.AddDays(1) {
		assert.Equal(t, engine.AgeBreakdown{}, engine.ComputeAge(d, d), "same day %s", d)
	}
}

// TestComputeAge_Monotonic advances "today" one day at a time and checks the
// breakdown never goes backwards and stays within its unit ranges.
func TestComputeAge_Monotonic(t *testing.T) {
	births := []string{"2000-01-31", "2020-02-29", "1999-12-31", "2001-03-30", "2003-07-15", "2004-01-01"}

	for _, raw := range births {
		birth := mustDate(t, raw)
		prev := engine.AgeBreakdown{}
		today := birth

		for i := 0; i < 5*366; i++ {
			got := engine.ComputeAge(birth, today)
			require.True(t, got.Valid(), "birth %s today %s gave %+v", birth, today, got)
			require.False(t, lessAge(got, prev), "birth %s: %+v at %s regressed from %+v", birth, got, today, prev)

			prev = got
			today = today.AddDays(1)
		}
	}
}

// TestComputeAge_Reconstruct checks that birth plus the breakdown lands on today:
// years and months are added with the day clamped to the target month, then days.
func TestComputeAge_Reconstruct(t *testing.T) {
	births := []string{"1999-01-31", "1999-12-31", "2000-02-29", "2000-01-30", "2000-05-31", "2000-08-15"}

	for _, raw := range births {
		birth := mustDate(t, raw)

		for today := birth; today.Year < 2004; today = today.AddDays(1) {
			age := engine.ComputeAge(birth, today)
			got := addYearsMonths(birth, age.Years, age.Months).AddDays(age.Days)
			require.Equal(t, today, got, "birth %s + %+v", birth, age)
		}
	}
}

func addYearsMonths(d engine.CalendarDate, years, months int) engine.CalendarDate {
	total := d.Year*12 + int(d.Month-1) + years*12 + months
	y, m := total/12, time.Month(total%12+1)
	return engine.CalendarDate{Year: y, Month: m, Day: min(d.Day, engine.DaysInMonth(y, m))}
}

func lessAge(a, b engine.AgeBreakdown) bool {
	if a.Years != b.Years {
		return a.Years < b.Years
	}
	if a.Months != b.Months {
		return a.Months < b.Months
	}
	return a.Days < b.Days
}

func TestValidate(t *testing.T) {
	today := mustDate(t, "2024-06-15")

	assert.NoError(t, engine.Validate(mustDate(t, "2024-06-15"), today), "equal dates pass")
	assert.NoError(t, engine.Validate(mustDate(t, "2024-06-14"), today))
	assert.NoError(t, engine.Validate(mustDate(t, "1900-01-01"), today))

	assert.ErrorIs(t, engine.Validate(mustDate(t, "2024-06-16"), today), engine.ErrFutureDate)
	assert.ErrorIs(t, engine.Validate(mustDate(t, "2025-01-01"), today), engine.ErrFutureDate)
}

func TestCalculate(t *testing.T) {
	today := mustDate(t, "2024-06-15")

	tests := []struct {
		name    string
		raw     string
		want    engine.AgeBreakdown
		wantErr error
	}{
		{"Valid", "1990-06-15", engine.AgeBreakdown{Years: 34}, nil},
		{"Surrounding spaces", "  1990-06-15 ", engine.AgeBreakdown{Years: 34}, nil},
		{"Empty", "", engine.AgeBreakdown{}, engine.ErrMissingInput},
		{"Blank", "   ", engine.AgeBreakdown{}, engine.ErrMissingInput},
		{"Month 13", "2024-13-01", engine.AgeBreakdown{}, engine.ErrInvalidDate},
		{"Garbage", "not-a-date", engine.AgeBreakdown{}, engine.ErrInvalidDate},
		{"Tomorrow", "2024-06-16", engine.AgeBreakdown{}, engine.ErrFutureDate},
		{"Today", "2024-06-15", engine.AgeBreakdown{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birth, got, err := engine.Calculate(tt.raw, today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, engine.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, birth.After(today))
		})
	}
}

func TestAgeBreakdown_Valid(t *testing.T) {
	assert.True(t, engine.AgeBreakdown{Years: 0, Months: 11, Days: 30}.Valid())
	assert.False(t, engine.AgeBreakdown{Years: -1}.Valid())
	assert.False(t, engine.AgeBreakdown{Months: 12}.Valid())
	assert.False(t, engine.AgeBreakdown{Days: 31}.Valid())
	assert.False(t, engine.AgeBreakdown{Days: -1}.Valid())
}
