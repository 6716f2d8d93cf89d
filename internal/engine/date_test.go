package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func mustDate(t *testing.T, raw string) engine.CalendarDate {
	t.Helper()
	d, err := engine.ParseDate(raw)
	require.NoError(t, err)
	return d
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    engine.CalendarDate
		wantErr bool
	}{
		{"Standard", "1990-06-15", engine.CalendarDate{Year: 1990, Month: time.June, Day: 15}, false},
		{"Leap day in leap year", "2020-02-29", engine.CalendarDate{Year: 2020, Month: time.February, Day: 29}, false},
		{"Century leap year", "2000-02-29", engine.CalendarDate{Year: 2000, Month: time.February, Day: 29}, false},
		{"Unpadded fields", "2024-1-5", engine.CalendarDate{Year: 2024, Month: time.January, Day: 5}, false},
		{"Empty", "", engine.CalendarDate{}, true},
		{"Month 13", "2024-13-01", engine.CalendarDate{}, true},
		{"Month 0", "2024-00-10", engine.CalendarDate{}, true},
		{"Day 0", "2024-05-00", engine.CalendarDate{}, true},
		{"Not a date", "not-a-date", engine.CalendarDate{}, true},
		{"April 31", "2023-04-31", engine.CalendarDate{}, true},
		{"Feb 29 common year", "2023-02-29", engine.CalendarDate{}, true},
		{"Feb 29 non-leap century", "1900-02-29", engine.CalendarDate{}, true},
		{"Two-digit year", "90-06-15", engine.CalendarDate{}, true},
		{"Extra component", "2024-01-01-01", engine.CalendarDate{}, true},
		{"Slashes", "15/06/1990", engine.CalendarDate{}, true},
		{"Signed day", "2024-01-+1", engine.CalendarDate{}, true},
		{"Leading space", " 2024-01-01", engine.CalendarDate{}, true},
		{"ISO instant", "2024-01-01T00:00:00Z", engine.CalendarDate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ParseDate(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, engine.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseDate_RoundTrip walks every day of a leap year, a common year and a
// non-leap century year and checks that formatting then parsing is lossless.
func TestParseDate_RoundTrip(t *testing.T) {
	for _, year := range []int{1900, 2000, 2023, 2024} {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for day := start; day.Year() == year; day = day.AddDate(0, 0, 1) {
			want := engine.DateOf(day)
			got, err := engine.ParseDate(want.String())
			require.NoError(t, err, "round trip failed for %s", want)
			assert.Equal(t, want, got)
		}
	}
}

func TestNewCalendarDate(t *testing.T) {
	d, err := engine.NewCalendarDate(2024, time.February, 29)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = engine.NewCalendarDate(2024, time.Month(13), 1)
	assert.ErrorIs(t, err, engine.ErrInvalidDate)

	_, err = engine.NewCalendarDate(2023, time.February, 29)
	assert.ErrorIs(t, err, engine.ErrInvalidDate)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2023, time.January, 31},
		{2023, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2023, time.April, 30},
		{2023, time.December, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.DaysInMonth(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

// TestToday_LocalWallClock ensures "today" follows the clock's location and is
// not shifted by a UTC conversion.
func TestToday_LocalWallClock(t *testing.T) {
	// 22:30 in Sao Paulo is already the next day in UTC.
	brt := time.FixedZone("BRT", -3*60*60)
	clock := MockClock{CurrentTime: time.Date(2024, 3, 10, 22, 30, 0, 0, brt)}

	today := engine.Today(clock)
	assert.Equal(t, engine.CalendarDate{Year: 2024, Month: time.March, Day: 10}, today)
	assert.Equal(t, 11, clock.CurrentTime.UTC().Day(), "sanity: UTC day differs")
}

func TestCalendarDate_Compare(t *testing.T) {
	a := engine.CalendarDate{Year: 2024, Month: time.March, Day: 10}
	b := engine.CalendarDate{Year: 2024, Month: time.March, Day: 11}
	c := engine.CalendarDate{Year: 2025, Month: time.January, Day: 1}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, c.After(a))
	assert.False(t, a.After(a))
}

func TestCalendarDate_FormatAndAddDays(t *testing.T) {
	d := engine.CalendarDate{Year: 2024, Month: time.February, Day: 28}

	assert.Equal(t, "28/02/2024", d.Format("02/01/2006"))
	assert.Equal(t, engine.CalendarDate{Year: 2024, Month: time.February, Day: 29}, d.AddDays(1))
	assert.Equal(t, engine.CalendarDate{Year: 2024, Month: time.March, Day: 1}, d.AddDays(2))
	assert.Equal(t, engine.CalendarDate{Year: 2023, Month: time.December, Day: 31}, engine.CalendarDate{Year: 2024, Month: time.January, Day: 1}.AddDays(-1))
}
