// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"errors"
	"testing"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tehran is a fixed +03:30 zone so tests do not depend on the system tzdata.
var tehran = time.FixedZone("IRST", 3*60*60+30*60)

func TestNew(t *testing.T) {
	t.Parallel()
	date, err := NewDate(1397, 1, 25, nil)
	require.NoError(t, err)
	assert.Equal(t, 1397, date.Year())
	assert.Equal(t, 1, date.Month())
	assert.Equal(t, 25, date.Day())
	assert.Equal(t, 0, date.Hour())
	assert.Equal(t, time.UTC, date.Location())
	assert.Equal(t, "1397-01-25 00:00:00", date.Format("Y-m-d H:i:s"))
	assert.Equal(t, time.Date(2018, time.April, 14, 0, 0, 0, 0, time.UTC), date.Time())
	assert.Equal(t, int64(1523664000), date.Unix())
	assert.False(t, date.IsZero())
	assert.True(t, Date{}.IsZero())
}

func TestNewValidation(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc                                   string
		year, month, day, hour, minute, second int
		wantField                              string
		wantMin, wantMax                       int
	}{
		{"leap day in a common year", 1397, 12, 30, 0, 0, 0, "day", 1, 29},
		{"month out of range", 1397, 13, 1, 0, 0, 0, "month", 1, 12},
		{"month zero", 1397, 0, 1, 0, 0, 0, "month", 1, 12},
		{"day 31 in the second half", 1397, 7, 31, 0, 0, 0, "day", 1, 30},
		{"day zero", 1397, 1, 0, 0, 0, 0, "day", 1, 31},
		{"year too small", 999, 1, 1, 0, 0, 0, "year", 1000, 3000},
		{"year too large", 3001, 1, 1, 0, 0, 0, "year", 1000, 3000},
		{"hour", 1397, 1, 1, 25, 0, 0, "hour", 0, 24},
		{"minute", 1397, 1, 1, 0, 60, 0, "minute", 0, 59},
		{"second", 1397, 1, 1, 0, 0, -1, "second", 0, 59},
	} {
		_, err := New(test.year, test.month, test.day, test.hour, test.minute, test.second, nil)
		var validationError *ValidationError
		require.True(t, errors.As(err, &validationError), test.desc)
		assert.Equal(t, test.wantField, validationError.Field, test.desc)
		assert.Equal(t, test.wantMin, validationError.Min, test.desc)
		assert.Equal(t, test.wantMax, validationError.Max, test.desc)
	}
	// Leap day in a leap year and the 24th hour are both valid.
	_, err := NewDate(1395, 12, 30, nil)
	require.NoError(t, err)
	date, err := New(1397, 1, 25, 24, 0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, time.April, 15, 0, 0, 0, 0, time.UTC), date.Time())
}

func TestFromTime(t *testing.T) {
	t.Parallel()
	date, err := FromTime(time.Date(2019, time.January, 1, 8, 30, 15, 0, tehran))
	require.NoError(t, err)
	assert.Equal(t, "1397-10-11 08:30:15", date.String())
	assert.Equal(t, tehran, date.Location())
	date, err = FromGregorian(2025, time.March, 20, 23, 59, 59, nil)
	require.NoError(t, err)
	assert.Equal(t, "1403-12-30 23:59:59", date.String())
	_, err = FromTime(time.Date(1500, time.January, 1, 0, 0, 0, 0, time.UTC))
	var conversionError *persiancal.ConversionError
	assert.True(t, errors.As(err, &conversionError))
}

func TestFromUnix(t *testing.T) {
	t.Parallel()
	date, err := FromUnix(1333857600, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "1391-01-20 04:00:00", date.String())
	date, err = FromUnix(1552608000, nil)
	require.NoError(t, err)
	assert.Equal(t, "1397-12-24", date.Format("Y-m-d"))
	date, err = FromUnix(1333857600, tehran)
	require.NoError(t, err)
	assert.Equal(t, "1391-01-20 07:30:00", date.String())
	assert.Equal(t, int64(1333857600), date.Unix())
}

func TestNow(t *testing.T) {
	t.Parallel()
	clock := ClockFunc(func() time.Time {
		return time.Date(2024, time.March, 19, 21, 0, 0, 0, time.UTC)
	})
	date, err := Now(clock, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "1402-12-29 21:00:00", date.String())
	// The same instant is already the next Persian year in Tehran.
	date, err = Now(clock, tehran)
	require.NoError(t, err)
	assert.Equal(t, "1403-01-01 00:30:00", date.String())
	date, err = Now(SystemClock, nil)
	require.NoError(t, err)
	assert.False(t, date.IsZero())
}

func TestDayOfYear(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		year, month, day int
		want             int
	}{
		{1397, 1, 25, 25},
		{1397, 5, 20, 144},
		{1397, 7, 3, 189},
		{1397, 12, 29, 365},
		{1395, 12, 30, 366},
	} {
		date := mustDate(t, test.year, test.month, test.day)
		assert.Equal(t, test.want, date.DayOfYear(), date.String())
	}
	assert.True(t, mustDate(t, 1395, 12, 30).IsLeapYear())
	assert.False(t, mustDate(t, 1397, 12, 29).IsLeapYear())
}

func TestDayOfWeek(t *testing.T) {
	t.Parallel()
	date := mustDate(t, 1397, 1, 25)
	assert.Equal(t, persiancal.Saturday, date.DayOfWeek())
	assert.True(t, date.IsSaturday())
	assert.False(t, date.IsFriday())
	assert.True(t, mustDate(t, 1403, 1, 3).IsFriday())
	assert.True(t, mustDate(t, 1403, 1, 1).IsWednesday())
	assert.True(t, mustDate(t, 1403, 1, 2).IsThursday())
	assert.True(t, mustDate(t, 1403, 1, 5).IsSunday())
	assert.True(t, mustDate(t, 1403, 1, 6).IsMonday())
	assert.True(t, mustDate(t, 1403, 1, 7).IsTuesday())
	assert.True(t, mustDate(t, 1403, 1, 7).IsDayOfWeek(persiancal.Tuesday))
}

func TestWeekOfMonth(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		year, month, day int
		want             int
	}{
		{1400, 1, 8, 2},
		{1400, 5, 13, 3},
		{1390, 11, 11, 2},
		{1395, 7, 20, 4},
		{1400, 1, 1, 1},
	} {
		date := mustDate(t, test.year, test.month, test.day)
		assert.Equal(t, test.want, date.WeekOfMonth(), date.String())
	}
	assert.Equal(t, 4, mustDate(t, 1397, 1, 25).WeekOfYear())
	assert.Equal(t, 1, mustDate(t, 1397, 1, 7).WeekOfYear())
	assert.Equal(t, 53, mustDate(t, 1395, 12, 30).WeekOfYear())
}

func TestMonthDays(t *testing.T) {
	t.Parallel()
	date := mustDate(t, 1397, 1, 25)
	assert.Equal(t, 31, date.MonthDays())
	assert.Equal(t, 30, date.DaysOf(7))
	assert.Equal(t, 29, date.DaysOf(12))
	assert.Equal(t, 30, mustDate(t, 1395, 1, 1).DaysOf(12))
	assert.Equal(t, "فروردین", date.MonthName())
}

func mustDate(t *testing.T, year, month, day int) Date {
	t.Helper()
	date, err := NewDate(year, month, day, nil)
	require.NoError(t, err)
	return date
}
