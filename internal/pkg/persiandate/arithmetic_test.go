// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonths(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		year, month, day int
		months           int
		want             string
	}{
		{1397, 1, 31, 1, "1397-02-31"},
		{1397, 6, 31, 1, "1397-07-30"},
		{1397, 6, 30, 1, "1397-07-30"},
		{1397, 11, 30, 1, "1397-12-29"},
		{1397, 12, 12, 1, "1398-01-12"},
		{1399, 12, 30, 1, "1400-01-30"},
		{1397, 5, 31, 7, "1397-12-29"},
		// The clamped day stays clamped across later steps.
		{1397, 6, 31, 7, "1398-01-29"},
		{1397, 1, 18, 11, "1397-12-18"},
		{1397, 1, 31, 36, "1400-01-31"},
		{1395, 12, 30, 36, "1398-12-29"},
		{1395, 12, 30, 48, "1399-12-30"},
	} {
		date := mustDate(t, test.year, test.month, test.day)
		got, err := date.AddMonths(test.months)
		require.NoError(t, err)
		assert.Equal(t, test.want, got.DateString(), "%s + %d months", date.DateString(), test.months)
	}
}

func TestAddMonthsThenDays(t *testing.T) {
	t.Parallel()
	date := mustDate(t, 1397, 1, 18)
	date, err := date.AddMonths(11)
	require.NoError(t, err)
	assert.Equal(t, 12, date.Month())
	date, err = date.AddDays(20)
	require.NoError(t, err)
	assert.Equal(t, 1, date.Month())
	assert.Equal(t, "1398-01-09", date.DateString())

	date, err = mustDate(t, 1397, 1, 18).SubDays(8)
	require.NoError(t, err)
	date, err = date.AddMonths(1)
	require.NoError(t, err)
	assert.Equal(t, "1397-02-10", date.DateString())

	date, err = FromTime(time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	date, err = date.AddMonths(4)
	require.NoError(t, err)
	assert.Equal(t, 1398, date.Year())
	assert.Equal(t, "1398-02-11", date.DateString())
}

func TestSubMonths(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		year, month, day int
		months           int
		want             string
	}{
		{1397, 6, 11, 1, "1397-05-11"},
		{1397, 7, 1, 1, "1397-06-01"},
		{1397, 7, 30, 6, "1397-01-30"},
		{1397, 1, 15, 1, "1396-12-15"},
		{1397, 3, 31, 3, "1396-12-29"},
		{1397, 1, 31, 13, "1395-12-30"},
		{1397, 5, 10, 17, "1395-12-10"},
		{1397, 12, 10, 17, "1396-07-10"},
		{1397, 12, 10, 24, "1395-12-10"},
		{1399, 12, 30, 12, "1398-12-29"},
		{1399, 12, 30, 13, "1398-11-30"},
		{1395, 1, 31, 34, "1392-03-31"},
	} {
		date := mustDate(t, test.year, test.month, test.day)
		got, err := date.SubMonths(test.months)
		require.NoError(t, err)
		assert.Equal(t, test.want, got.DateString(), "%s - %d months", date.DateString(), test.months)
	}
}

func TestYears(t *testing.T) {
	t.Parallel()
	date := mustDate(t, 1397, 1, 31)
	got, err := date.SubYears(10)
	require.NoError(t, err)
	assert.Equal(t, "1387-01-31", got.DateString())
	got, err = date.AddYears(3)
	require.NoError(t, err)
	viaMonths, err := date.AddMonths(36)
	require.NoError(t, err)
	assert.Equal(t, got, viaMonths)
	got, err = date.SubYears(2)
	require.NoError(t, err)
	got, err = got.SubMonths(34)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 1392, 3, 31), got)

	leapDay := mustDate(t, 1399, 12, 30)
	got, err = leapDay.AddYears(1)
	require.NoError(t, err)
	assert.Equal(t, "1400-12-29", got.DateString())
	got, err = leapDay.SubYears(4)
	require.NoError(t, err)
	assert.Equal(t, "1395-12-30", got.DateString())
	got, err = leapDay.SubYears(1)
	require.NoError(t, err)
	assert.Equal(t, "1398-12-29", got.DateString())
}

func TestNegativeAndZero(t *testing.T) {
	t.Parallel()
	date, err := New(1397, 6, 31, 10, 20, 30, tehran)
	require.NoError(t, err)
	for _, operation := range []func(int) (Date, error){
		date.AddYears,
		date.SubYears,
		date.AddMonths,
		date.SubMonths,
		date.AddWeeks,
		date.SubWeeks,
		date.AddDays,
		date.SubDays,
		date.AddHours,
		date.SubHours,
		date.AddMinutes,
		date.SubMinutes,
		date.AddSeconds,
		date.SubSeconds,
	} {
		got, err := operation(0)
		require.NoError(t, err)
		assert.Equal(t, date, got)
	}
	for _, test := range []struct {
		positive func(int) (Date, error)
		negative func(int) (Date, error)
	}{
		{date.AddYears, date.SubYears},
		{date.AddMonths, date.SubMonths},
		{date.AddWeeks, date.SubWeeks},
		{date.AddDays, date.SubDays},
		{date.AddHours, date.SubHours},
		{date.AddMinutes, date.SubMinutes},
		{date.AddSeconds, date.SubSeconds},
	} {
		for _, n := range []int{1, 5, 13} {
			want, err := test.positive(n)
			require.NoError(t, err)
			got, err := test.negative(-n)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			want, err = test.negative(n)
			require.NoError(t, err)
			got, err = test.positive(-n)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestTimeArithmetic(t *testing.T) {
	t.Parallel()
	date, err := New(1402, 12, 29, 23, 30, 0, tehran)
	require.NoError(t, err)
	got, err := date.AddHours(1)
	require.NoError(t, err)
	assert.Equal(t, "1403-01-01 00:30:00", got.String())
	assert.Equal(t, tehran, got.Location())
	got, err = date.AddMinutes(29)
	require.NoError(t, err)
	assert.Equal(t, "1402-12-29 23:59:00", got.String())
	got, err = date.AddSeconds(1800)
	require.NoError(t, err)
	assert.Equal(t, "1403-01-01 00:00:00", got.String())
	got, err = date.SubWeeks(1)
	require.NoError(t, err)
	assert.Equal(t, "1402-12-22 23:30:00", got.String())
	got, err = date.AddWeeks(2)
	require.NoError(t, err)
	assert.Equal(t, "1403-01-14 23:30:00", got.String())
}

func TestArithmeticKeepsNilLocation(t *testing.T) {
	t.Parallel()
	date := mustDate(t, 1397, 1, 25)
	got, err := date.AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 1397, 1, 26), got)
}

func TestArithmeticOutOfRange(t *testing.T) {
	t.Parallel()
	first := mustDate(t, persiancal.MinYear, 1, 1)
	last, err := NewDate(persiancal.MaxYear, 12, 30, nil)
	require.NoError(t, err)
	for _, test := range []struct {
		desc      string
		operation func(int) (Date, error)
		n         int
	}{
		{"sub day", first.SubDays, 1},
		{"sub month", first.SubMonths, 1},
		{"sub year", first.SubYears, 1},
		{"sub second", first.SubSeconds, 1},
		{"add day", last.AddDays, 1},
		{"add month", last.AddMonths, 1},
		{"add year", last.AddYears, 1},
		{"add hour", last.AddHours, 24},
	} {
		_, err := test.operation(test.n)
		var conversionError *persiancal.ConversionError
		assert.True(t, errors.As(err, &conversionError), test.desc)
	}
}

func TestLongTimeShifts(t *testing.T) {
	t.Parallel()
	// 3,000,000 hours is 125,000 days, far beyond what a time.Duration can hold.
	start := mustDate(t, 1500, 1, 1)
	byDays, err := start.AddDays(125000)
	require.NoError(t, err)
	assert.Equal(t, "1842-03-26 00:00:00", byDays.String())
	for _, test := range []struct {
		desc      string
		operation func(int) (Date, error)
		n         int
	}{
		{"hours", start.AddHours, 3_000_000},
		{"minutes", start.AddMinutes, 3_000_000 * 60},
		{"seconds", start.AddSeconds, 3_000_000 * 60 * 60},
	} {
		got, err := test.operation(test.n)
		require.NoError(t, err, test.desc)
		assert.Equal(t, byDays, got, test.desc)
	}
	back, err := byDays.SubHours(3_000_000)
	require.NoError(t, err)
	assert.Equal(t, start, back)

	first := mustDate(t, persiancal.MinYear, 1, 1)
	got, err := first.AddHours(10_000_000)
	require.NoError(t, err)
	assert.Equal(t, "2140-10-15 16:00:00", got.String())
	back, err = got.SubHours(10_000_000)
	require.NoError(t, err)
	assert.Equal(t, first, back)
}

func TestExtremeShifts(t *testing.T) {
	t.Parallel()
	date := mustDate(t, 1500, 1, 1)
	operations := []struct {
		desc      string
		operation func(int) (Date, error)
	}{
		{"add years", date.AddYears},
		{"sub years", date.SubYears},
		{"add months", date.AddMonths},
		{"sub months", date.SubMonths},
		{"add weeks", date.AddWeeks},
		{"sub weeks", date.SubWeeks},
		{"add days", date.AddDays},
		{"sub days", date.SubDays},
		{"add hours", date.AddHours},
		{"sub hours", date.SubHours},
		{"add minutes", date.AddMinutes},
		{"sub minutes", date.SubMinutes},
		{"add seconds", date.AddSeconds},
		{"sub seconds", date.SubSeconds},
	}
	for _, n := range []int{math.MinInt, math.MinInt + 1, math.MaxInt, 1 << 40, -(1 << 40)} {
		for _, test := range operations {
			_, err := test.operation(n)
			var conversionError *persiancal.ConversionError
			assert.True(t, errors.As(err, &conversionError), "%s %d", test.desc, n)
		}
	}
	// The widest shifts that can still land in range succeed.
	got, err := mustDate(t, persiancal.MinYear, 1, 1).AddYears(persiancal.MaxYear - persiancal.MinYear)
	require.NoError(t, err)
	assert.Equal(t, "3000-01-01", got.DateString())
	got, err = mustDate(t, persiancal.MaxYear, 12, 1).SubMonths((persiancal.MaxYear-persiancal.MinYear)*12 + 11)
	require.NoError(t, err)
	assert.Equal(t, "1000-01-01", got.DateString())
}

func TestArithmeticIsPure(t *testing.T) {
	t.Parallel()
	date := mustDate(t, 1397, 6, 31)
	_, err := date.AddMonths(1)
	require.NoError(t, err)
	_, err = date.SubYears(3)
	require.NoError(t, err)
	_, err = date.AddDays(100)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, 1397, 6, 31), date)
}
