// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"fmt"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
)

const (
	// maxShiftYears is the largest year shift that can stay within the supported range.
	maxShiftYears = persiancal.MaxYear - persiancal.MinYear
	// maxShiftMonths is the largest month shift that can stay within the supported range.
	maxShiftMonths = maxShiftYears*12 + 11
	// maxShiftDays bounds day shifts. Any larger shift leaves the supported range.
	maxShiftDays = (maxShiftYears + 1) * 366
	// maxShiftSeconds bounds hour, minute, and second shifts.
	maxShiftSeconds = int64(maxShiftDays) * secondsPerDay

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// AddYears returns the Date n years later.
//
// If the Date is the leap day Esfand 30 and the target year is not a leap year, the day is
// clamped to Esfand 29. A negative n subtracts years and zero returns d unchanged.
func (d Date) AddYears(n int) (Date, error) {
	if n == 0 {
		return d, nil
	}
	if !withinShift(n, maxShiftYears) {
		return Date{}, d.newShiftError(n, "years")
	}
	return d.withYear(d.year + n)
}

// SubYears returns the Date n years earlier, clamping Esfand 30 like AddYears.
func (d Date) SubYears(n int) (Date, error) {
	if n == 0 {
		return d, nil
	}
	if !withinShift(n, maxShiftYears) {
		return Date{}, d.newShiftError(n, "years")
	}
	return d.withYear(d.year - n)
}

// AddMonths returns the Date n months later.
//
// Whole years are added first. The remaining months are stepped one at a time: each step
// moves to the same day of the next month, clamped to the length of that month, by adding
// the exact number of days between the two. Once clamped, the day stays clamped in
// later steps.
func (d Date) AddMonths(n int) (Date, error) {
	if n == 0 {
		return d, nil
	}
	if !withinShift(n, maxShiftMonths) {
		return Date{}, d.newShiftError(n, "months")
	}
	if n < 0 {
		return d.SubMonths(-n)
	}
	date := d
	if years := n / 12; years > 0 {
		var err error
		date, err = d.AddYears(years)
		if err != nil {
			return Date{}, err
		}
	}
	for months := n % 12; months > 0; months-- {
		nextMonth := date.month%12 + 1
		nextMonthDay := min(date.day, date.DaysOf(nextMonth))
		// Days remaining in this month plus the target day of the next month.
		days := date.MonthDays() - date.day + nextMonthDay
		var err error
		date, err = date.AddDays(days)
		if err != nil {
			return Date{}, err
		}
	}
	return date, nil
}

// SubMonths returns the Date n months earlier, with the day clamped to the length of the
// target month.
//
// Month lengths never grow within a Persian year, so this is the same day AddMonths would
// reach when stepping forward from the start of the target year.
func (d Date) SubMonths(n int) (Date, error) {
	if n == 0 {
		return d, nil
	}
	if !withinShift(n, maxShiftMonths) {
		return Date{}, d.newShiftError(n, "months")
	}
	if n < 0 {
		return d.AddMonths(-n)
	}
	months := d.year*12 + d.month - 1 - n
	if months < 0 {
		return Date{}, d.newShiftError(n, "months")
	}
	return d.withYearMonth(months/12, months%12+1)
}

// AddWeeks returns the Date n weeks later.
func (d Date) AddWeeks(n int) (Date, error) {
	if !withinShift(n, maxShiftDays/7) {
		return Date{}, d.newShiftError(n, "weeks")
	}
	return d.AddDays(7 * n)
}

// SubWeeks returns the Date n weeks earlier.
func (d Date) SubWeeks(n int) (Date, error) {
	if !withinShift(n, maxShiftDays/7) {
		return Date{}, d.newShiftError(n, "weeks")
	}
	return d.AddDays(-7 * n)
}

// AddDays returns the Date n calendar days later, keeping the time of day.
func (d Date) AddDays(n int) (Date, error) {
	if n == 0 {
		return d, nil
	}
	if !withinShift(n, maxShiftDays) {
		return Date{}, d.newShiftError(n, "days")
	}
	return d.fromTime(d.Time().AddDate(0, 0, n))
}

// SubDays returns the Date n calendar days earlier.
func (d Date) SubDays(n int) (Date, error) {
	if !withinShift(n, maxShiftDays) {
		return Date{}, d.newShiftError(n, "days")
	}
	return d.AddDays(-n)
}

// AddHours returns the Date n hours later.
//
// Hours, minutes, and seconds are elapsed time, so a shift across a daylight saving
// transition changes the wall clock by more or less than n hours.
func (d Date) AddHours(n int) (Date, error) {
	return d.addSeconds(n, secondsPerHour, "hours")
}

// SubHours returns the Date n hours earlier.
func (d Date) SubHours(n int) (Date, error) {
	return d.addSeconds(n, -secondsPerHour, "hours")
}

// AddMinutes returns the Date n minutes later.
func (d Date) AddMinutes(n int) (Date, error) {
	return d.addSeconds(n, secondsPerMinute, "minutes")
}

// SubMinutes returns the Date n minutes earlier.
func (d Date) SubMinutes(n int) (Date, error) {
	return d.addSeconds(n, -secondsPerMinute, "minutes")
}

// AddSeconds returns the Date n seconds later.
func (d Date) AddSeconds(n int) (Date, error) {
	return d.addSeconds(n, 1, "seconds")
}

// SubSeconds returns the Date n seconds earlier.
func (d Date) SubSeconds(n int) (Date, error) {
	return d.addSeconds(n, -1, "seconds")
}

// *** PRIVATE ***

// addSeconds shifts d by n units of unitSeconds each. A negative unitSeconds shifts backward.
//
// The shift is done on Unix seconds, since a time.Duration cannot span the supported range.
func (d Date) addSeconds(n int, unitSeconds int64, unit string) (Date, error) {
	if n == 0 {
		return d, nil
	}
	if !withinShift(n, int(maxShiftSeconds/max(unitSeconds, -unitSeconds))) {
		return Date{}, d.newShiftError(n, unit)
	}
	t := d.Time()
	return d.fromTime(time.Unix(t.Unix()+int64(n)*unitSeconds, 0).In(t.Location()))
}

// fromTime converts t back to a Date, keeping the location of d as given.
func (d Date) fromTime(t time.Time) (Date, error) {
	date, err := FromTime(t)
	if err != nil {
		return Date{}, err
	}
	date.location = d.location
	return date, nil
}

// withYear moves d to another year. Only the leap day Esfand 30 can be clamped.
func (d Date) withYear(year int) (Date, error) {
	return d.withYearMonth(year, d.month)
}

// withYearMonth moves d to another year and month, clamping the day to the month length.
func (d Date) withYearMonth(year int, month int) (Date, error) {
	if year < persiancal.MinYear || year > persiancal.MaxYear {
		return Date{}, d.newRangeError(year)
	}
	day := min(d.day, persiancal.MonthLength(year, month))
	return New(year, month, day, d.hour, d.minute, d.second, d.location)
}

func (d Date) newShiftError(n int, unit string) error {
	return &persiancal.ConversionError{
		Calendar: "persian",
		Year:     d.year,
		Month:    d.month,
		Day:      d.day,
		Reason:   fmt.Sprintf("shift of %d %s leaves supported years %d-%d", n, unit, persiancal.MinYear, persiancal.MaxYear),
	}
}

// withinShift reports whether -limit <= n <= limit. It never negates n.
func withinShift(n int, limit int) bool {
	return n >= -limit && n <= limit
}

func (d Date) newRangeError(year int) error {
	return &persiancal.ConversionError{
		Calendar: "persian",
		Year:     year,
		Month:    d.month,
		Day:      d.day,
		Reason:   fmt.Sprintf("year outside supported range %d-%d", persiancal.MinYear, persiancal.MaxYear),
	}
}
