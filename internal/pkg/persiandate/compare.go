// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
	"github.com/bufdev/pdate/internal/standard/xtime"
)

// Compare compares d with the instant on the Gregorian timeline. It returns -1 if d is
// before other, +1 if d is after other, and 0 if they are the same moment.
func (d Date) Compare(other Instant) int {
	return d.Time().Compare(other.Time())
}

// Equal reports whether d and other are the same moment.
func (d Date) Equal(other Instant) bool {
	return d.Compare(other) == 0
}

// GreaterThan reports whether d is after other.
func (d Date) GreaterThan(other Instant) bool {
	return d.Compare(other) > 0
}

// GreaterThanOrEqual reports whether d is after or the same moment as other.
func (d Date) GreaterThanOrEqual(other Instant) bool {
	return d.Compare(other) >= 0
}

// LessThan reports whether d is before other.
func (d Date) LessThan(other Instant) bool {
	return d.Compare(other) < 0
}

// LessThanOrEqual reports whether d is before or the same moment as other.
func (d Date) LessThanOrEqual(other Instant) bool {
	return d.Compare(other) <= 0
}

// IsAfter is an alias for GreaterThan.
func (d Date) IsAfter(other Instant) bool {
	return d.GreaterThan(other)
}

// IsBefore is an alias for LessThan.
func (d Date) IsBefore(other Instant) bool {
	return d.LessThan(other)
}

// Between reports whether d lies between start and end, in either order.
//
// If inclusive is true, the bounds themselves are considered between.
func (d Date) Between(start Instant, end Instant, inclusive bool) bool {
	startTime, endTime := start.Time(), end.Time()
	if startTime.After(endTime) {
		startTime, endTime = endTime, startTime
	}
	t := d.Time()
	if inclusive {
		return !t.Before(startTime) && !t.After(endTime)
	}
	return t.After(startTime) && t.Before(endTime)
}

// DiffInDays returns the number of whole days from d to other.
//
// The result is negative when other is before d, unless absolute is set.
func (d Date) DiffInDays(other Instant, absolute bool) int {
	days := int(other.Time().Sub(d.Time()) / (24 * time.Hour))
	if absolute && days < 0 {
		return -days
	}
	return days
}

// IsToday reports whether d falls on the same calendar day as now, in the location of d.
func (d Date) IsToday(now time.Time) bool {
	return d.daysFrom(now) == 0
}

// IsTomorrow reports whether d falls on the calendar day after now, in the location of d.
func (d Date) IsTomorrow(now time.Time) bool {
	return d.daysFrom(now) == 1
}

// IsYesterday reports whether d falls on the calendar day before now, in the location of d.
func (d Date) IsYesterday(now time.Time) bool {
	return d.daysFrom(now) == -1
}

// IsThisYear reports whether d falls in the same Persian year as now, in the location of d.
func (d Date) IsThisYear(now time.Time) bool {
	persianDate, err := persiancal.ToPersian(xtime.TimeToDate(now.In(d.Location())))
	if err != nil {
		return false
	}
	return persianDate.Year == d.year
}

// StartOfDay returns d at 00:00:00.
func (d Date) StartOfDay() Date {
	d.hour, d.minute, d.second = 0, 0, 0
	return d
}

// EndOfDay returns d at 23:59:59.
func (d Date) EndOfDay() Date {
	d.hour, d.minute, d.second = 23, 59, 59
	return d
}

// StartOfWeek returns the start of the Saturday on or before d.
func (d Date) StartOfWeek() (Date, error) {
	date, err := d.SubDays(int(d.DayOfWeek()))
	if err != nil {
		return Date{}, err
	}
	return date.StartOfDay(), nil
}

// EndOfWeek returns the end of the Friday on or after d.
func (d Date) EndOfWeek() (Date, error) {
	date, err := d.AddDays(int(persiancal.Friday - d.DayOfWeek()))
	if err != nil {
		return Date{}, err
	}
	return date.EndOfDay(), nil
}

// StartOfMonth returns the first day of the month of d at 00:00:00.
func (d Date) StartOfMonth() Date {
	return d.withDay(1).StartOfDay()
}

// EndOfMonth returns the last day of the month of d at 23:59:59.
func (d Date) EndOfMonth() Date {
	return d.withDay(d.MonthDays()).EndOfDay()
}

// StartOfYear returns Farvardin 1 of the year of d at 00:00:00.
func (d Date) StartOfYear() Date {
	d.month = 1
	return d.withDay(1).StartOfDay()
}

// EndOfYear returns the last day of Esfand of the year of d at 23:59:59.
func (d Date) EndOfYear() Date {
	d.month = 12
	return d.withDay(d.MonthDays()).EndOfDay()
}

// *** PRIVATE ***

// daysFrom returns the number of calendar days from the day of now to the day of d.
func (d Date) daysFrom(now time.Time) int {
	return xtime.TimeToDate(d.Time()).DaysSince(xtime.TimeToDate(now.In(d.Location())))
}
