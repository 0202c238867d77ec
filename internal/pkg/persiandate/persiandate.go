// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package persiandate provides a Persian calendar date-time value type.
//
// A Date holds Persian calendar fields (year, month, day) together with a time of day and a
// location. Calendar-specific arithmetic (months and years) operates on the Persian fields
// directly; everything else converts to a time.Time, delegates, and converts back.
//
// Dates are values. Every operation returns a new Date and never modifies the receiver.
// Operations that depend on the current moment take it explicitly, either as a Clock or as
// a now time.Time, so results are deterministic under test.
package persiandate

import (
	"fmt"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
	"github.com/bufdev/pdate/internal/standard/xtime"
)

// Date is a Persian calendar date and time of day in a location.
//
// The zero value is not a valid Date; construct one with New, FromTime, Parse, or Now.
type Date struct {
	year     int
	month    int
	day      int
	hour     int
	minute   int
	second   int
	location *time.Location
}

// Instant is anything that can be placed on the Gregorian timeline.
//
// Date implements Instant. Use Gregorian to pass a time.Time.
type Instant interface {
	Time() time.Time
}

// Gregorian adapts a time.Time to Instant.
type Gregorian time.Time

// Time implements Instant.
func (g Gregorian) Time() time.Time {
	return time.Time(g)
}

// Clock provides the current moment.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// ValidationError is returned when a field of a Date is outside its allowed range.
type ValidationError struct {
	// Field is the name of the offending field, such as "day".
	Field string
	// Value is the rejected value.
	Value int
	// Min and Max are the inclusive bounds of the field.
	Min int
	Max int
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

// New returns a new validated Date.
//
// A nil location means UTC.
func New(year, month, day, hour, minute, second int, location *time.Location) (Date, error) {
	if err := validate(year, month, day, hour, minute, second); err != nil {
		return Date{}, err
	}
	return Date{
		year:     year,
		month:    month,
		day:      day,
		hour:     hour,
		minute:   minute,
		second:   second,
		location: location,
	}, nil
}

// NewDate returns a new validated Date at midnight.
func NewDate(year, month, day int, location *time.Location) (Date, error) {
	return New(year, month, day, 0, 0, 0, location)
}

// FromTime converts a time.Time to a Date in the time's location.
func FromTime(t time.Time) (Date, error) {
	persianDate, err := persiancal.ToPersian(xtime.TimeToDate(t))
	if err != nil {
		return Date{}, err
	}
	return New(persianDate.Year, persianDate.Month, persianDate.Day, t.Hour(), t.Minute(), t.Second(), t.Location())
}

// FromGregorian converts Gregorian calendar fields to a Date.
//
// Only the date parts are converted; the time of day and location are carried through.
func FromGregorian(year int, month time.Month, day, hour, minute, second int, location *time.Location) (Date, error) {
	persianDate, err := persiancal.FromGregorian(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return New(persianDate.Year, persianDate.Month, persianDate.Day, hour, minute, second, location)
}

// FromUnix converts Unix seconds to a Date in the location.
func FromUnix(seconds int64, location *time.Location) (Date, error) {
	return FromTime(time.Unix(seconds, 0).In(locationOrUTC(location)))
}

// Now returns the current moment of the clock as a Date in the location.
func Now(clock Clock, location *time.Location) (Date, error) {
	return FromTime(clock.Now().In(locationOrUTC(location)))
}

// Year returns the Persian year.
func (d Date) Year() int {
	return d.year
}

// Month returns the Persian month, 1 through 12.
func (d Date) Month() int {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// Hour returns the hour, 0 through 24.
func (d Date) Hour() int {
	return d.hour
}

// Minute returns the minute.
func (d Date) Minute() int {
	return d.minute
}

// Second returns the second.
func (d Date) Second() int {
	return d.second
}

// Location returns the location of the Date, UTC when none was given.
func (d Date) Location() *time.Location {
	return locationOrUTC(d.location)
}

// PersianDate returns the calendar date without the time of day.
func (d Date) PersianDate() persiancal.Date {
	return persiancal.Date{Year: d.year, Month: d.month, Day: d.day}
}

// Time returns the Gregorian instant of the Date.
//
// Time implements Instant.
func (d Date) Time() time.Time {
	// Dates are validated on construction, so the conversion cannot fail.
	gregorianDate, err := persiancal.ToGregorian(d.PersianDate())
	if err != nil {
		return time.Time{}
	}
	return time.Date(gregorianDate.Year, gregorianDate.Month, gregorianDate.Day, d.hour, d.minute, d.second, 0, d.Location())
}

// Unix returns the Date as Unix seconds.
func (d Date) Unix() int64 {
	return d.Time().Unix()
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d.year == 0
}

// IsLeapYear reports whether the year of the Date is a Persian leap year.
func (d Date) IsLeapYear() bool {
	return persiancal.IsLeapYear(d.year)
}

// MonthDays returns the number of days in the month of the Date.
func (d Date) MonthDays() int {
	return persiancal.MonthLength(d.year, d.month)
}

// DaysOf returns the number of days in the given month of the year of the Date.
func (d Date) DaysOf(month int) int {
	return persiancal.MonthLength(d.year, month)
}

// MonthName returns the Persian name of the month.
func (d Date) MonthName() string {
	return persiancal.MonthName(d.month)
}

// DayOfYear returns the 1-based ordinal of the day within the year.
func (d Date) DayOfYear() int {
	return persiancal.DayOfYear(d.month, d.day)
}

// DayOfWeek returns the day of the week, Saturday first.
func (d Date) DayOfWeek() persiancal.Weekday {
	gregorianDate, err := persiancal.ToGregorian(d.PersianDate())
	if err != nil {
		return persiancal.Saturday
	}
	return persiancal.WeekdayOf(gregorianDate.Weekday())
}

// IsDayOfWeek reports whether the Date falls on the weekday.
func (d Date) IsDayOfWeek(weekday persiancal.Weekday) bool {
	return d.DayOfWeek() == weekday
}

// IsSaturday reports whether the Date falls on a Saturday.
func (d Date) IsSaturday() bool { return d.IsDayOfWeek(persiancal.Saturday) }

// IsSunday reports whether the Date falls on a Sunday.
func (d Date) IsSunday() bool { return d.IsDayOfWeek(persiancal.Sunday) }

// IsMonday reports whether the Date falls on a Monday.
func (d Date) IsMonday() bool { return d.IsDayOfWeek(persiancal.Monday) }

// IsTuesday reports whether the Date falls on a Tuesday.
func (d Date) IsTuesday() bool { return d.IsDayOfWeek(persiancal.Tuesday) }

// IsWednesday reports whether the Date falls on a Wednesday.
func (d Date) IsWednesday() bool { return d.IsDayOfWeek(persiancal.Wednesday) }

// IsThursday reports whether the Date falls on a Thursday.
func (d Date) IsThursday() bool { return d.IsDayOfWeek(persiancal.Thursday) }

// IsFriday reports whether the Date falls on a Friday, the Persian weekend.
func (d Date) IsFriday() bool { return d.IsDayOfWeek(persiancal.Friday) }

// WeekOfMonth returns the 1-based week of the month the Date falls in, with weeks
// starting on Saturday.
func (d Date) WeekOfMonth() int {
	firstOfMonth := d.withDay(1)
	return (int(firstOfMonth.DayOfWeek()) + d.day + 6) / 7
}

// WeekOfYear returns the 1-based seven-day period of the year the Date falls in.
func (d Date) WeekOfYear() int {
	return (d.DayOfYear() + 6) / 7
}

// *** PRIVATE ***

func validate(year, month, day, hour, minute, second int) error {
	if year < persiancal.MinYear || year > persiancal.MaxYear {
		return &ValidationError{Field: "year", Value: year, Min: persiancal.MinYear, Max: persiancal.MaxYear}
	}
	if month < 1 || month > 12 {
		return &ValidationError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	if monthLength := persiancal.MonthLength(year, month); day < 1 || day > monthLength {
		return &ValidationError{Field: "day", Value: day, Min: 1, Max: monthLength}
	}
	if hour < 0 || hour > 24 {
		return &ValidationError{Field: "hour", Value: hour, Min: 0, Max: 24}
	}
	if minute < 0 || minute > 59 {
		return &ValidationError{Field: "minute", Value: minute, Min: 0, Max: 59}
	}
	if second < 0 || second > 59 {
		return &ValidationError{Field: "second", Value: second, Min: 0, Max: 59}
	}
	return nil
}

func locationOrUTC(location *time.Location) *time.Location {
	if location == nil {
		return time.UTC
	}
	return location
}

// withDay returns a copy of d on another day of the same month.
//
// The day must be valid for the month.
func (d Date) withDay(day int) Date {
	d.day = day
	return d
}
