// Copyright 2026 Peter Edge
//
// All rights reserved.

// Originally copied from https://github.com/googleapis/google-cloud-go/blob/v0.116.0/civil/civil.go
// See https://github.com/googleapis/google-cloud-go/blob/v0.116.0/LICENSE.

// Package xtime provides extensions to the standard time package.
//
// Date is a proleptic Gregorian civil date with no time of day or location. It is the
// Gregorian side of every Persian calendar conversion.
package xtime

import (
	"fmt"
	"time"
)

// dateLayout is the RFC 3339 full-date layout used by String and ParseDate.
const dateLayout = "2006-01-02"

// Date represents a date (year, month, day).
//
// This type does not include location information, and therefore does not
// describe a unique 24-hour timespan.
type Date struct {
	// Year is the year (e.g., 2014).
	Year int
	// Month is the month of the year (January = 1, ...).
	Month time.Month
	// Day is the day of the month, starting at 1.
	Day int
}

// TimeToDate returns the Date in which a time occurs in that time's location.
func TimeToDate(t time.Time) Date {
	var d Date
	d.Year, d.Month, d.Day = t.Date()
	return d
}

// ParseDate parses a string in RFC 3339 full-date format and returns the date value it represents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return TimeToDate(t), nil
}

// DateFromJulianDay returns the Date for the given Julian Day Number.
func DateFromJulianDay(julianDay int) Date {
	j := 4*julianDay + 139361631
	j += (4*julianDay+183187720)/146097*3/4*4 - 3908
	i := j%1461/4*5 + 308
	month := i/153%12 + 1
	return Date{
		Year:  j/1461 - 100100 + (8-month)/6,
		Month: time.Month(month),
		Day:   i%153/5 + 1,
	}
}

// String returns the date in RFC 3339 full-date format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsValid reports whether the date is valid.
func (d Date) IsValid() bool {
	return TimeToDate(d.In(time.UTC)) == d
}

// IsZero reports whether date fields are set to their default value.
func (d Date) IsZero() bool {
	return (d.Year == 0) && (int(d.Month) == 0) && (d.Day == 0)
}

// In returns the time corresponding to time 00:00:00 of the date in the location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date that is n days in the future.
// n can also be negative to go into the past.
func (d Date) AddDays(n int) Date {
	return TimeToDate(d.In(time.UTC).AddDate(0, 0, n))
}

// DaysSince returns the signed number of days between the date and s, not including the end day.
// This is the inverse operation to AddDays.
func (d Date) DaysSince(s Date) int {
	return d.JulianDay() - s.JulianDay()
}

// JulianDay returns the Julian Day Number of the date.
//
// The date must be valid.
func (d Date) JulianDay() int {
	month := int(d.Month)
	julianDay := (d.Year+(month-8)/6+100100)*1461/4 + (153*((month+9)%12)+2)/5 + d.Day - 34840408
	return julianDay - (d.Year+100100+(month-8)/6)/100*3/4 + 752
}

// Weekday returns the day of the week of the date.
func (d Date) Weekday() time.Weekday {
	return time.Weekday((d.JulianDay() + 1) % 7)
}

// Before reports whether d occurs before d2.
func (d Date) Before(d2 Date) bool {
	return d.Compare(d2) < 0
}

// EqualOrBefore reports whether d occurs before or on d2.
func (d Date) EqualOrBefore(d2 Date) bool {
	return d.Compare(d2) <= 0
}

// After reports whether d occurs after d2.
func (d Date) After(d2 Date) bool {
	return d.Compare(d2) > 0
}

// EqualOrAfter reports whether d occurs after or on d2.
func (d Date) EqualOrAfter(d2 Date) bool {
	return d.Compare(d2) >= 0
}

// Compare compares d and d2. If d is before d2, it returns -1;
// if d is after d2, it returns +1; otherwise it returns 0.
func (d Date) Compare(d2 Date) int {
	switch {
	case d.Year != d2.Year:
		return compareInt(d.Year, d2.Year)
	case d.Month != d2.Month:
		return compareInt(int(d.Month), int(d2.Month))
	default:
		return compareInt(d.Day, d2.Day)
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
// The output is the result of d.String().
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The date is expected to be a string in a format accepted by ParseDate.
func (d *Date) UnmarshalText(data []byte) error {
	var err error
	*d, err = ParseDate(string(data))
	return err
}

// *** PRIVATE ***

func compareInt(a int, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
