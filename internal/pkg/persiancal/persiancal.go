// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package persiancal converts dates between the proleptic Gregorian calendar and the
// Persian (Jalali, Solar Hijri) calendar.
//
// Conversion goes through the Julian Day Number of the date. Persian year boundaries come from
// the Borkowski break-year algorithm, which tracks the astronomical vernal equinox and is exact
// for the supported range of Persian years 1000 through 3000.
package persiancal

import (
	"fmt"
	"time"

	"github.com/bufdev/pdate/internal/standard/xtime"
)

const (
	// MinYear is the smallest supported Persian year.
	MinYear = 1000
	// MaxYear is the largest supported Persian year.
	MaxYear = 3000
)

// breakYears are the Persian years at which the leap cycle pattern changes.
//
// The algorithm is valid for breakYears[0] <= year < breakYears[len(breakYears)-1].
var breakYears = []int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// Date is a Persian calendar date without a time of day or location.
type Date struct {
	// Year is the Persian year (e.g., 1403).
	Year int
	// Month is the month of the year, Farvardin = 1 through Esfand = 12.
	Month int
	// Day is the day of the month, starting at 1.
	Day int
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsValid reports whether the date is a valid Persian date within the supported range.
func (d Date) IsValid() bool {
	return validate(d) == nil
}

// ConversionError is returned when a date cannot be converted between calendars.
type ConversionError struct {
	// Calendar is the calendar of the input date, "gregorian" or "persian".
	Calendar string
	// Year, Month, and Day are the input date.
	Year  int
	Month int
	Day   int
	// Reason describes why the conversion failed.
	Reason string
}

// Error implements error.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s date %04d-%02d-%02d: %s", e.Calendar, e.Year, e.Month, e.Day, e.Reason)
}

// IsLeapYear reports whether the Persian year has 366 days.
//
// The year must be within the supported range, which callers validate.
func IsLeapYear(year int) bool {
	return leapOffset(year) == 0
}

// YearLength returns the number of days in the Persian year.
func YearLength(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// MonthLength returns the number of days in the month of the Persian year.
//
// Months 1 through 6 have 31 days, months 7 through 11 have 30 days, and month 12 has
// 30 days in leap years and 29 days otherwise. It returns 0 for an invalid month.
func MonthLength(year int, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if IsLeapYear(year) {
			return 30
		}
		return 29
	default:
		return 0
	}
}

// DayOfYear returns the 1-based ordinal of the day within its Persian year.
func DayOfYear(month int, day int) int {
	if month <= 7 {
		return (month-1)*31 + day
	}
	return 186 + (month-7)*30 + day
}

// ToPersian converts a Gregorian date to its Persian equivalent.
func ToPersian(gregorianDate xtime.Date) (Date, error) {
	if !gregorianDate.IsValid() {
		return Date{}, newGregorianConversionError(gregorianDate, "invalid Gregorian date")
	}
	// Guard the break table before consulting it; the Persian year starts in March.
	if year := gregorianDate.Year - 621; year < MinYear-1 || year > MaxYear+1 {
		return Date{}, newGregorianConversionError(gregorianDate, fmt.Sprintf("outside supported Persian years %d-%d", MinYear, MaxYear))
	}
	persianDate := fromJulianDay(gregorianDate.JulianDay())
	if persianDate.Year < MinYear || persianDate.Year > MaxYear {
		return Date{}, newGregorianConversionError(gregorianDate, fmt.Sprintf("outside supported Persian years %d-%d", MinYear, MaxYear))
	}
	if err := validate(persianDate); err != nil {
		return Date{}, newGregorianConversionError(gregorianDate, fmt.Sprintf("inconsistent day count produced %v", persianDate))
	}
	return persianDate, nil
}

// ToGregorian converts a Persian date to its Gregorian equivalent.
func ToGregorian(persianDate Date) (xtime.Date, error) {
	if err := validate(persianDate); err != nil {
		return xtime.Date{}, err
	}
	gregorianDate := xtime.DateFromJulianDay(toJulianDay(persianDate))
	// The inverse must land on the same day count, or the break table is inconsistent.
	if fromJulianDay(gregorianDate.JulianDay()) != persianDate {
		return xtime.Date{}, &ConversionError{
			Calendar: "persian",
			Year:     persianDate.Year,
			Month:    persianDate.Month,
			Day:      persianDate.Day,
			Reason:   fmt.Sprintf("inconsistent day count produced %v", gregorianDate),
		}
	}
	return gregorianDate, nil
}

// FromGregorian is a convenience wrapper around ToPersian for separate fields.
func FromGregorian(year int, month time.Month, day int) (Date, error) {
	return ToPersian(xtime.Date{Year: year, Month: month, Day: day})
}

// *** PRIVATE ***

func validate(persianDate Date) error {
	var reason string
	switch {
	case persianDate.Year < MinYear || persianDate.Year > MaxYear:
		reason = fmt.Sprintf("year outside supported range %d-%d", MinYear, MaxYear)
	case persianDate.Month < 1 || persianDate.Month > 12:
		reason = "month outside range 1-12"
	case persianDate.Day < 1 || persianDate.Day > MonthLength(persianDate.Year, persianDate.Month):
		reason = fmt.Sprintf("day outside range 1-%d", MonthLength(persianDate.Year, persianDate.Month))
	default:
		return nil
	}
	return &ConversionError{
		Calendar: "persian",
		Year:     persianDate.Year,
		Month:    persianDate.Month,
		Day:      persianDate.Day,
		Reason:   reason,
	}
}

func newGregorianConversionError(gregorianDate xtime.Date, reason string) *ConversionError {
	return &ConversionError{
		Calendar: "gregorian",
		Year:     gregorianDate.Year,
		Month:    int(gregorianDate.Month),
		Day:      gregorianDate.Day,
		Reason:   reason,
	}
}

// yearInfo describes where a Persian year sits relative to the Gregorian calendar.
type yearInfo struct {
	// gregorianYear is the Gregorian year in which the Persian year begins.
	gregorianYear int
	// march is the day of March on which Farvardin 1 falls.
	march int
	// leap is the number of years since the last leap year, 0 for a leap year.
	leap int
}

// calendarYear computes the start of the Persian year and its position in the leap cycle.
func calendarYear(year int) yearInfo {
	gregorianYear := year + 621
	persianLeaps := -14
	previousBreak := breakYears[0]
	jump := 0
	for _, breakYear := range breakYears[1:] {
		jump = breakYear - previousBreak
		if year < breakYear {
			break
		}
		persianLeaps += jump/33*8 + jump%33/4
		previousBreak = breakYear
	}
	n := year - previousBreak
	// Leap years from the last break to the start of this year.
	persianLeaps += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		persianLeaps++
	}
	// Gregorian leap years up to the same Gregorian year.
	gregorianLeaps := gregorianYear/4 - (gregorianYear/100+1)*3/4 - 150
	return yearInfo{
		gregorianYear: gregorianYear,
		march:         20 + persianLeaps - gregorianLeaps,
		leap:          leapPosition(n, jump),
	}
}

// leapOffset returns the number of years since the last leap year, 0 for a leap year.
func leapOffset(year int) int {
	previousBreak := breakYears[0]
	jump := 0
	for _, breakYear := range breakYears[1:] {
		jump = breakYear - previousBreak
		if year < breakYear {
			break
		}
		previousBreak = breakYear
	}
	return leapPosition(year-previousBreak, jump)
}

func leapPosition(n int, jump int) int {
	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		return 4
	}
	return leap
}

func toJulianDay(persianDate Date) int {
	info := calendarYear(persianDate.Year)
	farvardinFirst := xtime.Date{Year: info.gregorianYear, Month: time.March, Day: info.march}.JulianDay()
	return farvardinFirst + DayOfYear(persianDate.Month, persianDate.Day) - 1
}

func fromJulianDay(julianDay int) Date {
	gregorianYear := xtime.DateFromJulianDay(julianDay).Year
	year := gregorianYear - 621
	info := calendarYear(year)
	// Days elapsed since Farvardin 1 of the Persian year starting in this Gregorian year.
	k := julianDay - xtime.Date{Year: gregorianYear, Month: time.March, Day: info.march}.JulianDay()
	if k >= 0 {
		if k <= 185 {
			return Date{Year: year, Month: 1 + k/31, Day: k%31 + 1}
		}
		k -= 186
	} else {
		// Still in the tail of the previous Persian year.
		year--
		k += 179
		if info.leap == 1 {
			k++
		}
	}
	return Date{Year: year, Month: 7 + k/30, Day: k%30 + 1}
}
