// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiancal

import "time"

// Weekday is a day of the Persian week, which starts on Saturday.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

var (
	monthNames = [12]string{
		"فروردین",
		"اردیبهشت",
		"خرداد",
		"تیر",
		"مرداد",
		"شهریور",
		"مهر",
		"آبان",
		"آذر",
		"دی",
		"بهمن",
		"اسفند",
	}
	weekdayNames = [7]string{
		"شنبه",
		"یکشنبه",
		"دوشنبه",
		"سه‌شنبه",
		"چهارشنبه",
		"پنجشنبه",
		"جمعه",
	}
	shortWeekdayNames = [7]string{"ش", "ی", "د", "س", "چ", "پ", "ج"}
)

// WeekdayOf maps a Go weekday onto the Saturday-first Persian week.
func WeekdayOf(weekday time.Weekday) Weekday {
	return Weekday((int(weekday) + 1) % 7)
}

// String returns the Persian name of the weekday.
func (w Weekday) String() string {
	return WeekdayName(w)
}

// MonthName returns the Persian name of the month, or the empty string for an invalid month.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthByName returns the month number for a Persian month name.
func MonthByName(name string) (int, bool) {
	for i, monthName := range monthNames {
		if monthName == name {
			return i + 1, true
		}
	}
	return 0, false
}

// WeekdayName returns the Persian name of the weekday.
func WeekdayName(weekday Weekday) string {
	if weekday < Saturday || weekday > Friday {
		return ""
	}
	return weekdayNames[weekday]
}

// ShortWeekdayName returns the one-letter Persian abbreviation of the weekday.
func ShortWeekdayName(weekday Weekday) string {
	if weekday < Saturday || weekday > Friday {
		return ""
	}
	return shortWeekdayNames[weekday]
}
