// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"fmt"
	"math"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
	"github.com/dustin/go-humanize"
)

const (
	momentsAgo = "لحظاتی پیش"
	yesterday  = "دیروز"
	today      = "امروز"
	tomorrow   = "فردا"
	agoSuffix  = "پیش"
	// futureSuffix replaces agoSuffix for dates after now.
	futureSuffix = "آینده"
)

var (
	// agoUnits are second, minute, hour, day, week, month, year, century.
	agoUnits = []string{"ثانیه", "دقیقه", "ساعت", "روز", "هفته", "ماه", "سال", "قرن"}
	// agoLengths[i] is the number of agoUnits[i] in one agoUnits[i+1].
	agoLengths = []float64{60, 60, 24, 7, 4.35, 12, 10}
)

// dayUnit is the index of the day in agoUnits.
const dayUnit = 3

// Ago returns a Persian human-readable description of the time between d and now,
// such as "3 روز پیش".
//
// Gaps under 30 seconds read as moments ago, and a gap that rounds to exactly one day reads
// as yesterday or tomorrow.
func (d Date) Ago(now time.Time) string {
	difference := float64(now.Unix() - d.Unix())
	future := false
	if difference < 0 {
		difference = -difference
		future = true
	}
	unit := 0
	for unit < len(agoLengths) && difference >= agoLengths[unit] {
		difference /= agoLengths[unit]
		unit++
	}
	count := int64(math.Round(difference))
	switch {
	case unit == 0 && count < 30:
		return momentsAgo
	case unit == dayUnit && count == 1:
		if future {
			return tomorrow
		}
		return yesterday
	}
	suffix := agoSuffix
	if future {
		suffix = futureSuffix
	}
	return fmt.Sprintf("%s %s %s", humanize.Comma(count), agoUnits[unit], suffix)
}

// Auto returns a short Persian rendering of d relative to now: today, tomorrow, or yesterday;
// the weekday name within six days; the day and month name within the same year; and the
// day, month name, and year otherwise.
func (d Date) Auto(now time.Time) string {
	days := d.daysFrom(now)
	switch {
	case days == 0:
		return today
	case days == 1:
		return tomorrow
	case days == -1:
		return yesterday
	case days > -7 && days < 7:
		return persiancal.WeekdayName(d.DayOfWeek())
	case d.IsThisYear(now):
		return d.Format("j F")
	default:
		return d.Format("j F Y")
	}
}
