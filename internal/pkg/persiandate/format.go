// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bufdev/pdate/internal/pkg/persiancal"
)

const (
	// DateTimeLayout is the layout used by String.
	DateTimeLayout = "Y-m-d H:i:s"
	// DateLayout is the layout used by DateString.
	DateLayout = "Y-m-d"
	// TimeLayout is the layout used by TimeString.
	TimeLayout = "H:i:s"
)

// digitReplacer maps Persian and Arabic-Indic digits to ASCII digits.
var digitReplacer = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// ParseError is returned when a value does not match a layout.
type ParseError struct {
	// Layout is the layout the value was parsed against.
	Layout string
	// Value is the input value.
	Value string
	// Reason describes the mismatch.
	Reason string
	// Err is the underlying error, if any, such as a *ValidationError.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %q: %s", e.Value, e.Layout, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Format renders d according to the layout.
//
// Layouts use one-character tokens:
//
//	d  day of the month, two digits        j  day of the month
//	m  month, two digits                   n  month
//	Y  year, four digits                   y  year, two digits
//	H  hour 00-24                          G  hour 0-24
//	h  hour 01-12                          g  hour 1-12
//	i  minute, two digits                  s  second, two digits
//	F  month name                          l  weekday name
//	D  weekday abbreviation                N  weekday 1-7, Saturday first
//	w  weekday 0-6, Saturday first         z  day of the year, starting at 0
//	t  days in the month                   L  1 in a leap year, else 0
//	a  ق.ظ or ب.ظ                          A  قبل از ظهر or بعد از ظهر
//	U  Unix seconds                        e  location name
//	T  zone abbreviation                   P  zone offset as +03:30
//
// A backslash escapes the following character. All other characters are copied as-is.
func (d Date) Format(layout string) string {
	var builder strings.Builder
	escaped := false
	for _, r := range layout {
		if escaped {
			builder.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case 'd':
			builder.WriteString(pad2(d.day))
		case 'j':
			builder.WriteString(strconv.Itoa(d.day))
		case 'm':
			builder.WriteString(pad2(d.month))
		case 'n':
			builder.WriteString(strconv.Itoa(d.month))
		case 'Y':
			builder.WriteString(strconv.Itoa(d.year))
		case 'y':
			builder.WriteString(pad2(d.year % 100))
		case 'H':
			builder.WriteString(pad2(d.hour))
		case 'G':
			builder.WriteString(strconv.Itoa(d.hour))
		case 'h':
			builder.WriteString(pad2(hour12(d.hour)))
		case 'g':
			builder.WriteString(strconv.Itoa(hour12(d.hour)))
		case 'i':
			builder.WriteString(pad2(d.minute))
		case 's':
			builder.WriteString(pad2(d.second))
		case 'F':
			builder.WriteString(d.MonthName())
		case 'l':
			builder.WriteString(persiancal.WeekdayName(d.DayOfWeek()))
		case 'D':
			builder.WriteString(persiancal.ShortWeekdayName(d.DayOfWeek()))
		case 'N':
			builder.WriteString(strconv.Itoa(int(d.DayOfWeek()) + 1))
		case 'w':
			builder.WriteString(strconv.Itoa(int(d.DayOfWeek())))
		case 'z':
			builder.WriteString(strconv.Itoa(d.DayOfYear() - 1))
		case 't':
			builder.WriteString(strconv.Itoa(d.MonthDays()))
		case 'L':
			if d.IsLeapYear() {
				builder.WriteByte('1')
			} else {
				builder.WriteByte('0')
			}
		case 'a':
			if d.hour < 12 {
				builder.WriteString("ق.ظ")
			} else {
				builder.WriteString("ب.ظ")
			}
		case 'A':
			if d.hour < 12 {
				builder.WriteString("قبل از ظهر")
			} else {
				builder.WriteString("بعد از ظهر")
			}
		case 'U':
			builder.WriteString(strconv.FormatInt(d.Unix(), 10))
		case 'e':
			builder.WriteString(d.Location().String())
		case 'T':
			builder.WriteString(d.Time().Format("MST"))
		case 'P':
			builder.WriteString(d.Time().Format("-07:00"))
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// String returns d as "Y-m-d H:i:s", or the empty string for the zero value.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateTimeLayout)
}

// DateString returns d as "Y-m-d".
func (d Date) DateString() string {
	return d.Format(DateLayout)
}

// TimeString returns d as "H:i:s".
func (d Date) TimeString() string {
	return d.Format(TimeLayout)
}

// MarshalText implements encoding.TextMarshaler using String.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed as "Y-m-d H:i:s" in UTC.
//
// Empty text is the zero Date, matching MarshalText.
func (d *Date) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*d = Date{}
		return nil
	}
	date, err := Parse(DateTimeLayout, string(data), nil)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// Parse parses a Persian date in the layout, in the location.
//
// The parseable tokens are d, j, m, n, F, Y, y, H, G, i, and s; the other tokens of Format are
// rejected. Numeric fields accept one or two digits regardless of padding, except Y, which
// takes four. A two-digit year y maps 00-49 to 1400-1449 and 50-99 to 1350-1399. Persian and
// Arabic-Indic digits are accepted. A missing year is an error, a missing month or day
// defaults to 1, and a missing time of day defaults to midnight.
func Parse(layout string, value string, location *time.Location) (Date, error) {
	p := &parser{
		layout: layout,
		value:  digitReplacer.Replace(value),
		year:   -1,
		month:  1,
		day:    1,
	}
	if err := p.parse(); err != nil {
		return Date{}, &ParseError{Layout: layout, Value: value, Reason: err.Error()}
	}
	date, err := New(p.year, p.month, p.day, p.hour, p.minute, p.second, location)
	if err != nil {
		return Date{}, &ParseError{Layout: layout, Value: value, Reason: err.Error(), Err: err}
	}
	return date, nil
}

// *** PRIVATE ***

type parser struct {
	layout string
	value  string
	pos    int

	year   int
	month  int
	day    int
	hour   int
	minute int
	second int
}

func (p *parser) parse() error {
	escaped := false
	for _, r := range p.layout {
		if escaped {
			if err := p.literal(r); err != nil {
				return err
			}
			escaped = false
			continue
		}
		var err error
		switch r {
		case '\\':
			escaped = true
		case 'd', 'j':
			p.day, err = p.number(r, 1, 2)
		case 'm', 'n':
			p.month, err = p.number(r, 1, 2)
		case 'Y':
			p.year, err = p.number(r, 4, 4)
		case 'y':
			var year int
			year, err = p.number(r, 2, 2)
			if year < 50 {
				p.year = 1400 + year
			} else {
				p.year = 1300 + year
			}
		case 'H', 'G':
			p.hour, err = p.number(r, 1, 2)
		case 'i':
			p.minute, err = p.number(r, 1, 2)
		case 's':
			p.second, err = p.number(r, 1, 2)
		case 'F':
			err = p.monthName()
		case 'h', 'g', 'l', 'D', 'N', 'w', 'z', 't', 'L', 'a', 'A', 'U', 'e', 'T', 'P':
			err = fmt.Errorf("layout token %q cannot be parsed", r)
		default:
			err = p.literal(r)
		}
		if err != nil {
			return err
		}
	}
	if p.pos < len(p.value) {
		return fmt.Errorf("extra text %q", p.value[p.pos:])
	}
	if p.year < 0 {
		return errors.New("layout has no year")
	}
	return nil
}

// number reads between minDigits and maxDigits ASCII digits.
func (p *parser) number(token rune, minDigits int, maxDigits int) (int, error) {
	end := p.pos
	for end < len(p.value) && end-p.pos < maxDigits && p.value[end] >= '0' && p.value[end] <= '9' {
		end++
	}
	if end-p.pos < minDigits {
		return 0, fmt.Errorf("expected %d digits for %q at offset %d", minDigits, token, p.pos)
	}
	n, err := strconv.Atoi(p.value[p.pos:end])
	if err != nil {
		return 0, err
	}
	p.pos = end
	return n, nil
}

func (p *parser) monthName() error {
	for month := 1; month <= 12; month++ {
		if name := persiancal.MonthName(month); strings.HasPrefix(p.value[p.pos:], name) {
			p.month = month
			p.pos += len(name)
			return nil
		}
	}
	return fmt.Errorf("expected a month name at offset %d", p.pos)
}

func (p *parser) literal(r rune) error {
	got, size := utf8.DecodeRuneInString(p.value[p.pos:])
	if size == 0 || got != r {
		return fmt.Errorf("expected %q at offset %d", r, p.pos)
	}
	p.pos += size
	return nil
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func hour12(hour int) int {
	if hour%12 == 0 {
		return 12
	}
	return hour % 12
}
