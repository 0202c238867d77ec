// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package persiandatesql stores persiandate.Date values in SQL databases.
//
// Dates are always stored as their Gregorian equivalent, so the database sees ordinary
// timestamps and can sort and compare them. Storage layouts use the same one-character
// tokens as persiandate.Format and are applied to the Gregorian calendar.
package persiandatesql

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiandate"
)

// DefaultStorageLayout is the storage layout used when none is given.
const DefaultStorageLayout = "Y-m-d H:i:s"

// Column is a nullable persiandate.Date column.
//
// Column implements sql.Scanner and driver.Valuer using DefaultStorageLayout in UTC.
type Column struct {
	// Date is the value when Valid is true.
	Date persiandate.Date
	// Valid is true if Date is not NULL.
	Valid bool
}

// NewColumn returns a valid Column for the Date.
func NewColumn(date persiandate.Date) Column {
	return Column{Date: date, Valid: true}
}

// Scan implements sql.Scanner.
//
// Scan accepts nil, time.Time, int64 Unix seconds, and strings or byte slices in
// DefaultStorageLayout.
func (c *Column) Scan(value any) error {
	codec, err := newCodec(DefaultStorageLayout, time.UTC)
	if err != nil {
		return err
	}
	date, ok, err := codec.decode(value)
	if err != nil {
		return err
	}
	*c = Column{Date: date, Valid: ok}
	return nil
}

// Value implements driver.Valuer.
func (c Column) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	codec, err := newCodec(DefaultStorageLayout, time.UTC)
	if err != nil {
		return nil, err
	}
	return codec.encode(c.Date.Time()), nil
}

// GoLayout translates a storage layout to a Go reference layout for time.Format and time.Parse.
//
// The supported tokens are d, j, m, n, Y, y, H, h, g, i, s, A, a, F, M, l, D, e, T, O, and P.
// A backslash escapes the following character. Digits, unknown letters, and escaped characters
// that start a Go reference token are rejected.
func GoLayout(layout string) (string, error) {
	if layout == "" {
		return "", errors.New("storage layout is empty")
	}
	var builder strings.Builder
	escaped := false
	for _, r := range layout {
		if escaped {
			if (r >= '0' && r <= '9') || strings.ContainsRune(goTokenStarts, r) {
				return "", fmt.Errorf("storage layout %q: cannot escape %q", layout, r)
			}
			builder.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if goToken, ok := goLayoutTokens[r]; ok {
			builder.WriteString(goToken)
			continue
		}
		if isLayoutRune(r) {
			return "", fmt.Errorf("storage layout %q: unsupported token %q", layout, r)
		}
		builder.WriteRune(r)
	}
	if escaped {
		return "", fmt.Errorf("storage layout %q: trailing backslash", layout)
	}
	return builder.String(), nil
}

// *** PRIVATE ***

var goLayoutTokens = map[rune]string{
	'd': "02",
	'j': "2",
	'm': "01",
	'n': "1",
	'Y': "2006",
	'y': "06",
	'H': "15",
	'h': "03",
	'g': "3",
	'i': "04",
	's': "05",
	'A': "PM",
	'a': "pm",
	'F': "January",
	'M': "Jan",
	'l': "Monday",
	'D': "Mon",
	'e': "MST",
	'T': "MST",
	'O': "-0700",
	'P': "-07:00",
}

// goTokenStarts are the letters that can start a token of the Go reference time.
const goTokenStarts = "JMPpZ"

func isLayoutRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// codec converts between database values and Dates for one storage layout and location.
type codec struct {
	layout   string
	goLayout string
	location *time.Location
}

func newCodec(layout string, location *time.Location) (*codec, error) {
	if layout == "" {
		layout = DefaultStorageLayout
	}
	if location == nil {
		location = time.UTC
	}
	goLayout, err := GoLayout(layout)
	if err != nil {
		return nil, err
	}
	return &codec{
		layout:   layout,
		goLayout: goLayout,
		location: location,
	}, nil
}

// decode converts a database value to a Date. It returns false for NULL and empty values.
func (c *codec) decode(value any) (persiandate.Date, bool, error) {
	var t time.Time
	switch value := value.(type) {
	case nil:
		return persiandate.Date{}, false, nil
	case time.Time:
		if value.IsZero() {
			return persiandate.Date{}, false, nil
		}
		t = value
	case int64:
		t = time.Unix(value, 0)
	case []byte:
		return c.decode(string(value))
	case string:
		if value == "" {
			return persiandate.Date{}, false, nil
		}
		var err error
		t, err = c.parse(value)
		if err != nil {
			return persiandate.Date{}, false, err
		}
	default:
		return persiandate.Date{}, false, fmt.Errorf("cannot convert %T to a Persian date", value)
	}
	date, err := persiandate.FromTime(t.In(c.location))
	if err != nil {
		return persiandate.Date{}, false, err
	}
	return date, true, nil
}

func (c *codec) parse(value string) (time.Time, error) {
	t, err := time.ParseInLocation(c.goLayout, value, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse %q with storage layout %q: %w", value, c.layout, err)
	}
	return t, nil
}

func (c *codec) encode(t time.Time) string {
	return t.In(c.location).Format(c.goLayout)
}
