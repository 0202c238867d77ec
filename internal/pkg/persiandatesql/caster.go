// Copyright 2026 Peter Edge
//
// All rights reserved.

package persiandatesql

import (
	"fmt"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// AutoDisplayLayout is the display layout that renders dates with persiandate.Date.Auto.
const AutoDisplayLayout = "auto"

// Caster converts attribute values between their stored Gregorian form and their Persian form.
//
// The zero value stores in DefaultStorageLayout in UTC, uses the system clock, and returns
// Dates from Get.
type Caster struct {
	// StorageLayout is the Gregorian layout of stored values.
	StorageLayout string
	// DisplayLayout is the Persian layout Get renders with, and Set parses strings with.
	//
	// If empty, Get returns a persiandate.Date. If AutoDisplayLayout, Get renders relative to
	// the current moment of Clock and Set parses strings in StorageLayout.
	DisplayLayout string
	// Location is the location stored values are interpreted in.
	Location *time.Location
	// Clock provides the current moment for AutoDisplayLayout.
	Clock persiandate.Clock
}

// Get converts a stored value to its Persian form.
//
// Nil and empty values return nil. A persiandate.Date returns its time.Time.
func (c Caster) Get(value any) (any, error) {
	if date, ok := value.(persiandate.Date); ok {
		return date.Time(), nil
	}
	codec, err := newCodec(c.StorageLayout, c.Location)
	if err != nil {
		return nil, err
	}
	date, ok, err := codec.decode(value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	switch c.DisplayLayout {
	case "":
		return date, nil
	case AutoDisplayLayout:
		return date.Auto(c.now()), nil
	default:
		return date.Format(c.DisplayLayout), nil
	}
}

// Set converts a value to its stored Gregorian form in StorageLayout.
//
// Nil and empty values return nil. Accepted values are persiandate.Date, time.Time,
// *timestamppb.Timestamp, int64 Unix seconds, and strings. Strings are parsed as Persian dates
// in DisplayLayout when it is set and not AutoDisplayLayout, and as Gregorian dates in
// StorageLayout otherwise.
func (c Caster) Set(value any) (any, error) {
	codec, err := newCodec(c.StorageLayout, c.Location)
	if err != nil {
		return nil, err
	}
	switch value := value.(type) {
	case nil:
		return nil, nil
	case persiandate.Date:
		if value.IsZero() {
			return nil, nil
		}
		return codec.encode(value.Time()), nil
	case time.Time:
		if value.IsZero() {
			return nil, nil
		}
		return codec.encode(value), nil
	case *timestamppb.Timestamp:
		if value == nil {
			return nil, nil
		}
		if err := value.CheckValid(); err != nil {
			return nil, err
		}
		return codec.encode(value.AsTime()), nil
	case int64:
		return codec.encode(time.Unix(value, 0)), nil
	case string:
		if value == "" {
			return nil, nil
		}
		if c.DisplayLayout != "" && c.DisplayLayout != AutoDisplayLayout {
			date, err := persiandate.Parse(c.DisplayLayout, value, codec.location)
			if err != nil {
				return nil, err
			}
			return codec.encode(date.Time()), nil
		}
		t, err := codec.parse(value)
		if err != nil {
			return nil, err
		}
		return codec.encode(t), nil
	default:
		return nil, fmt.Errorf("cannot store %T as a Persian date", value)
	}
}

// *** PRIVATE ***

func (c Caster) now() time.Time {
	if c.Clock == nil {
		return persiandate.SystemClock.Now()
	}
	return c.Clock.Now()
}
