// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package persiandatepb provides conversion functions between persiandate.Date and
// google.protobuf.Timestamp.
package persiandatepb

import (
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// DateToProto converts a persiandate.Date to a proto Timestamp.
func DateToProto(date persiandate.Date) *timestamppb.Timestamp {
	return timestamppb.New(date.Time())
}

// ProtoToDate converts a validated proto Timestamp to a persiandate.Date in the location.
//
// A nil location means UTC.
func ProtoToDate(timestamp *timestamppb.Timestamp, location *time.Location) (persiandate.Date, error) {
	if err := timestamp.CheckValid(); err != nil {
		return persiandate.Date{}, err
	}
	if location == nil {
		location = time.UTC
	}
	return persiandate.FromTime(timestamp.AsTime().In(location))
}

// MarshalJSON marshals the Date as the proto JSON form of a Timestamp, an RFC 3339 string in UTC.
func MarshalJSON(date persiandate.Date) ([]byte, error) {
	return protojson.Marshal(DateToProto(date))
}

// UnmarshalJSON unmarshals the proto JSON form of a Timestamp to a Date in the location.
func UnmarshalJSON(data []byte, location *time.Location) (persiandate.Date, error) {
	timestamp := &timestamppb.Timestamp{}
	if err := protojson.Unmarshal(data, timestamp); err != nil {
		return persiandate.Date{}, err
	}
	return ProtoToDate(timestamp, location)
}
