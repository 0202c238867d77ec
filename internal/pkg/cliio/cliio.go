// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package cliio writes command output as an aligned table, CSV, or newline-delimited JSON.
package cliio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Format represents the output format for CLI commands.
type Format string

const (
	// FormatTable is the default table output format.
	FormatTable Format = "table"
	// FormatCSV is the CSV output format.
	FormatCSV Format = "csv"
	// FormatJSON is the JSON output format.
	FormatJSON Format = "json"
)

// Formats are all valid formats, in the order they are listed in help text.
var Formats = []Format{FormatTable, FormatCSV, FormatJSON}

// ParseFormat parses a string into a Format, returning an error for unknown formats.
//
// Parsing is case-insensitive.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	for _, valid := range Formats {
		if format == valid {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, must be one of: %s", s, FormatsString())
}

// FormatsString returns the valid formats joined for use in flag help and errors.
func FormatsString() string {
	values := make([]string, len(Formats))
	for i, format := range Formats {
		values[i] = string(format)
	}
	return strings.Join(values, ", ")
}

// Write writes objects to the writer in the given format.
//
// Table and CSV output start with a headers row followed by toRow applied to each object.
// JSON output is one object per line and ignores headers and toRow.
func Write[O any](writer io.Writer, format Format, headers []string, toRow func(O) []string, objects ...O) error {
	switch format {
	case FormatTable, FormatCSV:
		rows := make([][]string, len(objects))
		for i, object := range objects {
			rows[i] = toRow(object)
		}
		if format == FormatTable {
			return WriteTable(writer, headers, rows)
		}
		return WriteCSVRecords(writer, append([][]string{headers}, rows...))
	case FormatJSON:
		return WriteJSON(writer, objects...)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteTable writes tabular data to the writer using tabwriter for aligned columns.
func WriteTable(writer io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	for _, row := range append([][]string{headers}, rows...) {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteCSVRecords writes CSV records to the writer.
func WriteCSVRecords(writer io.Writer, records [][]string) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.WriteAll(records); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteJSON writes objects as JSON with newlines between each object.
func WriteJSON[O any](writer io.Writer, objects ...O) error {
	encoder := json.NewEncoder(writer)
	// Persian month and weekday names stay readable.
	encoder.SetEscapeHTML(false)
	for _, object := range objects {
		if err := encoder.Encode(object); err != nil {
			return err
		}
	}
	return nil
}
