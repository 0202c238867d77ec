// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package convert implements the "convert" command.
package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/pdate/internal/pkg/cliio"
	"github.com/bufdev/pdate/internal/pkg/persiancal"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/bufdev/pdate/internal/pkg/persiandatepb"
	"github.com/bufdev/pdate/internal/pkg/persiandatesql"
	"github.com/spf13/pflag"
)

const (
	// fromFlagName is the flag name for the calendar of the input date.
	fromFlagName = "from"
	// formatFlagName is the flag name for the output format.
	formatFlagName = "format"

	fromGregorian = "gregorian"
	fromPersian   = "persian"
)

// NewCommand returns a new convert command that converts a date between the Gregorian and
// Persian calendars.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <date>...",
		Short: "Convert dates between the Gregorian and Persian calendars",
		Long: `Convert dates between the Gregorian and Persian calendars.

Each argument is converted and printed as one row.
By default dates are Gregorian, in the configured storage layout or as Y-m-d.
With --from persian, dates are Persian, as Y-m-d H:i:s or Y-m-d.
Layouts use one-character tokens: Y year, m month, d day, H hour, i minute, s second.`,
		Args: appcmd.MinimumNArgs(1),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	*pdatecmd.Flags
	// From is the calendar of the input date.
	From string
	// InputLayout is the layout of the input date.
	InputLayout string
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{
		Flags: pdatecmd.NewFlags(),
	}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	f.Flags.Bind(flagSet)
	flagSet.StringVar(&f.From, fromFlagName, fromGregorian, "The calendar of the input date (gregorian, persian)")
	flagSet.StringVar(&f.InputLayout, pdatecmd.InputLayoutFlagName, "", "The layout of the input date")
	flagSet.StringVar(&f.Format, formatFlagName, string(cliio.FormatTable), "Output format ("+cliio.FormatsString()+")")
}

// conversion is one converted date.
type conversion struct {
	Gregorian string          `json:"gregorian"`
	Persian   string          `json:"persian"`
	Weekday   string          `json:"weekday"`
	DayOfYear int             `json:"day_of_year"`
	Leap      bool            `json:"leap"`
	Timestamp json.RawMessage `json:"timestamp"`
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	env, err := pdatecmd.NewEnv(container, flags.Flags)
	if err != nil {
		return err
	}
	caster := persiandatesql.Caster{
		StorageLayout: env.Config.StorageLayout,
		Location:      env.Config.Location,
	}
	var parse func(string) (persiandate.Date, error)
	switch flags.From {
	case fromGregorian:
		parse = func(value string) (persiandate.Date, error) {
			return parseGregorian(caster, value, flags.InputLayout)
		}
	case fromPersian:
		parse = func(value string) (persiandate.Date, error) {
			return env.ParseDate(value, flags.InputLayout)
		}
	default:
		return appcmd.NewInvalidArgumentErrorf("invalid --%s %q, must be one of: %s, %s", fromFlagName, flags.From, fromGregorian, fromPersian)
	}
	conversions := make([]*conversion, container.NumArgs())
	for i := range conversions {
		date, err := parse(container.Arg(i))
		if err != nil {
			return err
		}
		conversions[i], err = newConversion(caster, date, env.Config.Layout)
		if err != nil {
			return err
		}
	}
	container.Logger().Debug("converted dates", "count", len(conversions), "from", flags.From)
	return cliio.Write(
		container.Stdout(),
		format,
		[]string{"GREGORIAN", "PERSIAN", "WEEKDAY", "DAY_OF_YEAR", "LEAP"},
		conversionToRow,
		conversions...,
	)
}

// parseGregorian parses a Gregorian date through the storage adapter, so that dates given on
// the command line are read exactly the way stored dates are.
func parseGregorian(caster persiandatesql.Caster, value string, layout string) (persiandate.Date, error) {
	layouts := []string{layout}
	if layout == "" {
		layouts = []string{caster.StorageLayout, "Y-m-d"}
	}
	var errs []error
	for _, layout := range layouts {
		caster.StorageLayout = layout
		got, err := caster.Get(value)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if date, ok := got.(persiandate.Date); ok {
			return date, nil
		}
		return persiandate.Date{}, appcmd.NewInvalidArgumentError("date is empty")
	}
	return persiandate.Date{}, appcmd.NewInvalidArgumentError(errors.Join(errs...).Error())
}

func conversionToRow(result *conversion) []string {
	return []string{
		result.Gregorian,
		result.Persian,
		result.Weekday,
		strconv.Itoa(result.DayOfYear),
		strconv.FormatBool(result.Leap),
	}
}

func newConversion(caster persiandatesql.Caster, date persiandate.Date, layout string) (*conversion, error) {
	gregorian, err := caster.Set(date)
	if err != nil {
		return nil, err
	}
	gregorianString, ok := gregorian.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected stored value %T", gregorian)
	}
	timestamp, err := persiandatepb.MarshalJSON(date)
	if err != nil {
		return nil, err
	}
	return &conversion{
		Gregorian: gregorianString,
		Persian:   date.Format(layout),
		Weekday:   persiancal.WeekdayName(date.DayOfWeek()),
		DayOfYear: date.DayOfYear(),
		Leap:      date.IsLeapYear(),
		Timestamp: timestamp,
	}, nil
}
