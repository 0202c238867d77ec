// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package add implements the "add" command.
package add

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/spf13/pflag"
)

// NewCommand returns a new add command that adds calendar units to a Persian date.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <persian-date>",
		Short: "Add years, months, weeks, days, and time to a Persian date",
		Long: `Add years, months, weeks, days, and time to a Persian date.

Units are applied from the largest to the smallest. Negative values subtract.
Adding months keeps the day of the month, clamped to the length of the target month.`,
		Args: appcmd.ExactArgs(1),
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
	// InputLayout is the layout of the input date.
	InputLayout string
	Years       int
	Months      int
	Weeks       int
	Days        int
	Hours       int
	Minutes     int
	Seconds     int
}

func newFlags() *flags {
	return &flags{
		Flags: pdatecmd.NewFlags(),
	}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	f.Flags.Bind(flagSet)
	flagSet.StringVar(&f.InputLayout, pdatecmd.InputLayoutFlagName, "", "The layout of the input date")
	flagSet.IntVar(&f.Years, "years", 0, "The number of years to add")
	flagSet.IntVar(&f.Months, "months", 0, "The number of months to add")
	flagSet.IntVar(&f.Weeks, "weeks", 0, "The number of weeks to add")
	flagSet.IntVar(&f.Days, "days", 0, "The number of days to add")
	flagSet.IntVar(&f.Hours, "hours", 0, "The number of hours to add")
	flagSet.IntVar(&f.Minutes, "minutes", 0, "The number of minutes to add")
	flagSet.IntVar(&f.Seconds, "seconds", 0, "The number of seconds to add")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	env, err := pdatecmd.NewEnv(container, flags.Flags)
	if err != nil {
		return err
	}
	date, err := env.ParseDate(container.Arg(0), flags.InputLayout)
	if err != nil {
		return err
	}
	for _, step := range []struct {
		n   int
		add func(persiandate.Date, int) (persiandate.Date, error)
	}{
		{flags.Years, persiandate.Date.AddYears},
		{flags.Months, persiandate.Date.AddMonths},
		{flags.Weeks, persiandate.Date.AddWeeks},
		{flags.Days, persiandate.Date.AddDays},
		{flags.Hours, persiandate.Date.AddHours},
		{flags.Minutes, persiandate.Date.AddMinutes},
		{flags.Seconds, persiandate.Date.AddSeconds},
	} {
		date, err = step.add(date, step.n)
		if err != nil {
			return err
		}
	}
	container.Logger().Debug("added", "input", container.Arg(0), "result", date.String())
	_, err = fmt.Fprintln(container.Stdout(), date.Format(env.Config.Layout))
	return err
}
