// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package format implements the "format" command.
package format

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/pdate/internal/pkg/persiandatesql"
	"github.com/spf13/pflag"
)

// NewCommand returns a new format command that reformats a Persian date.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <persian-date>",
		Short: "Print a Persian date in another layout",
		Long: `Print a Persian date in another layout.

The output layout is --layout, or the configured layout. The layout "auto" prints
today, tomorrow, yesterday, or a weekday name for nearby dates, and the day and month
otherwise.`,
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
	output := date.Format(env.Config.Layout)
	if env.Config.Layout == persiandatesql.AutoDisplayLayout {
		output = date.Auto(env.Clock.Now())
	}
	_, err = fmt.Fprintln(container.Stdout(), output)
	return err
}
