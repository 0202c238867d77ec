// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ago implements the "ago" command.
package ago

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/spf13/pflag"
)

// NewCommand returns a new ago command that prints the time elapsed since a Persian date.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <persian-date>",
		Short: "Print the time elapsed since a Persian date in words",
		Args:  appcmd.ExactArgs(1),
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
	_, err = fmt.Fprintln(container.Stdout(), date.Ago(env.Clock.Now()))
	return err
}
