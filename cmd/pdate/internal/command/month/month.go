// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package month implements the "month" command.
package month

import (
	"context"
	"fmt"
	"io"
	"os"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// noColorEnvVar disables highlighting when set to any value.
const noColorEnvVar = "NO_COLOR"

// NewCommand returns a new month command that prints a Persian month as a calendar grid.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " [<year> <month>]",
		Short: "Print a Persian month as a calendar grid",
		Long: `Print a Persian month as a calendar grid.

Weeks start on Saturday. Without arguments, the current month is printed.
On a terminal, Fridays and today are highlighted.`,
		Args: appcmd.MaximumNArgs(2),
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
}

func newFlags() *flags {
	return &flags{
		Flags: pdatecmd.NewFlags(),
	}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	f.Flags.Bind(flagSet)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	env, err := pdatecmd.NewEnv(container, flags.Flags)
	if err != nil {
		return err
	}
	today, err := env.Now()
	if err != nil {
		return err
	}
	var first persiandate.Date
	switch container.NumArgs() {
	case 0:
		first = today.StartOfMonth()
	case 2:
		// Parsing as a layout accepts Persian digits and validates the month.
		first, err = persiandate.Parse("Y n", container.Arg(0)+" "+container.Arg(1), env.Config.Location)
		if err != nil {
			return appcmd.NewInvalidArgumentError(err.Error())
		}
	default:
		return appcmd.NewInvalidArgumentError("both <year> and <month> are required when either is given")
	}
	writer := container.Stdout()
	color := container.Env(noColorEnvVar) == "" && isTerminal(writer)
	_, err = fmt.Fprintln(writer, renderGrid(first, today, color))
	return err
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
