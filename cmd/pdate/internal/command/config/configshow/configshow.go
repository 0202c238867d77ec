// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configshow implements the "config show" command.
package configshow

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/pdatecmd"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// NewCommand returns a new config show command that prints the resolved configuration.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Print the resolved configuration as YAML",
		Long: `Print the resolved configuration as YAML.

Defaults and flag overrides are applied, so the output is what other commands run with.`,
		Args: appcmd.NoArgs,
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
	encoder := yaml.NewEncoder(container.Stdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(env.Config.External()); err != nil {
		return err
	}
	return encoder.Close()
}
