// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"
	// Embed the timezone database so Asia/Tehran resolves on hosts without one.
	_ "time/tzdata"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/add"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/ago"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/config"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/convert"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/format"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/month"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/now"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("pdate"))
}

// newRootCommand creates the root pdate command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Convert, compute, and print Persian (Jalali) calendar dates",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			add.NewCommand("add", builder),
			ago.NewCommand("ago", builder),
			config.NewCommand("config", builder),
			convert.NewCommand("convert", builder),
			format.NewCommand("format", builder),
			month.NewCommand("month", builder),
			now.NewCommand("now", builder),
		},
	}
}
