// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package config implements the "config" command group.
package config

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/config/configedit"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/config/configinit"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/config/configshow"
	"github.com/bufdev/pdate/cmd/pdate/internal/command/config/configvalidate"
)

// NewCommand returns a new config command group with init, edit, show, and validate sub-commands.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Manage the pdate configuration file",
		SubCommands: []*appcmd.Command{
			configinit.NewCommand("init", builder),
			configedit.NewCommand("edit", builder),
			configshow.NewCommand("show", builder),
			configvalidate.NewCommand("validate", builder),
		},
	}
}
