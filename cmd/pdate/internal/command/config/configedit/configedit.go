// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configedit implements the "config edit" command.
package configedit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/internal/pdate/pdateconfig"
)

// editorEnvVars are checked in order for the editor command.
var editorEnvVars = []string{"VISUAL", "EDITOR"}

// NewCommand returns a new config edit command that opens the configuration file in an editor.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Edit the configuration file in $VISUAL or $EDITOR",
		Long: `Edit the configuration file in $VISUAL or $EDITOR.

The file is created from the default template if it does not exist, and is
validated after the editor exits.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container)
			},
		),
	}
}

func run(ctx context.Context, container appext.Container) error {
	configDirPath := container.ConfigDirPath()
	configFilePath := pdateconfig.ConfigFilePath(configDirPath)
	if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
		if _, err := pdateconfig.InitConfig(configDirPath); err != nil {
			return err
		}
	}
	editorArgs, err := editorCommand(container)
	if err != nil {
		return err
	}
	// The editor may carry its own arguments, as in "code --wait".
	cmd := exec.CommandContext(ctx, editorArgs[0], append(editorArgs[1:], configFilePath)...)
	cmd.Stdin = container.Stdin()
	cmd.Stdout = container.Stdout()
	cmd.Stderr = container.Stderr()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if err := pdateconfig.ValidateConfigFile(configFilePath); err != nil {
		return fmt.Errorf("%s is invalid after editing: %w", configFilePath, err)
	}
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", configFilePath)
	return err
}

// *** PRIVATE ***

func editorCommand(container appext.Container) ([]string, error) {
	for _, envVar := range editorEnvVars {
		if fields := strings.Fields(container.Env(envVar)); len(fields) > 0 {
			return fields, nil
		}
	}
	return nil, fmt.Errorf("neither %s is set", strings.Join(editorEnvVars, " nor "))
}
