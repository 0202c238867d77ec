// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xos provides extensions to the standard os package.
package xos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~ or ~/ in a path to the current user's home directory.
//
// Other paths, including ~user forms, are returned unchanged.
func ExpandHome(path string) (string, error) {
	return expandHome(path, os.UserHomeDir)
}

// *** PRIVATE ***

func expandHome(path string, userHomeDir func() (string, error)) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[1:]), nil
}
