// Copyright 2026 Peter Edge
//
// All rights reserved.

package xos

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	t.Parallel()
	homeDir := filepath.FromSlash("/home/pdate")
	userHomeDir := func() (string, error) { return homeDir, nil }
	for _, test := range []struct {
		path string
		want string
	}{
		{path: "~", want: homeDir},
		{path: "~/config.yaml", want: filepath.Join(homeDir, "config.yaml")},
		{path: "~/a/b", want: filepath.Join(homeDir, "a", "b")},
		{path: "~other/config.yaml", want: "~other/config.yaml"},
		{path: "/etc/pdate/config.yaml", want: "/etc/pdate/config.yaml"},
		{path: "config.yaml", want: "config.yaml"},
		{path: "", want: ""},
	} {
		got, err := expandHome(test.path, userHomeDir)
		require.NoError(t, err, test.path)
		assert.Equal(t, test.want, got, test.path)
	}
}

func TestExpandHomeError(t *testing.T) {
	t.Parallel()
	userHomeDir := func() (string, error) { return "", errors.New("no home") }
	_, err := expandHome("~/config.yaml", userHomeDir)
	require.Error(t, err)
	// Paths that need no expansion never ask for the home directory.
	got, err := expandHome("config.yaml", userHomeDir)
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", got)
}
