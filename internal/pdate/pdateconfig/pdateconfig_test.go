// Copyright 2026 Peter Edge
//
// All rights reserved.

package pdateconfig

import (
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigMissing(t *testing.T) {
	t.Parallel()
	config, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tehran", config.Location.String())
	assert.Equal(t, "Y-m-d H:i:s", config.Layout)
	assert.Equal(t, "Y-m-d H:i:s", config.StorageLayout)
}

func TestInitConfig(t *testing.T) {
	t.Parallel()
	configDirPath := filepath.Join(t.TempDir(), "pdate")
	filePath, err := InitConfig(configDirPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigFilePath(configDirPath), filePath)
	// The template is itself a valid configuration.
	require.NoError(t, ValidateConfigFile(filePath))
	config, err := ReadConfig(configDirPath)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tehran", config.Location.String())
	// A second init does not overwrite the file.
	_, err = InitConfig(configDirPath)
	require.Error(t, err)
}

func TestReadConfig(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		desc              string
		data              string
		wantErr           bool
		wantTimezone      string
		wantLayout        string
		wantStorageLayout string
	}{
		{
			desc:              "all fields",
			data:              "version: v1\ntimezone: UTC\nlayout: \"l j F Y\"\nstorage_layout: \"Y-m-d\"\n",
			wantTimezone:      "UTC",
			wantLayout:        "l j F Y",
			wantStorageLayout: "Y-m-d",
		},
		{
			desc:              "defaults",
			data:              "version: v1\n",
			wantTimezone:      "Asia/Tehran",
			wantLayout:        "Y-m-d H:i:s",
			wantStorageLayout: "Y-m-d H:i:s",
		},
		{
			desc:    "empty file",
			data:    "",
			wantErr: true,
		},
		{
			desc:    "wrong version",
			data:    "version: v2\n",
			wantErr: true,
		},
		{
			desc:    "unknown field",
			data:    "version: v1\nzone: UTC\n",
			wantErr: true,
		},
		{
			desc:    "unknown timezone",
			data:    "version: v1\ntimezone: Asia/Atlantis\n",
			wantErr: true,
		},
		{
			desc:    "bad storage layout",
			data:    "version: v1\nstorage_layout: \"Y-m-d 9\"\n",
			wantErr: true,
		},
	} {
		configDirPath := t.TempDir()
		require.NoError(t, os.WriteFile(ConfigFilePath(configDirPath), []byte(test.data), 0o600), test.desc)
		config, err := ReadConfig(configDirPath)
		if test.wantErr {
			assert.Error(t, err, test.desc)
			assert.Error(t, ValidateConfigFile(ConfigFilePath(configDirPath)), test.desc)
			continue
		}
		require.NoError(t, err, test.desc)
		assert.Equal(t, test.wantTimezone, config.Location.String(), test.desc)
		assert.Equal(t, test.wantLayout, config.Layout, test.desc)
		assert.Equal(t, test.wantStorageLayout, config.StorageLayout, test.desc)
	}
}

func TestValidateConfigFileMissing(t *testing.T) {
	t.Parallel()
	require.Error(t, ValidateConfigFile(filepath.Join(t.TempDir(), ConfigFileName)))
}

func TestExternalRoundTrip(t *testing.T) {
	t.Parallel()
	config, err := NewConfig(ExternalConfig{Version: "v1", Timezone: "UTC", Layout: "Y/m/d"})
	require.NoError(t, err)
	externalConfig := config.External()
	assert.Equal(
		t,
		ExternalConfig{
			Version:       "v1",
			Timezone:      "UTC",
			Layout:        "Y/m/d",
			StorageLayout: "Y-m-d H:i:s",
		},
		externalConfig,
	)
	roundTrip, err := NewConfig(externalConfig)
	require.NoError(t, err)
	assert.Equal(t, config.Location.String(), roundTrip.Location.String())
	assert.Equal(t, config.Layout, roundTrip.Layout)
	assert.Equal(t, config.StorageLayout, roundTrip.StorageLayout)
}
