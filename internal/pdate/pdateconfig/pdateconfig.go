// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package pdateconfig provides configuration parsing and validation for pdate.
//
// Configuration is stored at ~/.config/pdate/config.yaml (or $PDATE_CONFIG_DIR/config.yaml).
// The file is optional; without it the defaults below apply.
package pdateconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/bufdev/pdate/internal/pkg/persiandatesql"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the configuration file within the config directory.
	ConfigFileName = "config.yaml"
	// DefaultTimezone is the timezone used when none is configured.
	DefaultTimezone = "Asia/Tehran"
	// DefaultLayout is the display layout used when none is configured.
	DefaultLayout = persiandate.DateTimeLayout
)

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The IANA timezone that dates are read and printed in.
#
# Optional. Defaults to Asia/Tehran.
timezone: Asia/Tehran
# The layout Persian dates are printed with.
#
# Optional. Uses one-character tokens: Y year, m month, d day, H hour, i minute,
# s second, F month name, l weekday name. A backslash escapes a character.
# Defaults to "Y-m-d H:i:s".
layout: "Y-m-d H:i:s"
# The layout Gregorian dates are read and written with.
#
# Optional. Uses the same tokens as layout. Defaults to "Y-m-d H:i:s".
storage_layout: "Y-m-d H:i:s"
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// Timezone is the IANA timezone name.
	Timezone string `yaml:"timezone"`
	// Layout is the Persian display layout.
	Layout string `yaml:"layout"`
	// StorageLayout is the Gregorian layout.
	StorageLayout string `yaml:"storage_layout"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// Location is the loaded timezone.
	Location *time.Location
	// Layout is the Persian display layout.
	Layout string
	// StorageLayout is the Gregorian layout.
	StorageLayout string
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
//
// Empty optional fields take their defaults.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	timezone := externalConfig.Timezone
	if timezone == "" {
		timezone = DefaultTimezone
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	layout := externalConfig.Layout
	if layout == "" {
		layout = DefaultLayout
	}
	storageLayout := externalConfig.StorageLayout
	if storageLayout == "" {
		storageLayout = persiandatesql.DefaultStorageLayout
	}
	if _, err := persiandatesql.GoLayout(storageLayout); err != nil {
		return nil, fmt.Errorf("invalid storage_layout: %w", err)
	}
	return &Config{
		Location:      location,
		Layout:        layout,
		StorageLayout: storageLayout,
	}, nil
}

// DefaultConfig returns the Config used when no configuration file exists.
func DefaultConfig() (*Config, error) {
	return NewConfig(ExternalConfig{Version: "v1"})
}

// External returns the ExternalConfig that produces c, with every default filled in.
func (c *Config) External() ExternalConfig {
	return ExternalConfig{
		Version:       "v1",
		Timezone:      c.Location.String(),
		Layout:        c.Layout,
		StorageLayout: c.StorageLayout,
	}
}

// ConfigFilePath returns the path to the configuration file within the given config directory.
func ConfigFilePath(configDirPath string) string {
	return filepath.Join(configDirPath, ConfigFileName)
}

// ReadConfig reads and validates the configuration file from the given config directory.
//
// If the file does not exist, ReadConfig returns DefaultConfig.
func ReadConfig(configDirPath string) (*Config, error) {
	filePath := ConfigFilePath(configDirPath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig()
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parseConfig(filePath, data)
}

// InitConfig creates a new configuration file with a documented template.
// Creates the config directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(configDirPath string) (string, error) {
	filePath := ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	// Create the config directory if it does not exist.
	if err := os.MkdirAll(configDirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfigFile reads and validates the configuration file at the given path.
//
// Unlike ReadConfig, a missing file is an error.
func ValidateConfigFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	_, err = parseConfig(filePath, data)
	return err
}

// *** PRIVATE ***

func parseConfig(filePath string, data []byte) (*Config, error) {
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	return NewConfig(externalConfig)
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
