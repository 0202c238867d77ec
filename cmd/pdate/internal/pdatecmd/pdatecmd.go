// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package pdatecmd provides shared wiring for pdate commands: reading the configuration,
// resolving the timezone and layouts, acquiring the current moment, and parsing dates given
// on the command line.
package pdatecmd

import (
	"fmt"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/pdate/internal/pdate/pdateconfig"
	"github.com/bufdev/pdate/internal/pkg/persiandate"
	"github.com/spf13/pflag"
)

const (
	// TimezoneFlagName is the flag name for the timezone override.
	TimezoneFlagName = "timezone"
	// LayoutFlagName is the flag name for the output layout override.
	LayoutFlagName = "layout"
	// InputLayoutFlagName is the flag name for the layout of dates given as arguments.
	InputLayoutFlagName = "input-layout"

	// nowEnvVar is the environment variable that pins the current moment, in RFC 3339 format.
	nowEnvVar = "PDATE_NOW"
)

// Flags are the flags shared by commands that read and print dates.
type Flags struct {
	// Timezone overrides the configured timezone.
	Timezone string
	// Layout overrides the configured output layout.
	Layout string
}

// NewFlags returns a new Flags.
func NewFlags() *Flags {
	return &Flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *Flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Timezone, TimezoneFlagName, "", "The IANA timezone, overriding the configured timezone")
	flagSet.StringVar(&f.Layout, LayoutFlagName, "", "The output layout, overriding the configured layout")
}

// Env is the resolved environment of a command.
type Env struct {
	// Config is the configuration with flag overrides applied.
	Config *pdateconfig.Config
	// Clock provides the current moment.
	Clock persiandate.Clock
}

// NewEnv reads the configuration file from the container's config directory, applies the
// flag overrides, and constructs the Clock.
func NewEnv(container appext.Container, flags *Flags) (*Env, error) {
	// Read and validate the configuration file, falling back to defaults.
	config, err := pdateconfig.ReadConfig(container.ConfigDirPath())
	if err != nil {
		return nil, err
	}
	if flags.Timezone != "" {
		location, err := time.LoadLocation(flags.Timezone)
		if err != nil {
			return nil, appcmd.NewInvalidArgumentErrorf("invalid --%s %q: %v", TimezoneFlagName, flags.Timezone, err)
		}
		config.Location = location
	}
	if flags.Layout != "" {
		config.Layout = flags.Layout
	}
	clock, err := newClock(container)
	if err != nil {
		return nil, err
	}
	container.Logger().Debug(
		"resolved configuration",
		"timezone", config.Location.String(),
		"layout", config.Layout,
		"storage_layout", config.StorageLayout,
	)
	return &Env{
		Config: config,
		Clock:  clock,
	}, nil
}

// Now returns the current moment as a Date in the configured location.
func (e *Env) Now() (persiandate.Date, error) {
	return persiandate.Now(e.Clock, e.Config.Location)
}

// ParseDate parses a Persian date given as a command-line argument in the configured location.
//
// If layout is empty, the date and time layout is tried first and the date-only layout second.
// Parse failures are invalid argument errors.
func (e *Env) ParseDate(value string, layout string) (persiandate.Date, error) {
	layouts := []string{layout}
	if layout == "" {
		layouts = []string{persiandate.DateTimeLayout, persiandate.DateLayout}
	}
	var err error
	for _, layout := range layouts {
		var date persiandate.Date
		date, err = persiandate.Parse(layout, value, e.Config.Location)
		if err == nil {
			return date, nil
		}
	}
	return persiandate.Date{}, appcmd.NewInvalidArgumentError(err.Error())
}

// *** PRIVATE ***

func newClock(container appext.Container) (persiandate.Clock, error) {
	value := container.Env(nowEnvVar)
	if value == "" {
		return persiandate.SystemClock, nil
	}
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q, must be in RFC 3339 format: %w", nowEnvVar, value, err)
	}
	container.Logger().Debug("using pinned clock", "now", now.Format(time.RFC3339))
	return persiandate.ClockFunc(func() time.Time { return now }), nil
}
