// Package config resolves runtime settings from flags, environment and
// defaults.
//
// Precedence is flag > NAMEXIF_* environment variable > default, handled by
// viper's pflag binding. The CLI owns flag registration; this package only
// reads the resolved values.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultNameFormat is the strftime template used when none is configured.
const DefaultNameFormat = "%Y-%m-%dT%H:%M:%S%z"

const envPrefix = "NAMEXIF"

// Settings holds everything the rename run needs beyond the source path.
type Settings struct {
	Timezone   string
	NameFormat string
	LogLevel   string
	DryRun     bool
	AssumeYes  bool
}

// boundKeys are the viper keys bound to identically named flags.
var boundKeys = []string{"timezone", "format", "log-level", "dry-run", "assume-yes"}

// Load resolves settings against the given flag set.
func Load(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault("timezone", "")
	v.SetDefault("format", DefaultNameFormat)
	v.SetDefault("log-level", "info")
	v.SetDefault("dry-run", false)
	v.SetDefault("assume-yes", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range boundKeys {
		flag := flags.Lookup(key)
		if flag == nil {
			return nil, fmt.Errorf("flag %q is not registered", key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %q: %w", key, err)
		}
	}

	return &Settings{
		Timezone:   v.GetString("timezone"),
		NameFormat: v.GetString("format"),
		LogLevel:   v.GetString("log-level"),
		DryRun:     v.GetBool("dry-run"),
		AssumeYes:  v.GetBool("assume-yes"),
	}, nil
}

// Location returns the timezone the capture dates are interpreted in.
// An empty Timezone means the process-local zone.
func (s *Settings) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}
