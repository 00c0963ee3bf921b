// Package config merges simulation settings from an optional settings
// file, SEQSCRIPTS_* environment variables, and bound command flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, so the
// read-length key becomes SEQSCRIPTS_READ_LENGTH.
const EnvPrefix = "SEQSCRIPTS"

// Settings are the simulation knobs a user may pin in a settings file
// instead of repeating them on every call. An explicitly set flag beats
// the environment, which beats the file, which beats flag defaults.
type Settings struct {
	ReadLength   int     `mapstructure:"read-length"`
	Coverage     float64 `mapstructure:"coverage"`
	InsertSize   int     `mapstructure:"insert-size"`
	RegionLength int     `mapstructure:"region-length"`
	Prefix       string  `mapstructure:"prefix"`
	Seed         int64   `mapstructure:"seed"`
}

// Load resolves Settings against the given flag set. Each command gets
// its own viper instance so subcommands sharing key names cannot clobber
// one another's bindings.
func Load(file string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read settings %s: %w", file, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return s, nil
}
