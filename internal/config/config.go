// Package config loads the command-line configuration from defaults, an
// optional YAML file, a .env file, PROPPWILSON_* environment variables and
// bound flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/proppwilson/sweep"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PROPPWILSON"

// Keys understood by Load. Flags are bound to these names.
const (
	KeySide        = "side"
	KeyLimit       = "limit"
	KeySamples     = "samples"
	KeySeed        = "seed"
	KeySteps       = "steps"
	KeyWorkers     = "workers"
	KeyMaxWindow   = "max_window"
	KeyDT          = "dt"
	KeyLogLevel    = "log_level"
	KeyMetricsAddr = "metrics_addr"
	KeyManifest    = "manifest"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the effective configuration of one command.
type Config struct {
	Side        int     `mapstructure:"side" yaml:"side"`
	Limit       int     `mapstructure:"limit" yaml:"limit"`
	Samples     int     `mapstructure:"samples" yaml:"samples"`
	Seed        uint64  `mapstructure:"seed" yaml:"seed"`
	Steps       int     `mapstructure:"steps" yaml:"steps"`
	Workers     int     `mapstructure:"workers" yaml:"workers"`
	MaxWindow   int     `mapstructure:"max_window" yaml:"max_window,omitempty"`
	DT          float64 `mapstructure:"dt" yaml:"dt"`
	LogLevel    string  `mapstructure:"log_level" yaml:"log_level"`
	MetricsAddr string  `mapstructure:"metrics_addr" yaml:"metrics_addr,omitempty"`
	Manifest    string  `mapstructure:"manifest" yaml:"-"`
}

// Default returns the built-in defaults. Side has none and must be supplied.
func Default() Config {
	d := sweep.DefaultConfig(0)
	return Config{
		Limit:    d.Limit,
		Samples:  d.Samples,
		Seed:     d.Seed,
		Steps:    d.Steps,
		Workers:  d.Workers,
		LogLevel: "info",
	}
}

// New returns a viper instance with the defaults registered and environment
// lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeySide, d.Side)
	v.SetDefault(KeyLimit, d.Limit)
	v.SetDefault(KeySamples, d.Samples)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeySteps, d.Steps)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyMaxWindow, d.MaxWindow)
	v.SetDefault(KeyDT, d.DT)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyMetricsAddr, d.MetricsAddr)
	v.SetDefault(KeyManifest, d.Manifest)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the optional YAML file into v, decodes the result and
// validates it.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the fields shared by every command. Side is checked by
// the lattice constructor so that its own sentinel errors surface.
func (c Config) Validate() error {
	switch {
	case c.Limit < 0:
		return fmt.Errorf("%w: limit %d", ErrInvalid, c.Limit)
	case c.Samples <= 0:
		return fmt.Errorf("%w: samples %d", ErrInvalid, c.Samples)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps %d", ErrInvalid, c.Steps)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.MaxWindow < 0:
		return fmt.Errorf("%w: max window %d", ErrInvalid, c.MaxWindow)
	}
	return nil
}

// Sweep converts c to a sweep driver configuration.
func (c Config) Sweep() sweep.Config {
	return sweep.Config{
		Side:      c.Side,
		Limit:     c.Limit,
		Samples:   c.Samples,
		Seed:      c.Seed,
		Steps:     c.Steps,
		Workers:   c.Workers,
		MaxWindow: c.MaxWindow,
	}
}
