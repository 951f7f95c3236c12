package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/proppwilson/internal/config"
)

// app carries what every subcommand shares.
type app struct {
	v       *viper.Viper
	stdout  io.Writer
	stderr  io.Writer
	cfgFile string
	envFile string
}

// commonFlags maps config keys to the persistent flags of the root command.
var commonFlags = map[string]string{
	config.KeyLogLevel: "log-level",
	config.KeySeed:     "seed",
	config.KeyLimit:    "limit",
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), stdout: stdout, stderr: stderr}
	d := config.Default()

	root := &cobra.Command{
		Use:   "proppwilson",
		Short: "Exact sampling of the 2D Ising model by coupling from the past",
		Long: `proppwilson samples the ferromagnetic Ising model on an n×n torus with
the Propp–Wilson algorithm. Every returned configuration is an exact draw
from the Boltzmann distribution at the requested temperature.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadDotEnv(a.envFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	pf.StringVar(&a.envFile, "env-file", ".env", "file of PROPPWILSON_* variables loaded before the environment")
	pf.String("log-level", d.LogLevel, "debug, info, warn or error")
	pf.Uint64("seed", d.Seed, "random seed")
	pf.Int("limit", d.Limit, "doubling limit per sample")

	root.AddCommand(newSweepCmd(a), newSnapshotCmd(a), newStatsCmd(a))
	return root
}

// load binds the root flags and the given command flags to their keys and
// returns the effective configuration.
func (a *app) load(cmd *cobra.Command, flags map[string]string) (config.Config, error) {
	for _, m := range []map[string]string{commonFlags, flags} {
		for key, name := range m {
			f := cmd.Flags().Lookup(name)
			if f == nil {
				return config.Config{}, errors.Errorf("flag --%s is not defined on %s", name, cmd.Name())
			}
			if err := a.v.BindPFlag(key, f); err != nil {
				return config.Config{}, errors.Wrapf(err, "bind --%s", name)
			}
		}
	}
	return config.Load(a.v, a.cfgFile)
}
