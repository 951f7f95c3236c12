package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/proppwilson/cftp"
	"github.com/katalvlaran/proppwilson/internal/config"
	"github.com/katalvlaran/proppwilson/internal/logging"
	"github.com/katalvlaran/proppwilson/snapshot"
	"github.com/katalvlaran/proppwilson/sweep"
)

var snapshotFlags = map[string]string{
	config.KeySide:      "side",
	config.KeyDT:        "dt",
	config.KeyMaxWindow: "max-window",
}

// errNoCoalescence is returned when the snapshot sample exhausts its limit.
var errNoCoalescence = errors.New("chains did not coalesce")

func newSnapshotCmd(a *app) *cobra.Command {
	d := config.Default()
	var glyphs snapshot.Glyphs
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Draw one sample at T = Tc + dt and print it as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd, snapshotFlags)
			if err != nil {
				return err
			}
			return a.runSnapshot(cfg, glyphs)
		},
	}
	def := snapshot.DefaultGlyphs()
	f := cmd.Flags()
	f.IntP("side", "n", d.Side, "lattice side n")
	f.Float64("dt", d.DT, "temperature offset from Tc")
	f.Int("max-window", d.MaxWindow, "cap on draws, 0 for none")
	f.StringVar(&glyphs.Up, "up", def.Up, "glyph of an up spin")
	f.StringVar(&glyphs.Down, "down", def.Down, "glyph of a down spin")
	return cmd
}

func (a *app) runSnapshot(cfg config.Config, glyphs snapshot.Glyphs) error {
	t := sweep.Tc + cfg.DT
	fmt.Fprintf(a.stderr, "t=%v\n", t)

	smp, err := cftp.NewSampler(cfg.Side, t, cftp.WithMaxWindow(cfg.MaxWindow))
	if err != nil {
		return err
	}
	s, ok, err := smp.Run(cftp.NewSource(cfg.Seed), cfg.Limit)
	if err != nil {
		return err
	}
	if !ok {
		logging.New(cfg.LogLevel, a.stderr).WithField("t", t).WithField("dt", cfg.DT).Warn("NG")
		return errors.Wrapf(errNoCoalescence, "limit %d at t=%v", cfg.Limit, t)
	}
	fmt.Fprintf(a.stderr, "loop_count=%d M=%d E=%d\n", s.Iterations, s.Magnetization, s.Energy)

	text, err := snapshot.RenderSample(s, glyphs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.stdout, text)
	return err
}
