package main

import (
	"bufio"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/proppwilson/internal/config"
	"github.com/katalvlaran/proppwilson/internal/logging"
	"github.com/katalvlaran/proppwilson/stats"
	"github.com/katalvlaran/proppwilson/sweep"
)

var sweepFlags = map[string]string{
	config.KeySide:        "side",
	config.KeySamples:     "samples",
	config.KeySteps:       "steps",
	config.KeyWorkers:     "workers",
	config.KeyMaxWindow:   "max-window",
	config.KeyMetricsAddr: "metrics-addr",
	config.KeyManifest:    "manifest",
}

func newSweepCmd(a *app) *cobra.Command {
	d := config.Default()
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sample every temperature of the grid around Tc",
		Long: `sweep walks T = Tc + i/(4n) for i = steps … −steps and prints one line
"t dt iterations magnetization energy" per coalesced sample. Failures are
logged as NG. The sweep stops after a temperature where fewer than half of
the samples coalesced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd, sweepFlags)
			if err != nil {
				return err
			}
			return a.runSweep(cmd, cfg)
		},
	}
	f := cmd.Flags()
	f.IntP("side", "n", d.Side, "lattice side n")
	f.IntP("samples", "s", d.Samples, "samples per temperature")
	f.Int("steps", d.Steps, "grid half-width in units of 1/(4n)")
	f.Int("workers", d.Workers, "concurrent samplers")
	f.Int("max-window", d.MaxWindow, "cap on draws per sample, 0 for none")
	f.String("metrics-addr", d.MetricsAddr, "serve Prometheus metrics on this address")
	f.String("manifest", d.Manifest, "write a YAML run manifest to this file")
	return cmd
}

func (a *app) runSweep(cmd *cobra.Command, cfg config.Config) error {
	log := logging.New(cfg.LogLevel, a.stderr)
	manifest := config.NewManifest(cfg, time.Now())
	entry := log.WithField("run_id", manifest.RunID)

	var metrics *sweep.Metrics
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = sweep.NewMetrics(reg)
		srv := serveMetrics(cfg.MetricsAddr, reg, entry)
		defer srv.Close()
	}

	d, err := sweep.New(cfg.Sweep(), entry, metrics)
	if err != nil {
		return err
	}

	entry.WithFields(logrus.Fields{
		"side":    cfg.Side,
		"samples": cfg.Samples,
		"limit":   cfg.Limit,
		"seed":    cfg.Seed,
		"workers": cfg.Workers,
	}).Info("sweep started")

	out := bufio.NewWriter(a.stdout)
	res, runErr := d.Run(cmd.Context(), func(r stats.Record) error {
		return sweep.WriteRecord(out, r)
	})
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = errors.Wrap(err, "flush records")
	}

	entry.WithFields(logrus.Fields{
		"temperatures": res.Temperatures,
		"successes":    res.Successes,
		"failures":     res.Failures,
		"stopped":      res.Stopped,
	}).Info("sweep finished")

	if cfg.Manifest != "" {
		manifest.Finish(res, runErr, time.Now())
		if err := manifest.WriteFile(cfg.Manifest); err != nil && runErr == nil {
			runErr = err
		}
	}
	return runErr
}

// serveMetrics exposes reg on addr until the returned server is closed.
func serveMetrics(addr string, reg *prometheus.Registry, log logrus.FieldLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server")
		}
	}()
	log.WithField("addr", addr).Info("serving metrics")
	return srv
}
