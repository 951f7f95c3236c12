package sweep

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/proppwilson/cftp"
	"github.com/katalvlaran/proppwilson/stats"
)

// Driver runs a temperature sweep.
type Driver struct {
	cfg     Config
	log     logrus.FieldLogger
	metrics *Metrics
}

// outcome is the result of one sample slot.
type outcome struct {
	ok     bool
	sample cftp.Sample
}

// New validates cfg and returns a driver. log must be non-nil; metrics may be nil.
func New(cfg Config, log logrus.FieldLogger, metrics *Metrics) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		return nil, fmt.Errorf("%w: logger is nil", ErrBadConfig)
	}
	// Fail on lattice or temperature preconditions before any work starts.
	if _, err := cftp.NewSampler(cfg.Side, Tc); err != nil {
		return nil, err
	}
	return &Driver{cfg: cfg, log: log, metrics: metrics}, nil
}

// Run walks the grid from the hottest temperature down. For each temperature
// it draws cfg.Samples samples, calls emit for every success in sample
// order, and stops early when 2·ok < Samples. An emit error or context
// cancellation aborts the sweep and is returned.
func (d *Driver) Run(ctx context.Context, emit func(stats.Record) error) (Result, error) {
	var res Result
	for _, p := range Grid(d.cfg.Side, d.cfg.Steps) {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		outs, err := d.sampleAt(ctx, p)
		if err != nil {
			return res, err
		}

		ok := 0
		for _, o := range outs {
			d.metrics.observeSample(o.ok, o.sample.Iterations)
			if !o.ok {
				res.Failures++
				d.log.WithFields(logrus.Fields{"t": p.T, "dt": p.DT}).Warn("NG")
				continue
			}
			ok++
			rec := stats.Record{
				T:             p.T,
				DT:            p.DT,
				Iterations:    o.sample.Iterations,
				Magnetization: o.sample.Magnetization,
				Energy:        o.sample.Energy,
			}
			if err := emit(rec); err != nil {
				return res, err
			}
			res.Successes++
		}
		res.Temperatures++
		d.metrics.observeTemperature()
		d.log.WithFields(logrus.Fields{"t": p.T, "dt": p.DT, "ok": ok}).Info("stats")

		if ok*2 < d.cfg.Samples {
			res.Stopped = true
			return res, nil
		}
	}
	return res, nil
}

// sampleAt draws all samples of one temperature on the worker pool.
func (d *Driver) sampleAt(ctx context.Context, p Point) ([]outcome, error) {
	outs := make([]outcome, d.cfg.Samples)
	jobs := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range outs {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < d.cfg.Workers; w++ {
		g.Go(func() error {
			smp, err := cftp.NewSampler(d.cfg.Side, p.T,
				cftp.WithMaxWindow(d.cfg.MaxWindow),
				cftp.WithOnAttempt(d.onAttempt))
			if err != nil {
				return err
			}
			for i := range jobs {
				src := cftp.DeriveSource(d.cfg.Seed, uint64(p.Index), uint64(i))
				s, ok, err := smp.Run(src, d.cfg.Limit)
				if err != nil {
					return err
				}
				// each slot is written by exactly one worker
				outs[i] = outcome{ok: ok, sample: s}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outs, nil
}

func (d *Driver) onAttempt(a cftp.Attempt) {
	d.metrics.observeAttempt()
	d.log.WithFields(logrus.Fields{
		"iteration": a.Iteration,
		"window":    a.Window,
		"distance":  a.Distance,
	}).Debug("attempt")
}

// WriteRecord writes r as one line to w.
func WriteRecord(w io.Writer, r stats.Record) error {
	_, err := fmt.Fprintln(w, r.String())
	return err
}
