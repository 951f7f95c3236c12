// Package sweep defines the driver configuration, results, and errors.
package sweep

import (
	"errors"
	"fmt"
	"math"
)

// Tc is the exact critical temperature of the square-lattice Ising model,
// 2 / ln(1 + √2).
var Tc = 2 / math.Log(1+math.Sqrt2)

// ErrBadConfig indicates an invalid Config field.
var ErrBadConfig = errors.New("sweep: invalid configuration")

// Config holds the sweep parameters.
type Config struct {
	Side      int    // lattice side n
	Limit     int    // doubling limit per sample
	Samples   int    // samples per temperature
	Seed      uint64 // root seed for all sub-streams
	Steps     int    // grid half-width: offsets i/(4n) for i in [−Steps, Steps]
	Workers   int    // concurrent samplers
	MaxWindow int    // optional cap on draws per sample, 0 = none
}

// DefaultConfig returns the defaults of the command-line driver for side n.
func DefaultConfig(side int) Config {
	return Config{
		Side:    side,
		Limit:   30,
		Samples: 100,
		Seed:    1,
		Steps:   100,
		Workers: 1,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case c.Side <= 0:
		return fmt.Errorf("%w: side must be positive, got %d", ErrBadConfig, c.Side)
	case c.Limit < 0:
		return fmt.Errorf("%w: limit must be non-negative, got %d", ErrBadConfig, c.Limit)
	case c.Samples <= 0:
		return fmt.Errorf("%w: samples must be positive, got %d", ErrBadConfig, c.Samples)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps must be non-negative, got %d", ErrBadConfig, c.Steps)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrBadConfig, c.Workers)
	case c.MaxWindow < 0:
		return fmt.Errorf("%w: max window must be non-negative, got %d", ErrBadConfig, c.MaxWindow)
	}
	return nil
}

// Point is one temperature of the grid.
type Point struct {
	Index int     // position in the grid, used to address random sub-streams
	T     float64 // Tc + DT
	DT    float64
}

// Result summarises a finished sweep.
type Result struct {
	Temperatures int  // temperatures fully sampled
	Successes    int  // emitted records
	Failures     int  // samples without coalescence
	Stopped      bool // the failure-rate rule ended the sweep early
}
