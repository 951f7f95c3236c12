// Package cftp defines sentinel errors, the random source contract,
// results, and functional options for the sampler.
package cftp

import "errors"

// Sentinel errors returned before any sampling begins.
var (
	// ErrBadTemperature indicates T ≤ 0, NaN, or +Inf.
	ErrBadTemperature = errors.New("cftp: temperature must be positive and finite")

	// ErrBadLimit indicates a negative doubling limit.
	ErrBadLimit = errors.New("cftp: iteration limit must be non-negative")

	// ErrNilSource indicates Run was called without a random source.
	ErrNilSource = errors.New("cftp: random source is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cftp: invalid option supplied")
)

// Source is the random generator consumed by the sampler. *rand.Rand from
// math/rand/v2 satisfies it. A Source is owned exclusively by one Run call
// for its duration and is never retained afterwards.
type Source interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// Sample is one exact draw from the Ising distribution.
type Sample struct {
	// Iterations is the number of window doublings performed before
	// coalescence (0 means the first window of N draws was enough).
	Iterations int

	// Magnetization is #up − #down, in [−N, N].
	Magnetization int

	// Energy is −Σ_bonds s_i·s_j with each bond counted once, in [−2N, 2N].
	Energy int

	// Side is the lattice side n.
	Side int

	// Spins is the coalesced configuration, row-major, 0=down 1=up.
	// The slice is owned by the caller.
	Spins []uint8
}

// Spin returns the spin at (x,y) as 0 or 1.
func (s Sample) Spin(x, y int) uint8 {
	return s.Spins[y*s.Side+x]
}

// Attempt describes one finished replay of the stream.
type Attempt struct {
	Iteration int  // doublings performed so far
	Window    int  // number of draws replayed
	Distance  int  // sites where ceiling and floor still differ
	Coalesced bool // Distance == 0
}

// Option configures a Sampler via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by NewSampler.
type Option func(*Options)

// Options holds optional hooks and bounds of the sampler.
type Options struct {
	// OnAttempt, if non-nil, is called after every replay.
	OnAttempt func(Attempt)

	// MaxWindow, if > 0, ends the run as exhausted instead of growing the
	// window beyond this many draws. 0 disables the cap.
	MaxWindow int

	err error
}

// DefaultOptions returns Options with no hook and no window cap.
func DefaultOptions() Options {
	return Options{}
}

// WithOnAttempt installs a hook observing each replay.
func WithOnAttempt(fn func(Attempt)) Option {
	return func(o *Options) {
		o.OnAttempt = fn
	}
}

// WithMaxWindow caps the stream length in draws. Negative values are rejected.
func WithMaxWindow(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxWindow = w
	}
}
