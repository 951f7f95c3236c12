package cftp

import (
	"math"
	"slices"

	"github.com/katalvlaran/proppwilson/lattice"
)

// Sampler is the backward-doubling driver for one lattice and temperature.
//
// State machine per Run:
//
//	Growing(W=N) ──replay, not coalesced──▶ Growing(2W) … ──k == limit──▶ Exhausted
//	      └────────replay, coalesced──────▶ Coalesced(k)
//
// A Sampler may be reused for several Run calls; each call starts from an
// empty stream. It is not goroutine-safe.
type Sampler struct {
	torus  *lattice.Torus
	trans  Transition
	stream *Stream
	chain  *Chain
	opts   Options
}

// NewSampler validates n and T and precomputes topology and probabilities.
//
// Errors:
//   - lattice.ErrEmptyLattice, lattice.ErrLatticeTooLarge
//   - ErrBadTemperature
//   - ErrOptionViolation
func NewSampler(n int, temperature float64, opts ...Option) (*Sampler, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	trans, err := NewTransition(temperature)
	if err != nil {
		return nil, err
	}
	torus, err := lattice.NewTorus(n)
	if err != nil {
		return nil, err
	}

	return &Sampler{
		torus:  torus,
		trans:  trans,
		stream: NewStream(torus.Size(), trans),
		chain:  NewChain(torus),
		opts:   o,
	}, nil
}

// Torus returns the lattice the sampler runs on.
func (s *Sampler) Torus() *lattice.Torus { return s.torus }

// Transition returns the heat-bath probabilities in use.
func (s *Sampler) Transition() Transition { return s.trans }

// Stream returns the update log of the last Run. It is reset by the next Run.
func (s *Sampler) Stream() *Stream { return s.stream }

// Run draws one exact sample, doubling the window at most limit times.
//
// Behavior:
//  1. W = N, stream empty, k = 0.
//  2. If k == limit (or W exceeds MaxWindow): return ok=false.
//  3. Extend the stream to W draws, reset the chain, replay oldest→newest.
//  4. Coalesced: return the sample with Iterations = k.
//  5. Otherwise W *= 2, k++ and go to 2.
//
// Non-coalescence is not an error: ok=false with a nil error.
// src is used exclusively for the duration of the call.
//
// Complexity: O(2^k·N) time, O(2^k·N) memory for the stream.
func (s *Sampler) Run(src Source, limit int) (Sample, bool, error) {
	if src == nil {
		return Sample{}, false, ErrNilSource
	}
	if limit < 0 {
		return Sample{}, false, ErrBadLimit
	}
	maxWindow := math.MaxInt / 2
	if s.opts.MaxWindow > 0 {
		maxWindow = s.opts.MaxWindow
	}

	s.stream.Truncate()
	window := s.torus.Size()
	for k := 0; k < limit && window <= maxWindow; k++ {
		s.stream.Extend(src, window-s.stream.Len())
		s.chain.Reset()
		s.stream.Replay(s.chain.Apply)

		done := s.chain.Coalesced()
		if s.opts.OnAttempt != nil {
			s.opts.OnAttempt(Attempt{
				Iteration: k,
				Window:    window,
				Distance:  s.chain.Distance(),
				Coalesced: done,
			})
		}
		if done {
			return s.sample(k), true, nil
		}
		window *= 2
	}

	return Sample{}, false, nil
}

// sample reads the observables off the coalesced chain.
func (s *Sampler) sample(k int) Sample {
	spins := slices.Clone(s.chain.Ceiling())
	return Sample{
		Iterations:    k,
		Magnetization: Magnetization(spins),
		Energy:        Energy(s.torus, spins),
		Side:          s.torus.Side(),
		Spins:         spins,
	}
}

// Run is the one-shot entry point: it builds a Sampler for an n×n lattice at
// temperature T and draws one sample with at most limit doublings.
func Run(src Source, n int, temperature float64, limit int) (Sample, bool, error) {
	s, err := NewSampler(n, temperature)
	if err != nil {
		return Sample{}, false, err
	}
	return s.Run(src, limit)
}
