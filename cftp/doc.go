// Package cftp draws exact samples from the stationary distribution of the
// two-dimensional ferromagnetic Ising model using Propp–Wilson
// coupling-from-the-past with a monotone heat-bath update.
//
// 🚀 What is coupling-from-the-past?
//
//	Instead of running one Markov chain "long enough", CFTP simulates from a
//	time −W in the past up to time 0 from *every* starting state at once,
//	sharing the same randomness. If all of them agree at time 0 the common
//	state is an exact stationary sample. For the Ising model the heat-bath
//	rule is monotone, so it suffices to follow two bounding chains: an
//	all-up ceiling and an all-down floor.
//
// ✨ Building blocks:
//   - Transition: the heat-bath up-probabilities for β = 1/T.
//   - Draw / Class: one shared random event, packed as (site, threshold class).
//   - Stream: the replayable update log; extending it reaches further into
//     the past while keeping every draw already used.
//   - Chain: the ceiling/floor pair and the coalescence test.
//   - Sampler: the backward-doubling driver (W = N, 2N, 4N, … ).
//   - Magnetization / Energy: observables of the coalesced configuration.
//
// ⚙️ Usage:
//
//	src := cftp.NewSource(42)
//	s, ok, err := cftp.Run(src, 16, 2.5, 30)
//	if err != nil {
//	  // ErrBadTemperature, ErrBadLimit, lattice.ErrLatticeTooLarge, …
//	}
//	if !ok {
//	  // no coalescence within the limit: report "NG"
//	}
//	fmt.Println(s.Iterations, s.Magnetization, s.Energy)
//
// Performance:
//
//   - One attempt at window W costs O(W) site updates.
//   - Reaching window 2^k·N costs O(2^k·N) in total; the stream holds
//     4 bytes per draw.
//
// Concurrency:
//
//	A Sampler and the Source passed to Run are not goroutine-safe. Parallel
//	callers use one Sampler and one DeriveSource stream per worker.
package cftp
