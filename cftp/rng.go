// Package cftp - seeded random sources for reproducible sampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw streams on every platform.
//   - Independence: DeriveSource splits a seed into decorrelated sub-streams
//     so parallel workers never share generator state.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Give each worker its own source.
package cftp

import "math/rand/v2"

// pcgIncrementSalt decorrelates the two PCG state words derived from one seed.
const pcgIncrementSalt uint64 = 0xda942042e4dd58b5

// NewSource returns a PCG generator whose 128-bit state is expanded from seed
// with SplitMix64.
//
// Complexity: O(1).
func NewSource(seed uint64) *rand.Rand {
	hi := splitmix64(seed)
	lo := splitmix64(seed ^ pcgIncrementSalt)
	return rand.New(rand.NewPCG(hi, lo))
}

// DeriveSource returns an independent deterministic source for the sub-stream
// addressed by the path of stream identifiers under seed, e.g.
// DeriveSource(seed, temperatureIndex, sampleIndex).
//
// Complexity: O(len(streams)).
func DeriveSource(seed uint64, streams ...uint64) *rand.Rand {
	s := seed
	for _, id := range streams {
		s = deriveSeed(s, id)
	}
	return NewSource(s)
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64-style finalizer.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	return splitmix64(x)
}

// splitmix64 is one step of Vigna's SplitMix64 generator.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
