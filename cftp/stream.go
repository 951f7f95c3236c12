package cftp

import "slices"

// Stream is the replayable log of shared randomness.
//
// Draws are appended at the far-past end: draws[0] is applied last (just
// before time 0) and draws[len-1] is applied first. Extending from W to 2W
// therefore prepends W fresh draws in time while every draw used at window W
// is kept and replayed in the same order, as the chronological suffix.
type Stream struct {
	sites int
	trans Transition
	draws []Draw
}

// NewStream returns an empty stream for a lattice of sites sites.
func NewStream(sites int, trans Transition) *Stream {
	return &Stream{sites: sites, trans: trans}
}

// Len returns the number of draws, i.e. the current window length.
func (s *Stream) Len() int { return len(s.draws) }

// Next generates one draw from src: a uniform site, then a uniform variate
// reduced to its threshold class. It does not modify the stream.
func (s *Stream) Next(src Source) Draw {
	site := src.IntN(s.sites)
	return PackDraw(site, s.trans.Classify(src.Float64()))
}

// Extend appends count fresh draws further into the past.
// Complexity: O(count) time, amortised O(count) memory.
func (s *Stream) Extend(src Source, count int) {
	if count <= 0 {
		return
	}
	s.draws = slices.Grow(s.draws, count)
	for i := 0; i < count; i++ {
		s.draws = append(s.draws, s.Next(src))
	}
}

// Replay calls fn on every draw from the oldest (furthest past) to the newest.
func (s *Stream) Replay(fn func(Draw)) {
	for p := len(s.draws) - 1; p >= 0; p-- {
		fn(s.draws[p])
	}
}

// Chronological returns a copy of the draws in application order.
func (s *Stream) Chronological() []Draw {
	out := slices.Clone(s.draws)
	slices.Reverse(out)
	return out
}

// Truncate drops every draw, keeping the allocated capacity.
func (s *Stream) Truncate() {
	s.draws = s.draws[:0]
}
