package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Moments collects a series of observations.
// The zero value is an empty series ready to use.
type Moments struct {
	xs []float64
}

// Add appends one observation.
func (m *Moments) Add(x float64) {
	m.xs = append(m.xs, x)
}

// Count returns the number of observations.
func (m *Moments) Count() int { return len(m.xs) }

// Mean returns the sample mean, NaN when empty.
func (m *Moments) Mean() float64 {
	if len(m.xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(m.xs, nil)
}

// StdDev returns the unbiased (n−1) standard deviation, NaN for n < 2.
func (m *Moments) StdDev() float64 {
	if len(m.xs) < 2 {
		return math.NaN()
	}
	_, std := stat.MeanStdDev(m.xs, nil)
	return std
}

// Binder returns 1 − ⟨x⁴⟩ / (3⟨x²⟩²), NaN when empty or ⟨x²⟩ = 0.
func (m *Moments) Binder() float64 {
	n := float64(len(m.xs))
	if n == 0 {
		return math.NaN()
	}
	sq := make([]float64, len(m.xs))
	floats.MulTo(sq, m.xs, m.xs)
	s2 := floats.Sum(sq)
	if s2 == 0 {
		return math.NaN()
	}
	s4 := floats.Dot(sq, sq)
	return 1 - s4*n/(3*s2*s2)
}

// Reset empties the series, keeping its capacity.
func (m *Moments) Reset() {
	m.xs = m.xs[:0]
}
