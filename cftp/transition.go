package cftp

import "math"

// Transition holds the heat-bath probabilities for one temperature.
//
// For a site whose up-neighbour count is m, the conditional probability of
// the site being up is
//
//	p(m) = 1 / (1 + exp(−2β·(2m − 4)))
//
// which is monotone in m, equals 0.5 at m=2, and satisfies p(m) = 1 − p(4−m).
// Only the two values below 0.5 are stored:
//
//	P4 = p(0) = 1 − p(4)   (all four neighbours disagree)
//	P2 = p(1) = 1 − p(3)   (three of four disagree)
//
// so the class-bin boundaries ascend as P4 ≤ P2 ≤ 0.5 ≤ 1−P2 ≤ 1−P4.
type Transition struct {
	Beta float64
	P2   float64
	P4   float64
}

// NewTransition computes the heat-bath probabilities at temperature T.
// Returns ErrBadTemperature unless 0 < T < +Inf.
//
// Complexity: O(1).
func NewTransition(temperature float64) (Transition, error) {
	if !(temperature > 0) || math.IsInf(temperature, 1) {
		return Transition{}, ErrBadTemperature
	}
	beta := 1 / temperature

	return Transition{
		Beta: beta,
		P2:   heatBath(beta, -2, 2),
		P4:   heatBath(beta, -4, 4),
	}, nil
}

// heatBath returns the Boltzmann probability of the state with energy e1
// against the state with energy e0: e^{−βe1} / (e^{−βe0} + e^{−βe1}).
// Written as a logistic so that large β underflows to 0 instead of NaN.
func heatBath(beta, e0, e1 float64) float64 {
	return 1 / (1 + math.Exp((e1-e0)*beta))
}

// UpProbability returns p(m), the conditional probability of "up" given m up
// neighbours. m outside [0,4] is clamped.
func (tr Transition) UpProbability(m int) float64 {
	switch {
	case m <= 0:
		return tr.P4
	case m == 1:
		return tr.P2
	case m == 2:
		return 0.5
	case m == 3:
		return 1 - tr.P2
	default:
		return 1 - tr.P4
	}
}

// Classify maps a uniform variate u ∈ [0,1) to the threshold class whose rule
// "up iff class ≤ m" reproduces p(m) for every m at once:
//
//	[0, P4)      → 5 (always down)
//	[P4, P2)     → 4
//	[P2, 0.5)    → 3
//	[0.5, 1−P2)  → 2
//	[1−P2, 1−P4) → 1
//	[1−P4, 1)    → 0 (always up)
func (tr Transition) Classify(u float64) Class {
	switch {
	case u < tr.P4:
		return AlwaysDown
	case u < tr.P2:
		return 4
	case u < 0.5:
		return 3
	case u < 1-tr.P2:
		return 2
	case u < 1-tr.P4:
		return 1
	default:
		return AlwaysUp
	}
}
