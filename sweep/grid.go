package sweep

import "gonum.org/v1/gonum/floats"

// Grid returns the temperatures T = Tc + i/side/4 for i = steps, steps−1, …,
// −steps in that order, truncated before the first T ≤ 0.
//
// Complexity: O(steps).
func Grid(side, steps int) []Point {
	if side <= 0 || steps < 0 {
		return nil
	}
	offsets := []float64{0}
	if steps > 0 {
		offsets = make([]float64, 2*steps+1)
		floats.Span(offsets, float64(steps), float64(-steps))
	}

	pts := make([]Point, 0, len(offsets))
	for k, i := range offsets {
		dt := i / float64(side) / 4
		t := Tc + dt
		if t <= 0 {
			break
		}
		pts = append(pts, Point{Index: k, T: t, DT: dt})
	}
	return pts
}
