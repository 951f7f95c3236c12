package lattice

// offsets lists the (dx, dy) displacement for each Direction, in order.
var offsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// NewTorus constructs the n×n periodic lattice and its neighbour table.
// Returns ErrEmptyLattice if n ≤ 0 and ErrLatticeTooLarge if n² ≥ MaxSites.
// Complexity: O(n²) time and memory.
func NewTorus(n int) (*Torus, error) {
	if n <= 0 {
		return nil, ErrEmptyLattice
	}
	// Compare against the bound before squaring to stay clear of overflow.
	if n > MaxSites/n || n*n >= MaxSites {
		return nil, ErrLatticeTooLarge
	}
	t := &Torus{
		side:      n,
		sites:     n * n,
		neighbors: make([][4]int, n*n),
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := t.Index(x, y)
			for d, off := range offsets {
				t.neighbors[i][d] = t.Index(wrap(x+off[0], n), wrap(y+off[1], n))
			}
		}
	}

	return t, nil
}

// wrap folds v into [0, n) for v ∈ [-1, n].
func wrap(v, n int) int {
	return (v + n) % n
}

// Side returns the side length n.
func (t *Torus) Side() int { return t.side }

// Size returns the number of sites N = n².
func (t *Torus) Size() int { return t.sites }

// Index maps (x,y) to a row-major index: y*n + x.
// Complexity: O(1).
func (t *Torus) Index(x, y int) int {
	return y*t.side + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (t *Torus) Coordinate(i int) (x, y int) {
	return i % t.side, i / t.side
}

// Neighbors returns the four neighbours of site i in Direction order.
// Complexity: O(1).
func (t *Torus) Neighbors(i int) [4]int {
	return t.neighbors[i]
}

// Neighbor returns the neighbour of site i in direction d.
func (t *Torus) Neighbor(i int, d Direction) int {
	return t.neighbors[i][d]
}

// UpCount returns how many of site i's neighbours are up (non-zero) in spins.
// spins must have length Size().
// Complexity: O(1).
func (t *Torus) UpCount(spins []uint8, i int) int {
	nb := &t.neighbors[i]
	return int(spins[nb[0]] + spins[nb[1]] + spins[nb[2]] + spins[nb[3]])
}
