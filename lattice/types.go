// Package lattice defines the torus type, limits, and sentinel errors.
package lattice

import "errors"

// IndexBits is the width of the site-index field reserved by packed draws.
const IndexBits = 29

// MaxSites is the exclusive upper bound on the number of sites, 2^IndexBits.
const MaxSites = 1 << IndexBits

// Sentinel errors for lattice construction.
var (
	// ErrEmptyLattice indicates a non-positive side length.
	ErrEmptyLattice = errors.New("lattice: side length must be positive")
	// ErrLatticeTooLarge indicates n² does not fit in the site-index field.
	ErrLatticeTooLarge = errors.New("lattice: site count must be below 2^29")
)

// Direction names a slot of the neighbour table.
type Direction int

const (
	// Up is the site at (x, y-1).
	Up Direction = iota
	// Left is the site at (x-1, y).
	Left
	// Right is the site at (x+1, y).
	Right
	// Down is the site at (x, y+1).
	Down
)

// Torus is an n×n square lattice with periodic boundaries. It is immutable
// once built. Sites are indexed row-major: index = y*n + x.
type Torus struct {
	side      int
	sites     int
	neighbors [][4]int
}
