package cftp

import (
	"fmt"

	"github.com/katalvlaran/proppwilson/lattice"
)

// Class is the threshold class of a draw: the new spin is up iff Class ≤ m,
// where m is the site's current up-neighbour count.
type Class uint8

const (
	// AlwaysUp sets the site up regardless of its neighbours.
	AlwaysUp Class = 0
	// AlwaysDown sets the site down regardless of its neighbours.
	AlwaysDown Class = 5
)

// Up reports whether a site with m up neighbours becomes up under c.
func (c Class) Up(m int) bool {
	return int(c) <= m
}

// NeighborIndependent reports whether c ignores the neighbourhood.
func (c Class) NeighborIndependent() bool {
	return c == AlwaysUp || c == AlwaysDown
}

// Draw is one shared random event packed into 32 bits:
// the low lattice.IndexBits bits hold the site, the high 3 bits the Class.
type Draw uint32

const indexMask = 1<<lattice.IndexBits - 1

// PackDraw encodes (site, class). It panics if site does not fit the index
// field or class > AlwaysDown; lattice.NewTorus rules out the former for
// every valid lattice.
func PackDraw(site int, c Class) Draw {
	if site < 0 || site >= lattice.MaxSites || c > AlwaysDown {
		panic(fmt.Sprintf("cftp: cannot pack site=%d class=%d", site, c))
	}
	return Draw(uint32(site) | uint32(c)<<lattice.IndexBits)
}

// Site returns the site index of d.
func (d Draw) Site() int {
	return int(uint32(d) & indexMask)
}

// Class returns the threshold class of d.
func (d Draw) Class() Class {
	return Class(uint32(d) >> lattice.IndexBits)
}
