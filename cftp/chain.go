package cftp

import (
	"bytes"

	"github.com/katalvlaran/proppwilson/lattice"
)

// Chain is the pair of bounding configurations: the ceiling starts all-up,
// the floor all-down. Both consume identical draws, so ceiling ≥ floor holds
// pointwise after every Apply, and once they meet they stay equal.
type Chain struct {
	torus   *lattice.Torus
	ceiling []uint8
	floor   []uint8
}

// NewChain allocates a reset chain on t.
func NewChain(t *lattice.Torus) *Chain {
	c := &Chain{
		torus:   t,
		ceiling: make([]uint8, t.Size()),
		floor:   make([]uint8, t.Size()),
	}
	c.Reset()
	return c
}

// Reset sets the ceiling all-up and the floor all-down.
func (c *Chain) Reset() {
	for i := range c.ceiling {
		c.ceiling[i] = 1
		c.floor[i] = 0
	}
}

// Apply updates both configurations with the same draw.
// Complexity: O(1).
func (c *Chain) Apply(d Draw) {
	i, cls := d.Site(), d.Class()
	switch cls {
	case AlwaysUp:
		c.ceiling[i], c.floor[i] = 1, 1
		return
	case AlwaysDown:
		c.ceiling[i], c.floor[i] = 0, 0
		return
	}
	c.ceiling[i] = spin(cls.Up(c.torus.UpCount(c.ceiling, i)))
	c.floor[i] = spin(cls.Up(c.torus.UpCount(c.floor, i)))
}

func spin(up bool) uint8 {
	if up {
		return 1
	}
	return 0
}

// Coalesced reports whether ceiling and floor are identical.
// Complexity: O(N).
func (c *Chain) Coalesced() bool {
	return bytes.Equal(c.ceiling, c.floor)
}

// Distance returns the number of sites where ceiling and floor differ.
// Complexity: O(N).
func (c *Chain) Distance() int {
	d := 0
	for i := range c.ceiling {
		if c.ceiling[i] != c.floor[i] {
			d++
		}
	}
	return d
}

// Dominates reports whether ceiling ≥ floor at every site.
func (c *Chain) Dominates() bool {
	for i := range c.ceiling {
		if c.ceiling[i] < c.floor[i] {
			return false
		}
	}
	return true
}

// Ceiling returns the upper configuration. The slice is a live view; callers
// must not modify it.
func (c *Chain) Ceiling() []uint8 { return c.ceiling }

// Floor returns the lower configuration. The slice is a live view; callers
// must not modify it.
func (c *Chain) Floor() []uint8 { return c.floor }
