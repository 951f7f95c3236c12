package cftp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proppwilson/cftp"
	"github.com/katalvlaran/proppwilson/lattice"
)

// TestChain_Reset starts with a fully separated pair.
func TestChain_Reset(t *testing.T) {
	tor, err := lattice.NewTorus(4)
	require.NoError(t, err)
	c := cftp.NewChain(tor)

	assert.Equal(t, tor.Size(), c.Distance())
	assert.False(t, c.Coalesced())
	assert.True(t, c.Dominates())
	for i := 0; i < tor.Size(); i++ {
		assert.Equal(t, uint8(1), c.Ceiling()[i])
		assert.Equal(t, uint8(0), c.Floor()[i])
	}
}

// TestChain_Monotone applies long random draw sequences over several sizes
// and temperatures and checks ceiling ≥ floor after every single draw.
func TestChain_Monotone(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6} {
		for _, T := range []float64{0.5, 2.269, 10} {
			tor, err := lattice.NewTorus(n)
			require.NoError(t, err)
			tr, err := cftp.NewTransition(T)
			require.NoError(t, err)
			s := cftp.NewStream(tor.Size(), tr)
			src := cftp.DeriveSource(99, uint64(n), uint64(T*1000))

			c := cftp.NewChain(tor)
			for step := 0; step < 2000; step++ {
				c.Apply(s.Next(src))
				if !c.Dominates() {
					t.Fatalf("n=%d T=%v: domination broken after %d draws", n, T, step+1)
				}
			}
		}
	}
}

// TestChain_Deterministic replays one stream twice from reset and expects
// identical configurations.
func TestChain_Deterministic(t *testing.T) {
	tor, err := lattice.NewTorus(5)
	require.NoError(t, err)
	tr, err := cftp.NewTransition(2)
	require.NoError(t, err)
	s := cftp.NewStream(tor.Size(), tr)
	s.Extend(cftp.NewSource(21), 400)

	c := cftp.NewChain(tor)
	s.Replay(c.Apply)
	ceil := append([]uint8(nil), c.Ceiling()...)
	floor := append([]uint8(nil), c.Floor()...)

	c.Reset()
	s.Replay(c.Apply)
	assert.Equal(t, ceil, c.Ceiling())
	assert.Equal(t, floor, c.Floor())
}

// TestChain_CoalescenceIsAbsorbing forces coalescence with neighbour-independent
// draws, then checks that any further shared draws keep the pair equal.
func TestChain_CoalescenceIsAbsorbing(t *testing.T) {
	tor, err := lattice.NewTorus(4)
	require.NoError(t, err)
	tr, err := cftp.NewTransition(2.269)
	require.NoError(t, err)
	s := cftp.NewStream(tor.Size(), tr)
	src := cftp.NewSource(8)

	c := cftp.NewChain(tor)
	for i := 0; i < tor.Size(); i++ {
		cls := cftp.AlwaysUp
		if i%3 == 0 {
			cls = cftp.AlwaysDown
		}
		c.Apply(cftp.PackDraw(i, cls))
	}
	require.True(t, c.Coalesced())
	require.Equal(t, 0, c.Distance())

	for step := 0; step < 5000; step++ {
		c.Apply(s.Next(src))
		if !c.Coalesced() {
			t.Fatalf("chains separated after %d draws", step+1)
		}
	}
}

// TestChain_ApplyRule checks a neighbour-dependent draw against hand counts.
//
// On a 3×3 torus the ceiling has all four neighbours of site 4 up (m=4)
// and the floor has none (m=0). Class 3 sets the ceiling's site up and the
// floor's site down.
func TestChain_ApplyRule(t *testing.T) {
	tor, err := lattice.NewTorus(3)
	require.NoError(t, err)
	c := cftp.NewChain(tor)

	c.Apply(cftp.PackDraw(4, 3))
	assert.Equal(t, uint8(1), c.Ceiling()[4])
	assert.Equal(t, uint8(0), c.Floor()[4])

	// Force site 1 (up of 4) and site 3 (left of 4) up in both.
	c.Apply(cftp.PackDraw(1, cftp.AlwaysUp))
	c.Apply(cftp.PackDraw(3, cftp.AlwaysUp))
	// Floor now has m=2 at site 4: class 2 sets it up, class 3 would not.
	c.Apply(cftp.PackDraw(4, 2))
	assert.Equal(t, uint8(1), c.Floor()[4])
	c.Apply(cftp.PackDraw(4, 3))
	assert.Equal(t, uint8(0), c.Floor()[4])
	assert.Equal(t, uint8(1), c.Ceiling()[4])
}
