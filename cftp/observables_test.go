package cftp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proppwilson/cftp"
	"github.com/katalvlaran/proppwilson/lattice"
)

func filled(n int, v uint8) []uint8 {
	s := make([]uint8, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// TestObservables_Uniform: both ground states have |M| = N and E = −2N.
func TestObservables_Uniform(t *testing.T) {
	tor, err := lattice.NewTorus(4)
	require.NoError(t, err)
	N := tor.Size()

	up, down := filled(N, 1), filled(N, 0)
	assert.Equal(t, N, cftp.Magnetization(up))
	assert.Equal(t, -N, cftp.Magnetization(down))
	assert.Equal(t, -2*N, cftp.Energy(tor, up))
	assert.Equal(t, -2*N, cftp.Energy(tor, down))
}

// TestObservables_Checkerboard: zero magnetization, every bond frustrated.
func TestObservables_Checkerboard(t *testing.T) {
	tor, err := lattice.NewTorus(4)
	require.NoError(t, err)
	spins := make([]uint8, tor.Size())
	for i := range spins {
		x, y := tor.Coordinate(i)
		spins[i] = uint8((x + y) % 2)
	}
	assert.Equal(t, 0, cftp.Magnetization(spins))
	assert.Equal(t, 2*tor.Size(), cftp.Energy(tor, spins))
}

// TestObservables_SingleFlip: one down spin in an up sea breaks four bonds,
// raising E by 8 and lowering M by 2.
func TestObservables_SingleFlip(t *testing.T) {
	tor, err := lattice.NewTorus(4)
	require.NoError(t, err)
	N := tor.Size()
	spins := filled(N, 1)
	spins[tor.Index(2, 1)] = 0

	assert.Equal(t, N-2, cftp.Magnetization(spins))
	assert.Equal(t, -2*N+8, cftp.Energy(tor, spins))
}

// TestObservables_Parity: M has the parity of N, E is always even.
func TestObservables_Parity(t *testing.T) {
	src := cftp.NewSource(4)
	for _, n := range []int{3, 4, 5} {
		tor, err := lattice.NewTorus(n)
		require.NoError(t, err)
		N := tor.Size()
		for trial := 0; trial < 50; trial++ {
			spins := make([]uint8, N)
			for i := range spins {
				spins[i] = uint8(src.IntN(2))
			}
			m := cftp.Magnetization(spins)
			assert.Equal(t, N%2, (m%2+2)%2, "n=%d", n)
			assert.GreaterOrEqual(t, m, -N)
			assert.LessOrEqual(t, m, N)
			e := cftp.Energy(tor, spins)
			assert.Equal(t, 0, e%2)
			assert.GreaterOrEqual(t, e, -2*N)
			assert.LessOrEqual(t, e, 2*N)
		}
	}
}
