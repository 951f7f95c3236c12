// File: lattice/torus_test.go
package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTorus_InvalidSides ensures NewTorus rejects bad sizes before allocating.
func TestNewTorus_InvalidSides(t *testing.T) {
	for _, n := range []int{0, -1, -64} {
		_, err := NewTorus(n)
		assert.ErrorIs(t, err, ErrEmptyLattice, "n=%d", n)
	}

	// 2^15 squared is exactly 2^30 which exceeds the 29-bit index field.
	_, err := NewTorus(1 << 15)
	assert.ErrorIs(t, err, ErrLatticeTooLarge)

	// Largest accepted side: 23170² = 536,848,900 < 2^29 = 536,870,912.
	// Checked without building: just the bound arithmetic.
	assert.Less(t, 23170*23170, MaxSites)
	assert.GreaterOrEqual(t, 23171*23171, MaxSites)
}

// TestNewTorus_Neighbors3 checks every neighbour slot on a 3×3 torus.
//
// Indices:
//
//	0 1 2
//	3 4 5
//	6 7 8
func TestNewTorus_Neighbors3(t *testing.T) {
	tor, err := NewTorus(3)
	require.NoError(t, err)
	assert.Equal(t, 3, tor.Side())
	assert.Equal(t, 9, tor.Size())

	// centre: up=1 left=3 right=5 down=7
	assert.Equal(t, [4]int{1, 3, 5, 7}, tor.Neighbors(4))
	// corner (0,0) wraps both ways: up=6 left=2 right=1 down=3
	assert.Equal(t, [4]int{6, 2, 1, 3}, tor.Neighbors(0))
	// corner (2,2): up=5 left=7 right=6 down=2
	assert.Equal(t, [4]int{5, 7, 6, 2}, tor.Neighbors(8))
	assert.Equal(t, 5, tor.Neighbor(8, Up))
	assert.Equal(t, 2, tor.Neighbor(8, Down))
}

// TestNewTorus_Symmetric verifies the adjacency relation is symmetric and
// every site has four neighbours, on several sizes including the
// degenerate 1×1 and 2×2 tori where neighbours repeat.
func TestNewTorus_Symmetric(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8} {
		tor, err := NewTorus(n)
		require.NoError(t, err)
		for i := 0; i < tor.Size(); i++ {
			nb := tor.Neighbors(i)
			// opposite directions must point back at i
			assert.Equal(t, i, tor.Neighbor(nb[Up], Down), "n=%d i=%d", n, i)
			assert.Equal(t, i, tor.Neighbor(nb[Down], Up), "n=%d i=%d", n, i)
			assert.Equal(t, i, tor.Neighbor(nb[Left], Right), "n=%d i=%d", n, i)
			assert.Equal(t, i, tor.Neighbor(nb[Right], Left), "n=%d i=%d", n, i)
		}
	}
}

// TestCoordinate_RoundTrip maps every index to (x,y) and back.
func TestCoordinate_RoundTrip(t *testing.T) {
	tor, err := NewTorus(7)
	require.NoError(t, err)
	for i := 0; i < tor.Size(); i++ {
		x, y := tor.Coordinate(i)
		assert.Equal(t, i, tor.Index(x, y))
	}
}

// TestUpCount counts neighbours in a checkerboard and in uniform configurations.
func TestUpCount(t *testing.T) {
	tor, err := NewTorus(4)
	require.NoError(t, err)

	up := make([]uint8, tor.Size())
	down := make([]uint8, tor.Size())
	board := make([]uint8, tor.Size())
	for i := range up {
		up[i] = 1
		x, y := tor.Coordinate(i)
		board[i] = uint8((x + y) % 2)
	}
	for i := 0; i < tor.Size(); i++ {
		assert.Equal(t, 4, tor.UpCount(up, i))
		assert.Equal(t, 0, tor.UpCount(down, i))
		// on an even torus every neighbour of a checkerboard site has the other colour
		want := 4
		if board[i] == 1 {
			want = 0
		}
		assert.Equal(t, want, tor.UpCount(board, i))
	}
}
