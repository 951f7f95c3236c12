package cftp

import "github.com/katalvlaran/proppwilson/lattice"

// Magnetization returns #up − #down = 2·#up − N.
// Complexity: O(N).
func Magnetization(spins []uint8) int {
	up := 0
	for _, s := range spins {
		up += int(s)
	}
	return 2*up - len(spins)
}

// Energy returns the nearest-neighbour Hamiltonian H = −Σ_bonds s_i·s_j with
// s = ±1 and each of the 2N bonds counted once. Per site this is
// −s_i·(m_i − 2), where m_i is the up-neighbour count.
// Complexity: O(N).
func Energy(t *lattice.Torus, spins []uint8) int {
	e := 0
	for i, s := range spins {
		e -= (2*int(s) - 1) * (t.UpCount(spins, i) - 2)
	}
	return e
}
