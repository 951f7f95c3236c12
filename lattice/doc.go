// Package lattice builds the periodic square lattice (an n×n torus) that the
// exact Ising sampler runs on.
//
// What:
//
//   - Torus wraps a side length n and N = n² sites, indexed row-major (y·n + x).
//   - Each site has exactly four neighbours (up, left, right, down) with
//     periodic wraparound; the table is computed once and never mutated.
//   - UpCount reads the number of up neighbours of a site from a spin slice.
//
// Why:
//
//   - The heat-bath rule only needs the count of up neighbours, so a flat
//     [4]int table keeps the inner update loop branch-free.
//
// Complexity:
//
//   - NewTorus:  O(N) time and memory.
//   - Neighbors: O(1).
//   - UpCount:   O(1).
//
// Errors:
//
//   - ErrEmptyLattice:    n ≤ 0.
//   - ErrLatticeTooLarge: N ≥ MaxSites (site indices must fit in 29 bits).
package lattice
