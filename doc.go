// Package proppwilson draws exact samples of the two-dimensional Ising
// model with coupling from the past (Propp–Wilson).
//
// 🚀 What is proppwilson?
//
//	A small, deterministic toolkit that brings together:
//		• Topology: the n×n periodic square lattice (lattice)
//		• Engine: monotone heat-bath CFTP with backward doubling (cftp)
//		• Driver: concurrent temperature sweeps around Tc (sweep)
//		• Analysis: per-temperature moments and Binder cumulant (stats)
//		• Rendering: text snapshots of a sampled configuration (snapshot)
//
// ✨ Why coupling from the past?
//
//   - Exact – a coalesced sample is distributed exactly as the Boltzmann law
//   - Reproducible – every sample is a pure function of its seed
//   - Honest – non-coalescence is reported, never silently accepted
//
// Layout:
//
//	lattice/          — torus neighbour tables, row-major indexing
//	cftp/             — transition model, packed draw log, bounding chains, sampler
//	sweep/            — temperature grid, worker pool, Prometheus metrics
//	stats/            — record format and per-temperature aggregation
//	snapshot/         — glyph rendering of spin configurations
//	cmd/proppwilson/  — sweep, snapshot and stats commands
//
// Quick start:
//
//	s, ok, err := cftp.Run(cftp.NewSource(1), 32, 2.5, 30)
//
//	go install github.com/katalvlaran/proppwilson/cmd/proppwilson@latest
package proppwilson
