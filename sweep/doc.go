// Package sweep scans temperatures around the critical point and draws exact
// samples at each one.
//
// What:
//
//   - Grid builds the descending temperature grid T = Tc + i/(4n),
//     i = steps … −steps, cut at the first non-positive T.
//   - Driver runs Samples independent samples per temperature on a pool of
//     Workers, emits one stats.Record per success in sample order, logs each
//     failure as NG, and stops after the first temperature where fewer than
//     half of the samples coalesced.
//   - Metrics exposes sample outcomes, doublings and attempts to Prometheus.
//
// Reproducibility:
//
//	Sample i at grid index k always uses cftp.DeriveSource(Seed, k, i), so the
//	output does not depend on the number of workers or on scheduling.
package sweep
