// Package stats aggregates the per-sample output of a temperature sweep.
//
// What:
//
//   - Record is one sample line: "t dt iterations magnetization energy".
//   - Moments accumulates a series and reports mean, unbiased standard
//     deviation and the Binder cumulant 1 − ⟨x⁴⟩/(3⟨x²⟩²).
//   - Aggregator groups consecutive records sharing the same t and emits a
//     Summary per group: |M|/N, E/N and iteration count statistics.
//
// Errors:
//
//   - ErrMalformedRecord: a line does not hold five numeric fields.
//   - ErrBadSites:        the site count is not positive or cannot be derived.
package stats
