// Package sampler generates candidate SPMM scenarios in bulk.
//
// Each of the three shape dimensions (rows of the left matrix, shared inner
// dimension, columns of the right matrix) is drawn independently with Latin
// Hypercube Sampling so its projection covers the full range evenly, then
// scaled by a per-dimension maximum and truncated to an integer. Densities
// are drawn with replacement from the catalog pools, orthogonal to the shape
// draws. Non-zero counts are derived last.
//
// Generation is a single pass with no I/O: exactly n scenarios in, exactly
// n scenarios out. Feasibility screening is a separate stage (package
// feasibility).
//
// All randomness flows through one explicit *rand.Rand supplied via
// WithSeed or WithRand, so a fixed seed reproduces the full candidate set.
package sampler
