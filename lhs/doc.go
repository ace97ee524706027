// Package lhs implements Latin Hypercube Sampling over [0,1).
//
// 🚀 What is LHS?
//
//	A stratified sampling technique: to draw n samples, partition [0,1) into
//	n equal strata and draw exactly one uniform value inside each, then
//	shuffle the stratum order. Unlike plain uniform sampling, the projection
//	of the result onto the axis is guaranteed to cover every interval
//	[k/n, (k+1)/n) exactly once — the property that makes a bounded sample
//	budget representative of a multi-dimensional space when each dimension
//	is drawn independently.
//
// ✨ Key guarantees:
//   - exactly one sample per stratum (coverage), for any n ≥ 1
//   - deterministic output for a fixed *rand.Rand seed
//   - O(n) time, O(n) space
//
// ⚙️ Usage:
//
//	rng := rand.New(rand.NewSource(42))
//	u, err := lhs.Sample(1000, rng)           // 1000 values in [0,1)
//	rows, err := lhs.SampleScaled(1000, 150000, rng) // scaled to [0,150000)
package lhs
