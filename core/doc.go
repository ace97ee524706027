// Package core defines the candidate Scenario type shared by the whole
// SPMM planning pipeline: the shape and density statistics of one
// sparse-by-matrix multiplication, together with its derived non-zero counts.
//
// A Scenario is an immutable value. It is created in bulk by the sampler,
// kept or discarded (never mutated) by the feasibility filter, and persisted
// as one row of the candidate dataset that training and partitioning treat
// as a read-only corpus.
package core
