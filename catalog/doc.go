// Package catalog supplies the two fixed density pools used when generating
// candidate SPMM scenarios.
//
// The left pool holds 30 densities measured on real sparse graph datasets
// (DBLP, Amazon, Youtube, Orkut, LiveJournal from the Stanford SNAP
// collection). The right pool is a synthetic 16-value sweep from 0.0005 to
// 0.30 covering the low-to-moderate density regimes typical of machine
// learning workloads.
//
// Both pools are immutable constant sets. Sampling draws uniformly with
// replacement; each call is independent of prior calls.
package catalog
