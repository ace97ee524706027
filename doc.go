// Package dos helps a distributed data-processing job decide how to execute
// a sparse-matrix-by-matrix multiplication (SPMM) stage: keep the right
// operand sparse (sm×sm) or materialize it dense (sm×dm).
//
// 🚀 What is dos?
//
//	A toolkit that predicts, from shape and density statistics alone, which
//	SPMM execution strategy will finish faster — without running either:
//		• Experiment design: Latin Hypercube Sampling over the 3-D shape space
//		• Density catalog: empirical left-matrix densities + a synthetic sweep
//		• Feasibility filtering: 32-bit count limits and worker-memory ceilings
//		• Dataset plumbing: CSV persistence and DOE-driven train/test splits
//		• Latency regression: min-max scaling + a shallow feed-forward model
//		• Decision surface: CLI and HTTP wrappers producing sm×sm / sm×dm calls
//
// Everything is organized under focused subpackages:
//
//	core/        — the candidate Scenario type and derived non-zero counts
//	lhs/         — stratified Latin Hypercube Sampling in [0,1)
//	catalog/     — fixed density pools with sample-with-replacement draws
//	sampler/     — bulk scenario generation over shapes × densities
//	feasibility/ — the four-predicate execution-feasibility filter
//	dataset/     — CSV tables, labeled corpora, train/test partitioning
//	scaler/      — reversible min-max feature scaling
//	dnn/         — the feed-forward latency regressor (Adagrad + MAPE)
//	predict/     — two-model comparison and the decision string/handler
//	cmd/dos/     — the command-line surface (generate, split, train, predict, serve)
//
// The sampling and filtering pipeline is a single-pass batch transformation:
// generate → filter → persist. All stochastic entry points take an explicit
// seedable *rand.Rand, so every run is reproducible.
//
//	go get github.com/letitsparse/dos
package dos
