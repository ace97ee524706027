// Package dataset persists candidate scenarios as CSV tables and partitions
// them into train/test corpora.
//
// The unlabeled table has a fixed seven-column layout shared with every
// downstream consumer (training, partitioning, inference):
//
//	rows_left,cols_left,cols_right,density_left,density_right,nnz_left,nnz_right
//
// The labeled table appends the two measured latency columns produced by
// offline benchmark runs:
//
//	...,smsm_total_latency,smdm_total_latency
//
// Partitioning consumes a list of 1-based row indices designated as the
// training set by an external design-of-experiments tool and produces the
// complement as the test set. The 1-based convention is an external-format
// detail; the conversion to 0-based happens exactly once, at this boundary.
package dataset
