// Package feasibility screens candidate SPMM scenarios against the hard
// limits of the target distributed compute engine.
//
// Four independent predicates must all hold for a scenario to survive:
//
//  1. nnz_left fits a signed 32-bit count — the engine's sparse
//     representation indexes non-zeros with int32.
//  2. cols_left*cols_right fits the same limit — the dense right operand's
//     total element count.
//  3. rows_left*cols_right fits the same limit — the result matrix's total
//     element count.
//  4. nnz_left and nnz_right stay under a worker-memory ceiling
//     (70,000,000 by default, sized for a 32 GB executor) — tighter than
//     the platform limit, it keeps real benchmark runs tractable.
//
// The predicates are evaluated on the original derived integer values, so
// the surviving set does not depend on evaluation order. Filtering removes
// scenarios, never mutates them, and an empty result is a valid outcome.
//
// Both ceilings reflect one engine and one hardware budget, not physics;
// they are overridable via WithMaxEntries and WithMaxWorkerNNZ.
package feasibility
