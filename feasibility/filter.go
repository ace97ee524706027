package feasibility

import (
	"math"

	"github.com/letitsparse/dos/core"
)

// Default execution limits of the target compute engine.
const (
	// DefaultMaxEntries is the exclusive upper bound on any materialized
	// count: the engine stores non-zero and element counts as int32.
	DefaultMaxEntries = int64(math.MaxInt32)

	// DefaultMaxWorkerNNZ is the exclusive upper bound on per-operand
	// non-zeros that a single 32 GB worker can hold during a benchmark run.
	DefaultMaxWorkerNNZ = int64(70_000_000)
)

// Internal panic message for option constructors (programmer errors only).
const panicBadLimit = "feasibility: limit must be positive"

// Limits holds the resolved execution ceilings.
type Limits struct {
	// MaxEntries bounds nnz_left, the dense operand's element count and the
	// result's element count (predicates 1-3). Exclusive.
	MaxEntries int64

	// MaxWorkerNNZ bounds nnz_left and nnz_right (predicate 4). Exclusive.
	MaxWorkerNNZ int64
}

// DefaultLimits returns the reference engine limits.
func DefaultLimits() Limits {
	return Limits{MaxEntries: DefaultMaxEntries, MaxWorkerNNZ: DefaultMaxWorkerNNZ}
}

// Option overrides one execution ceiling.
type Option func(*Limits)

// WithMaxEntries overrides the 32-bit-count ceiling. Panics if max <= 0.
func WithMaxEntries(max int64) Option {
	if max <= 0 {
		panic(panicBadLimit)
	}

	return func(l *Limits) { l.MaxEntries = max }
}

// WithMaxWorkerNNZ overrides the worker-memory ceiling. Panics if max <= 0.
func WithMaxWorkerNNZ(max int64) Option {
	if max <= 0 {
		panic(panicBadLimit)
	}

	return func(l *Limits) { l.MaxWorkerNNZ = max }
}

// Feasible reports whether s can execute under the configured limits:
// the conjunction of all four predicates over s's original derived values.
func Feasible(s core.Scenario, opts ...Option) bool {
	return feasible(s, gatherLimits(opts...))
}

// Filter returns the scenarios of in that satisfy all four predicates,
// preserving input order. The input is never mutated; the result is a new
// slice. An empty result is valid and not an error.
//
// Filter is idempotent: the predicates depend only on each scenario's own
// values, so re-filtering a surviving set returns it unchanged.
//
// Complexity: Time O(len(in)), Space O(len(out)).
func Filter(in []core.Scenario, opts ...Option) []core.Scenario {
	limits := gatherLimits(opts...)

	out := make([]core.Scenario, 0, len(in))
	for _, s := range in {
		if feasible(s, limits) {
			out = append(out, s)
		}
	}

	return out
}

// feasible evaluates the four predicates against one resolved Limits value.
func feasible(s core.Scenario, l Limits) bool {
	if s.NNZLeft >= l.MaxEntries {
		return false // sparse operand count overflows the engine's int32
	}
	if s.DenseEntries() >= l.MaxEntries {
		return false // dense right operand overflows the engine's int32
	}
	if s.ResultEntries() >= l.MaxEntries {
		return false // result matrix overflows the engine's int32
	}
	if s.NNZLeft >= l.MaxWorkerNNZ || s.NNZRight >= l.MaxWorkerNNZ {
		return false // operand would not fit the worker memory budget
	}

	return true
}

// gatherLimits resolves options against DefaultLimits, last-writer-wins.
func gatherLimits(user ...Option) Limits {
	l := DefaultLimits()
	for _, set := range user {
		set(&l)
	}

	return l
}
