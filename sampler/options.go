package sampler

import (
	"math/rand"

	"github.com/letitsparse/dos/catalog"
)

// Default per-dimension maxima for the scaled LHS draws. These bound the
// shape space explored by the reference experiment design.
const (
	// DefaultMaxRowsLeft bounds the left-matrix row count.
	DefaultMaxRowsLeft = 150_000

	// DefaultMaxColsLeft bounds the shared inner dimension.
	DefaultMaxColsLeft = 100_000

	// DefaultMaxColsRight bounds the right-matrix column count.
	DefaultMaxColsRight = 50_000
)

// Internal panic messages for option constructors (programmer errors only).
const (
	panicBadMaximum = "sampler: dimension maximum must be positive"
	panicNilRand    = "sampler: WithRand: rng must be non-nil"
)

// Option mutates the sampler configuration. Options are applied in order
// with last-writer-wins semantics.
type Option func(*options)

// options is the resolved sampler configuration. It is unexported; public
// entry points accept ...Option and resolve them via gatherOptions.
type options struct {
	rng *rand.Rand // nil until WithSeed/WithRand; Generate rejects nil

	maxRowsLeft  int
	maxColsLeft  int
	maxColsRight int

	leftPool  catalog.Pool
	rightPool catalog.Pool
}

// WithSeed supplies a deterministic RNG seeded with seed.
// Use for reproducible candidate sets and golden tests.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = rng }
}

// WithMaxRowsLeft overrides the left-matrix row maximum. Panics if max <= 0.
func WithMaxRowsLeft(max int) Option {
	if max <= 0 {
		panic(panicBadMaximum)
	}

	return func(o *options) { o.maxRowsLeft = max }
}

// WithMaxColsLeft overrides the inner-dimension maximum. Panics if max <= 0.
func WithMaxColsLeft(max int) Option {
	if max <= 0 {
		panic(panicBadMaximum)
	}

	return func(o *options) { o.maxColsLeft = max }
}

// WithMaxColsRight overrides the right-matrix column maximum. Panics if max <= 0.
func WithMaxColsRight(max int) Option {
	if max <= 0 {
		panic(panicBadMaximum)
	}

	return func(o *options) { o.maxColsRight = max }
}

// WithLeftPool replaces the left-matrix density pool. Emptiness is reported
// by Generate as catalog.ErrEmptyPool (a configuration error, not a panic).
func WithLeftPool(p catalog.Pool) Option {
	return func(o *options) { o.leftPool = p }
}

// WithRightPool replaces the right-matrix density pool.
func WithRightPool(p catalog.Pool) Option {
	return func(o *options) { o.rightPool = p }
}

// gatherOptions resolves user options against documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		rng:          nil, // stochastic entry points require an explicit RNG
		maxRowsLeft:  DefaultMaxRowsLeft,
		maxColsLeft:  DefaultMaxColsLeft,
		maxColsRight: DefaultMaxColsRight,
		leftPool:     catalog.LeftDensities(),
		rightPool:    catalog.RightDensities(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
