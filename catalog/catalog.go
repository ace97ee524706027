package catalog

import (
	"errors"
	"math/rand"
)

var (
	// ErrEmptyPool indicates a sample was requested from a pool with no values.
	ErrEmptyPool = errors.New("catalog: density pool is empty")

	// ErrBadSampleCount indicates a non-positive sample count.
	ErrBadSampleCount = errors.New("catalog: sample count must be positive")

	// ErrNeedRand indicates that no *rand.Rand was supplied.
	ErrNeedRand = errors.New("catalog: rng is required")
)

// Pool is a fixed set of plausible density values in (0,1].
type Pool []float64

// leftDensities are measured non-zero fractions of real-world sparse graph
// datasets (SNAP: DBLP, Amazon, Youtube, Orkut, LiveJournal — six values
// each). The exact magnitudes and their order are empirical measurements;
// do not reorder or round them.
var leftDensities = Pool{
	0.00108175, 0.00082282, 0.00056263, 0.00034241, 0.00015297, 0.00002088,
	0.00163948, 0.00078778, 0.00041097, 0.00019487, 0.00008429, 0.00001651,
	0.02533638, 0.00952101, 0.00296184, 0.00082185, 0.00018467, 0.00000464,
	0.01084252, 0.00860544, 0.00491597, 0.00160539, 0.00047003, 0.00002483,
	0.00370564, 0.00182521, 0.00082487, 0.00031941, 0.00013363, 0.00000434,
}

// rightDensities sweep the right-matrix density from 0.0005 to 0.30,
// mirroring the sparsity levels SPMM sees in machine learning jobs.
var rightDensities = Pool{
	0.0005, 0.001, 0.005, 0.01, 0.03, 0.05, 0.07, 0.1,
	0.13, 0.15, 0.17, 0.2, 0.23, 0.25, 0.27, 0.3,
}

// LeftDensities returns a copy of the empirical left-matrix density pool.
func LeftDensities() Pool {
	return append(Pool(nil), leftDensities...)
}

// RightDensities returns a copy of the synthetic right-matrix density sweep.
func RightDensities() Pool {
	return append(Pool(nil), rightDensities...)
}

// Sample draws n values from the pool, independently and uniformly at random
// with replacement. There is no ordering guarantee and no shared
// without-replacement state between calls.
//
// Errors:
//   - ErrEmptyPool      — the pool has no values.
//   - ErrBadSampleCount — n <= 0.
//   - ErrNeedRand       — rng is nil.
func (p Pool) Sample(n int, rng *rand.Rand) ([]float64, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPool
	}
	if n <= 0 {
		return nil, ErrBadSampleCount
	}
	if rng == nil {
		return nil, ErrNeedRand
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = p[rng.Intn(len(p))]
	}

	return out, nil
}
