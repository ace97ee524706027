package lhs

import (
	"errors"
	"math"
	"math/rand"
)

var (
	// ErrBadSampleCount indicates a non-positive sample count.
	ErrBadSampleCount = errors.New("lhs: sample count must be positive")

	// ErrNeedRand indicates that no *rand.Rand was supplied.
	ErrNeedRand = errors.New("lhs: rng is required")

	// ErrBadScale indicates a non-positive or non-finite scale factor.
	ErrBadScale = errors.New("lhs: scale must be positive and finite")
)

// Sample draws n Latin-Hypercube-stratified values in [0,1).
//
// Description:
//
//	[0,1) is split into n strata of width 1/n. One uniform value is drawn
//	inside each stratum, and the strata are visited in a random permutation
//	so consecutive outputs carry no positional bias. Sorting the result
//	therefore yields exactly one value in [k/n, (k+1)/n) for every k.
//
// Complexity:
//
//	Time O(n), Space O(n).
//
// Errors:
//   - ErrBadSampleCount — n <= 0.
//   - ErrNeedRand       — rng is nil.
func Sample(n int, rng *rand.Rand) ([]float64, error) {
	if n <= 0 {
		return nil, ErrBadSampleCount
	}
	if rng == nil {
		return nil, ErrNeedRand
	}

	width := 1.0 / float64(n)
	out := make([]float64, n)
	// Perm shuffles the stratum order; the draw inside each stratum stays uniform.
	for i, k := range rng.Perm(n) {
		out[i] = (float64(k) + rng.Float64()) * width
	}

	return out, nil
}

// SampleScaled draws n stratified values in [0, max): Sample scaled by max.
//
// Errors:
//   - ErrBadSampleCount — n <= 0.
//   - ErrNeedRand       — rng is nil.
//   - ErrBadScale       — max <= 0, NaN or ±Inf.
func SampleScaled(n int, max float64, rng *rand.Rand) ([]float64, error) {
	if max <= 0 || math.IsNaN(max) || math.IsInf(max, 0) {
		return nil, ErrBadScale
	}

	out, err := Sample(n, rng)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] *= max
	}

	return out, nil
}
