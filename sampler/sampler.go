package sampler

import (
	"errors"
	"fmt"

	"github.com/letitsparse/dos/core"
	"github.com/letitsparse/dos/lhs"
)

var (
	// ErrBadSampleCount indicates a non-positive candidate count.
	ErrBadSampleCount = errors.New("sampler: sample count must be positive")

	// ErrNeedRand indicates that neither WithSeed nor WithRand was supplied.
	ErrNeedRand = errors.New("sampler: rng is required")
)

// Generate draws n candidate scenarios.
//
// Description:
//
//	Three independent Latin-Hypercube draws cover the shape space: one per
//	dimension, each scaled by its maximum and truncated to an integer.
//	Densities are sampled with replacement from the configured pools,
//	uninfluenced by the shape draws. Non-zero counts are derived per
//	core.Derive. No scenario is dropped here, and nothing is written out:
//	feasibility and persistence are downstream stages.
//
// Complexity:
//
//	Time O(n), Space O(n) — five n-length columns plus the output slice.
//
// Errors:
//   - ErrBadSampleCount   — n <= 0 (fails before any sampling).
//   - ErrNeedRand         — no RNG configured.
//   - catalog.ErrEmptyPool — a density pool was overridden with no values.
func Generate(n int, opts ...Option) ([]core.Scenario, error) {
	if n <= 0 {
		return nil, ErrBadSampleCount
	}
	o := gatherOptions(opts...)
	if o.rng == nil {
		return nil, ErrNeedRand
	}

	// Column-wise draws keep each dimension's stratification intact.
	rowsLeft, err := lhs.SampleScaled(n, float64(o.maxRowsLeft), o.rng)
	if err != nil {
		return nil, fmt.Errorf("rows_left: %w", err)
	}
	colsLeft, err := lhs.SampleScaled(n, float64(o.maxColsLeft), o.rng)
	if err != nil {
		return nil, fmt.Errorf("cols_left: %w", err)
	}
	colsRight, err := lhs.SampleScaled(n, float64(o.maxColsRight), o.rng)
	if err != nil {
		return nil, fmt.Errorf("cols_right: %w", err)
	}

	densityLeft, err := o.leftPool.Sample(n, o.rng)
	if err != nil {
		return nil, fmt.Errorf("density_left: %w", err)
	}
	densityRight, err := o.rightPool.Sample(n, o.rng)
	if err != nil {
		return nil, fmt.Errorf("density_right: %w", err)
	}

	out := make([]core.Scenario, n)
	for i := range out {
		// Fractional LHS draws become integer dimensions by truncation.
		out[i] = core.Derive(
			int(rowsLeft[i]),
			int(colsLeft[i]),
			int(colsRight[i]),
			densityLeft[i],
			densityRight[i],
		)
	}

	return out, nil
}
