package feasibility_test

import (
	"testing"

	"github.com/letitsparse/dos/core"
	"github.com/letitsparse/dos/feasibility"
	"github.com/letitsparse/dos/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFilter_ReferenceScenarioSurvives checks the documented small workload:
// all derived values sit far below both ceilings.
func TestFilter_ReferenceScenarioSurvives(t *testing.T) {
	s := core.Derive(1000, 500, 200, 0.01, 0.05)

	require.Equal(t, int64(5000), s.NNZLeft)
	require.Equal(t, int64(5000), s.NNZRight)
	assert.True(t, feasibility.Feasible(s))
	assert.Equal(t, []core.Scenario{s}, feasibility.Filter([]core.Scenario{s}))
}

// TestFilter_DenseOperandOverflow checks the documented rejection:
// cols_left*cols_right = 2,400,000,000 exceeds the 32-bit ceiling no matter
// what the other fields hold.
func TestFilter_DenseOperandOverflow(t *testing.T) {
	s := core.Derive(10, 60000, 40000, 0.0001, 0.0001)

	assert.False(t, feasibility.Feasible(s), "2.4e9 dense entries must be rejected")
	assert.Empty(t, feasibility.Filter([]core.Scenario{s}))
}

// TestFilter_EachPredicate triggers every predicate in isolation.
func TestFilter_EachPredicate(t *testing.T) {
	cases := []struct {
		name string
		s    core.Scenario
	}{
		// nnz_left = round(100000*150000*0.9) = 1.35e10 >= 2^31-1
		{"sparse operand count", core.Derive(100000, 150000, 10, 0.9, 0.0001)},
		// cols_left*cols_right = 50000*50000 = 2.5e9 >= 2^31-1
		{"dense operand entries", core.Derive(10, 50000, 50000, 0.00001, 0.00001)},
		// rows_left*cols_right = 150000*20000 = 3e9 >= 2^31-1
		{"result entries", core.Derive(150000, 10, 20000, 0.001, 0.001)},
		// nnz_left = round(10000*10000*0.9) = 9e7 >= 7e7 but < 2^31-1
		{"left worker ceiling", core.Derive(10000, 10000, 10, 0.9, 0.0001)},
		// nnz_right = round(10000*10000*0.9) = 9e7 >= 7e7 but < 2^31-1
		{"right worker ceiling", core.Derive(10, 10000, 10000, 0.0001, 0.9)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, feasibility.Feasible(tc.s))
		})
	}
}

// TestFilter_Soundness generates a realistic candidate batch and verifies
// every survivor passes all predicates and every reject fails at least one.
func TestFilter_Soundness(t *testing.T) {
	in, err := sampler.Generate(20000, sampler.WithSeed(42))
	require.NoError(t, err)

	out := feasibility.Filter(in)
	limits := feasibility.DefaultLimits()

	survived := make(map[core.Scenario]bool, len(out))
	for _, s := range out {
		survived[s] = true
		assert.Less(t, s.NNZLeft, limits.MaxEntries)
		assert.Less(t, s.DenseEntries(), limits.MaxEntries)
		assert.Less(t, s.ResultEntries(), limits.MaxEntries)
		assert.Less(t, s.NNZLeft, limits.MaxWorkerNNZ)
		assert.Less(t, s.NNZRight, limits.MaxWorkerNNZ)
	}
	for _, s := range in {
		if survived[s] {
			continue
		}
		failed := s.NNZLeft >= limits.MaxEntries ||
			s.DenseEntries() >= limits.MaxEntries ||
			s.ResultEntries() >= limits.MaxEntries ||
			s.NNZLeft >= limits.MaxWorkerNNZ ||
			s.NNZRight >= limits.MaxWorkerNNZ
		assert.True(t, failed, "rejected scenario must fail a predicate: %+v", s)
	}
}

// TestFilter_Idempotent verifies Filter(Filter(x)) == Filter(x).
func TestFilter_Idempotent(t *testing.T) {
	in, err := sampler.Generate(10000, sampler.WithSeed(7))
	require.NoError(t, err)

	once := feasibility.Filter(in)
	twice := feasibility.Filter(once)

	assert.Equal(t, once, twice)
}

// TestFilter_PreservesOrderAndInput verifies relative order of survivors and
// that the input slice is untouched.
func TestFilter_PreservesOrderAndInput(t *testing.T) {
	small := core.Derive(1000, 500, 200, 0.01, 0.05)
	big := core.Derive(10, 60000, 40000, 0.0001, 0.0001)
	mid := core.Derive(2000, 300, 100, 0.02, 0.1)

	in := []core.Scenario{small, big, mid}
	snapshot := append([]core.Scenario(nil), in...)

	out := feasibility.Filter(in)

	assert.Equal(t, []core.Scenario{small, mid}, out, "survivors keep input order")
	assert.Equal(t, snapshot, in, "input must not be mutated")
}

// TestFilter_EmptyResultIsValid checks that total rejection yields an empty,
// non-nil slice rather than a failure.
func TestFilter_EmptyResultIsValid(t *testing.T) {
	in := []core.Scenario{
		core.Derive(10, 60000, 40000, 0.0001, 0.0001),
		core.Derive(150000, 10, 20000, 0.001, 0.001),
	}

	out := feasibility.Filter(in)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// TestFilter_OverridableLimits verifies the ceilings are configuration, not
// hard-coded constants.
func TestFilter_OverridableLimits(t *testing.T) {
	s := core.Derive(1000, 500, 200, 0.01, 0.05) // nnz 5000 / 5000

	assert.True(t, feasibility.Feasible(s))
	assert.False(t, feasibility.Feasible(s, feasibility.WithMaxWorkerNNZ(5000)),
		"nnz == ceiling must be rejected (exclusive bound)")
	assert.False(t, feasibility.Feasible(s, feasibility.WithMaxEntries(100000)),
		"dense entries 100000 >= 100000 must be rejected")
	assert.True(t, feasibility.Feasible(s, feasibility.WithMaxEntries(200001)),
		"result entries 200000 are the largest count in this scenario")
}

// TestFilter_OptionPanics verifies programmer-error panics in constructors.
func TestFilter_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { feasibility.WithMaxEntries(0) })
	assert.Panics(t, func() { feasibility.WithMaxWorkerNNZ(-1) })
}
