package core_test

import (
	"testing"

	"github.com/letitsparse/dos/core"
	"github.com/stretchr/testify/assert"
)

// TestDerive_Reference checks the documented reference workload:
// 1000×500 at 1% by 500×200 at 5% yields 5000 non-zeros on both sides.
func TestDerive_Reference(t *testing.T) {
	s := core.Derive(1000, 500, 200, 0.01, 0.05)

	assert.Equal(t, int64(5000), s.NNZLeft, "nnz_left = round(1000*500*0.01)")
	assert.Equal(t, int64(5000), s.NNZRight, "nnz_right = round(500*200*0.05)")
}

// TestDerive_Rounding verifies nearest-integer rounding of fractional counts.
func TestDerive_Rounding(t *testing.T) {
	// 3*3*0.5 = 4.5 → 5 (round half away from zero, math.Round semantics)
	s := core.Derive(3, 3, 3, 0.5, 0.1)
	assert.Equal(t, int64(5), s.NNZLeft)
	// 3*3*0.1 = 0.9 → 1
	assert.Equal(t, int64(1), s.NNZRight)
}

// TestDerive_BoundedByDimensions checks that counts never exceed the full
// matrix size for densities up to 1.
func TestDerive_BoundedByDimensions(t *testing.T) {
	s := core.Derive(123, 77, 19, 1.0, 1.0)

	assert.LessOrEqual(t, s.NNZLeft, int64(123)*int64(77))
	assert.LessOrEqual(t, s.NNZRight, int64(77)*int64(19))
}

// TestEntries_WidenBeyondInt32 ensures the derived element counts are
// computed in 64-bit space and do not wrap for large dimensions.
func TestEntries_WidenBeyondInt32(t *testing.T) {
	s := core.Derive(150000, 60000, 40000, 0.001, 0.001)

	assert.Equal(t, int64(60000)*int64(40000), s.DenseEntries(), "2.4e9 must not wrap")
	assert.Equal(t, int64(150000)*int64(40000), s.ResultEntries(), "6e9 must not wrap")
}

// TestFeatures_OrderAndWidth pins the persisted feature column order.
func TestFeatures_OrderAndWidth(t *testing.T) {
	s := core.Derive(10, 20, 30, 0.25, 0.5)
	f := s.Features()

	assert.Len(t, f, core.FeatureCount)
	assert.Equal(t, []float64{10, 20, 30, 0.25, 0.5, 50, 300}, f)
}
