package core

import "math"

// FeatureCount is the width of the persisted feature vector:
// rows_left, cols_left, cols_right, density_left, density_right,
// nnz_left, nnz_right. Column order is fixed for downstream compatibility.
const FeatureCount = 7

// Scenario is one candidate SPMM workload: the left (sparse) matrix is
// RowsLeft×ColsLeft with density DensityLeft, the right matrix is
// ColsLeft×ColsRight with density DensityRight. NNZLeft and NNZRight are
// derived from the dimensions and densities, never chosen independently.
//
// A Scenario is a plain value type; all pipeline stages treat it as
// immutable once derived.
type Scenario struct {
	RowsLeft  int // rows of the left matrix
	ColsLeft  int // shared inner dimension
	ColsRight int // columns of the right matrix

	DensityLeft  float64 // non-zero fraction of the left matrix, in (0,1]
	DensityRight float64 // non-zero fraction of the right matrix, in (0,1]

	NNZLeft  int64 // round(RowsLeft * ColsLeft * DensityLeft)
	NNZRight int64 // round(ColsLeft * ColsRight * DensityRight)
}

// Derive builds a Scenario from integer dimensions and densities, computing
// both non-zero counts. Dimensions are taken as already-truncated integers;
// the counts are rounded to the nearest integer, so
// NNZLeft <= RowsLeft*ColsLeft and NNZRight <= ColsLeft*ColsRight hold for
// any density in (0,1].
func Derive(rowsLeft, colsLeft, colsRight int, densityLeft, densityRight float64) Scenario {
	return Scenario{
		RowsLeft:     rowsLeft,
		ColsLeft:     colsLeft,
		ColsRight:    colsRight,
		DensityLeft:  densityLeft,
		DensityRight: densityRight,
		NNZLeft:      roundCount(float64(rowsLeft)*float64(colsLeft)*densityLeft),
		NNZRight:     roundCount(float64(colsLeft)*float64(colsRight)*densityRight),
	}
}

// DenseEntries returns the element count of the dense right-hand operand,
// ColsLeft*ColsRight, widened to int64 so the product itself cannot wrap.
func (s Scenario) DenseEntries() int64 {
	return int64(s.ColsLeft) * int64(s.ColsRight)
}

// ResultEntries returns the element count of the multiplication result,
// RowsLeft*ColsRight, widened to int64.
func (s Scenario) ResultEntries() int64 {
	return int64(s.RowsLeft) * int64(s.ColsRight)
}

// Features returns the seven model-input values in persisted column order.
func (s Scenario) Features() []float64 {
	return []float64{
		float64(s.RowsLeft),
		float64(s.ColsLeft),
		float64(s.ColsRight),
		s.DensityLeft,
		s.DensityRight,
		float64(s.NNZLeft),
		float64(s.NNZRight),
	}
}

// roundCount rounds a derived non-zero count to the nearest integer.
func roundCount(v float64) int64 {
	return int64(math.Round(v))
}
