package scaler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNoData indicates an empty feature matrix.
	ErrNoData = errors.New("scaler: empty feature matrix")

	// ErrDimensionMismatch indicates a column-count mismatch between the
	// fitted scaler and the matrix being transformed.
	ErrDimensionMismatch = errors.New("scaler: column count mismatch")

	// ErrBadModel indicates a corrupt or inconsistent persisted scaler.
	ErrBadModel = errors.New("scaler: invalid persisted scaler")
)

// MinMax holds per-column bounds learned from a training feature matrix.
type MinMax struct {
	Min []float64 `json:"min"`
	Max []float64 `json:"max"`
}

// Fit learns per-column minima and maxima from x.
//
// Errors:
//   - ErrNoData — x has zero rows or zero columns.
func Fit(x mat.Matrix) (*MinMax, error) {
	r, c := x.Dims()
	if r == 0 || c == 0 {
		return nil, ErrNoData
	}

	m := &MinMax{Min: make([]float64, c), Max: make([]float64, c)}
	for j := 0; j < c; j++ {
		lo, hi := x.At(0, j), x.At(0, j)
		for i := 1; i < r; i++ {
			v := x.At(i, j)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		m.Min[j], m.Max[j] = lo, hi
	}

	return m, nil
}

// Transform maps x column-wise into [0,1] using the fitted bounds. Values
// outside the training range extrapolate outside [0,1] rather than clamp.
//
// Errors:
//   - ErrNoData            — x has zero rows.
//   - ErrDimensionMismatch — x's column count differs from the fitted one.
func (m *MinMax) Transform(x mat.Matrix) (*mat.Dense, error) {
	r, c, err := m.checkDims(x)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		scale := m.spread(j)
		for i := 0; i < r; i++ {
			out.Set(i, j, (x.At(i, j)-m.Min[j])/scale)
		}
	}

	return out, nil
}

// Inverse maps scaled values back to the original feature space. It is the
// exact inverse of Transform up to floating-point rounding.
func (m *MinMax) Inverse(x mat.Matrix) (*mat.Dense, error) {
	r, c, err := m.checkDims(x)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		scale := m.spread(j)
		for i := 0; i < r; i++ {
			out.Set(i, j, x.At(i, j)*scale+m.Min[j])
		}
	}

	return out, nil
}

// TransformRow scales a single feature vector.
func (m *MinMax) TransformRow(features []float64) ([]float64, error) {
	if len(features) != len(m.Min) {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, len(features))
	for j, v := range features {
		out[j] = (v - m.Min[j]) / m.spread(j)
	}

	return out, nil
}

// Save persists the fitted bounds as JSON at path.
func (m *MinMax) Save(path string) error {
	buf, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("scaler: %w", err)
	}

	return os.WriteFile(path, buf, 0o644)
}

// Load reads a persisted scaler and validates its consistency.
//
// Errors:
//   - ErrBadModel — unparseable JSON, empty bounds, or length mismatch.
func Load(path string) (*MinMax, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scaler: %w", err)
	}

	var m MinMax
	if err = json.Unmarshal(buf, &m); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadModel)
	}
	if len(m.Min) == 0 || len(m.Min) != len(m.Max) {
		return nil, fmt.Errorf("bounds %d/%d: %w", len(m.Min), len(m.Max), ErrBadModel)
	}

	return &m, nil
}

// spread returns the scaling denominator for column j; zero-range columns
// scale by 1 so constant features survive the round trip.
func (m *MinMax) spread(j int) float64 {
	if d := m.Max[j] - m.Min[j]; d != 0 {
		return d
	}

	return 1
}

// checkDims validates x against the fitted column count.
func (m *MinMax) checkDims(x mat.Matrix) (r, c int, err error) {
	r, c = x.Dims()
	if r == 0 {
		return 0, 0, ErrNoData
	}
	if c != len(m.Min) {
		return 0, 0, fmt.Errorf("got %d columns, fitted %d: %w", c, len(m.Min), ErrDimensionMismatch)
	}

	return r, c, nil
}
