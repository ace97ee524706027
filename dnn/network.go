package dnn

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadConfig indicates an invalid hyperparameter combination.
	ErrBadConfig = errors.New("dnn: invalid config")

	// ErrDimensionMismatch indicates a feature width different from the
	// network's input width.
	ErrDimensionMismatch = errors.New("dnn: feature width mismatch")

	// ErrNoData indicates an empty training or prediction batch.
	ErrNoData = errors.New("dnn: empty data")

	// ErrBadModel indicates a corrupt or inconsistent persisted network.
	ErrBadModel = errors.New("dnn: invalid persisted network")
)

// Reference hyperparameters of the latency regressor.
const (
	// DefaultLearningRate is the Adagrad step size.
	DefaultLearningRate = 0.07

	// DefaultInitStd is the standard deviation of the Gaussian weight init.
	DefaultInitStd = 0.05

	// DefaultEpochs bounds the training passes over the data.
	DefaultEpochs = 1000

	// DefaultBatchSize is the mini-batch size.
	DefaultBatchSize = 32

	// DefaultPatience is the early-stopping patience in epochs.
	DefaultPatience = 100

	// DefaultValidationSplit is the tail fraction held out for validation.
	DefaultValidationSplit = 0.1

	// adaEpsilon keeps the Adagrad denominator away from zero.
	adaEpsilon = 1e-8

	// mapeEpsilon guards the percentage-error denominator for tiny targets.
	mapeEpsilon = 1e-12
)

// defaultHidden is the reference hidden-layer layout.
var defaultHidden = []int{1024, 128, 64, 32, 16}

// Config holds the training hyperparameters.
type Config struct {
	Hidden          []int   // hidden layer widths, input to output
	LearningRate    float64 // Adagrad step size
	InitStd         float64 // Gaussian weight-init standard deviation
	Epochs          int     // maximum training epochs
	BatchSize       int     // mini-batch size
	Patience        int     // early-stopping patience, in epochs
	MinDelta        float64 // minimum loss improvement that resets patience
	ValidationSplit float64 // tail fraction held out for validation, [0,1)
	Seed            int64   // RNG seed for init and shuffling
}

// DefaultConfig returns the reference hyperparameters.
func DefaultConfig() Config {
	return Config{
		Hidden:          append([]int(nil), defaultHidden...),
		LearningRate:    DefaultLearningRate,
		InitStd:         DefaultInitStd,
		Epochs:          DefaultEpochs,
		BatchSize:       DefaultBatchSize,
		Patience:        DefaultPatience,
		ValidationSplit: DefaultValidationSplit,
		Seed:            1,
	}
}

// validate reports the first nonsensical hyperparameter.
func (c Config) validate() error {
	switch {
	case len(c.Hidden) == 0:
		return fmt.Errorf("no hidden layers: %w", ErrBadConfig)
	case c.LearningRate <= 0:
		return fmt.Errorf("learning rate %v: %w", c.LearningRate, ErrBadConfig)
	case c.InitStd <= 0:
		return fmt.Errorf("init std %v: %w", c.InitStd, ErrBadConfig)
	case c.Epochs <= 0:
		return fmt.Errorf("epochs %d: %w", c.Epochs, ErrBadConfig)
	case c.BatchSize <= 0:
		return fmt.Errorf("batch size %d: %w", c.BatchSize, ErrBadConfig)
	case c.Patience <= 0:
		return fmt.Errorf("patience %d: %w", c.Patience, ErrBadConfig)
	case c.MinDelta < 0:
		return fmt.Errorf("min delta %v: %w", c.MinDelta, ErrBadConfig)
	case c.ValidationSplit < 0 || c.ValidationSplit >= 1:
		return fmt.Errorf("validation split %v: %w", c.ValidationSplit, ErrBadConfig)
	}
	for _, h := range c.Hidden {
		if h <= 0 {
			return fmt.Errorf("hidden width %d: %w", h, ErrBadConfig)
		}
	}

	return nil
}

// layer is one dense layer: out = act(in*W + b), weights stored in×out.
type layer struct {
	w    *mat.Dense
	b    []float64
	relu bool // ReLU for hidden layers, identity for the output layer
}

// Network is a trained (or trainable) feed-forward regressor with a single
// scalar output.
type Network struct {
	inputs int
	cfg    Config
	layers []*layer
}

// New builds an untrained network with Gaussian-initialized weights and zero
// biases for inputs features.
//
// Errors:
//   - ErrBadConfig — inputs <= 0 or an invalid hyperparameter.
func New(inputs int, cfg Config) (*Network, error) {
	if inputs <= 0 {
		return nil, fmt.Errorf("inputs %d: %w", inputs, ErrBadConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	widths := append(append([]int{inputs}, cfg.Hidden...), 1)

	n := &Network{inputs: inputs, cfg: cfg, layers: make([]*layer, len(widths)-1)}
	for l := range n.layers {
		in, out := widths[l], widths[l+1]
		w := mat.NewDense(in, out, nil)
		for i := 0; i < in; i++ {
			for j := 0; j < out; j++ {
				w.Set(i, j, rng.NormFloat64()*cfg.InitStd)
			}
		}
		n.layers[l] = &layer{
			w:    w,
			b:    make([]float64, out),
			relu: l < len(n.layers)-1,
		}
	}

	return n, nil
}

// Inputs returns the expected feature width.
func (n *Network) Inputs() int { return n.inputs }

// forward runs the batch x (rows are samples) through every layer,
// returning all pre-activation matrices and activations. activations[0] is
// x itself; the final activation is the (batch×1) prediction.
func (n *Network) forward(x *mat.Dense) (preacts, activations []*mat.Dense) {
	activations = make([]*mat.Dense, len(n.layers)+1)
	preacts = make([]*mat.Dense, len(n.layers))
	activations[0] = x

	for l, lay := range n.layers {
		rows, _ := activations[l].Dims()
		_, out := lay.w.Dims()

		z := mat.NewDense(rows, out, nil)
		z.Mul(activations[l], lay.w)
		for i := 0; i < rows; i++ {
			for j := 0; j < out; j++ {
				z.Set(i, j, z.At(i, j)+lay.b[j])
			}
		}
		preacts[l] = z

		if !lay.relu {
			activations[l+1] = z

			continue
		}
		a := mat.NewDense(rows, out, nil)
		a.Apply(func(_, _ int, v float64) float64 {
			if v > 0 {
				return v
			}

			return 0
		}, z)
		activations[l+1] = a
	}

	return preacts, activations
}

// Predict runs a feature batch through the network and returns one latency
// estimate per row.
//
// Errors:
//   - ErrNoData            — empty batch.
//   - ErrDimensionMismatch — wrong feature width.
func (n *Network) Predict(x mat.Matrix) (*mat.VecDense, error) {
	r, c := x.Dims()
	if r == 0 {
		return nil, ErrNoData
	}
	if c != n.inputs {
		return nil, fmt.Errorf("got %d features, want %d: %w", c, n.inputs, ErrDimensionMismatch)
	}

	batch := mat.DenseCopyOf(x)
	_, acts := n.forward(batch)

	out := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		out.SetVec(i, acts[len(acts)-1].At(i, 0))
	}

	return out, nil
}

// PredictOne runs a single scaled feature vector through the network.
func (n *Network) PredictOne(features []float64) (float64, error) {
	if len(features) != n.inputs {
		return 0, fmt.Errorf("got %d features, want %d: %w", len(features), n.inputs, ErrDimensionMismatch)
	}

	v, err := n.Predict(mat.NewDense(1, len(features), append([]float64(nil), features...)))
	if err != nil {
		return 0, err
	}

	return v.AtVec(0), nil
}
