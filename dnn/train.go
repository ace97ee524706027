package dnn

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// History records one training run.
type History struct {
	Epochs       int       // epochs actually run
	TrainLoss    []float64 // MAPE per epoch on the training split
	ValLoss      []float64 // MAPE per epoch on the validation split (empty when split=0)
	BestValLoss  float64   // best monitored loss seen
	StoppedEarly bool      // true when patience ran out before Epochs
}

// adagrad holds the per-parameter squared-gradient accumulators for one layer.
type adagrad struct {
	gw *mat.Dense
	gb []float64
}

// Fit trains the network on x (rows are samples, already scaled) against the
// measured latencies y, minimizing mean absolute percentage error with
// mini-batch Adagrad.
//
// The tail ValidationSplit fraction of the rows is held out and monitored
// for early stopping: training stops once the monitored loss has not
// improved for Patience consecutive epochs. With ValidationSplit == 0 the
// training loss is monitored instead.
//
// Errors:
//   - ErrNoData            — no rows, or the split leaves no training rows.
//   - ErrDimensionMismatch — x/y length or feature-width mismatch.
func (n *Network) Fit(x mat.Matrix, y []float64) (*History, error) {
	rows, cols := x.Dims()
	if rows == 0 {
		return nil, ErrNoData
	}
	if cols != n.inputs {
		return nil, fmt.Errorf("got %d features, want %d: %w", cols, n.inputs, ErrDimensionMismatch)
	}
	if len(y) != rows {
		return nil, fmt.Errorf("%d rows, %d targets: %w", rows, len(y), ErrDimensionMismatch)
	}

	// Tail split: the last fraction of rows is the validation set.
	valN := int(float64(rows) * n.cfg.ValidationSplit)
	trainN := rows - valN
	if trainN == 0 {
		return nil, fmt.Errorf("validation split leaves no training rows: %w", ErrNoData)
	}

	full := mat.DenseCopyOf(x)
	trainX := full.Slice(0, trainN, 0, cols).(*mat.Dense)
	trainY := y[:trainN]
	var (
		valX *mat.Dense
		valY []float64
	)
	if valN > 0 {
		valX = full.Slice(trainN, rows, 0, cols).(*mat.Dense)
		valY = y[trainN:rows]
	}

	acc := n.newAccumulators()
	rng := rand.New(rand.NewSource(n.cfg.Seed))
	order := make([]int, trainN)
	for i := range order {
		order[i] = i
	}

	hist := &History{BestValLoss: math.Inf(1)}
	wait := 0

	for epoch := 0; epoch < n.cfg.Epochs; epoch++ {
		rng.Shuffle(trainN, func(i, j int) { order[i], order[j] = order[j], order[i] })

		for start := 0; start < trainN; start += n.cfg.BatchSize {
			end := start + n.cfg.BatchSize
			if end > trainN {
				end = trainN
			}
			n.step(trainX, trainY, order[start:end], acc)
		}

		trainLoss := n.mape(trainX, trainY)
		hist.TrainLoss = append(hist.TrainLoss, trainLoss)
		hist.Epochs = epoch + 1

		monitored := trainLoss
		if valN > 0 {
			valLoss := n.mape(valX, valY)
			hist.ValLoss = append(hist.ValLoss, valLoss)
			monitored = valLoss
		}

		if monitored < hist.BestValLoss-n.cfg.MinDelta {
			hist.BestValLoss = monitored
			wait = 0

			continue
		}
		wait++
		if wait >= n.cfg.Patience {
			hist.StoppedEarly = true

			break
		}
	}

	return hist, nil
}

// newAccumulators allocates zeroed Adagrad state matching the layer shapes.
func (n *Network) newAccumulators() []adagrad {
	acc := make([]adagrad, len(n.layers))
	for l, lay := range n.layers {
		in, out := lay.w.Dims()
		acc[l] = adagrad{gw: mat.NewDense(in, out, nil), gb: make([]float64, out)}
	}

	return acc
}

// step runs one mini-batch: forward, MAPE gradient, backprop, Adagrad update.
func (n *Network) step(x *mat.Dense, y []float64, batch []int, acc []adagrad) {
	b := len(batch)
	_, cols := x.Dims()

	xb := mat.NewDense(b, cols, nil)
	yb := make([]float64, b)
	for i, idx := range batch {
		xb.SetRow(i, mat.Row(nil, idx, x))
		yb[i] = y[idx]
	}

	preacts, acts := n.forward(xb)

	// d(MAPE)/d(pred) for each sample; the 100x scaling of the reported
	// percentage is kept in the gradient so the loss and its slope agree.
	delta := mat.NewDense(b, 1, nil)
	for i := 0; i < b; i++ {
		pred := acts[len(acts)-1].At(i, 0)
		denom := math.Abs(yb[i])
		if denom < mapeEpsilon {
			denom = mapeEpsilon
		}
		g := 100.0 / (float64(b) * denom)
		if pred < yb[i] {
			g = -g
		}
		delta.Set(i, 0, g)
	}

	// Backpropagate layer by layer, updating as we go.
	for l := len(n.layers) - 1; l >= 0; l-- {
		lay := n.layers[l]
		in, out := lay.w.Dims()

		gradW := mat.NewDense(in, out, nil)
		gradW.Mul(acts[l].T(), delta)

		gradB := make([]float64, out)
		for j := 0; j < out; j++ {
			for i := 0; i < b; i++ {
				gradB[j] += delta.At(i, j)
			}
		}

		// Propagate before mutating this layer's weights.
		if l > 0 {
			next := mat.NewDense(b, in, nil)
			next.Mul(delta, lay.w.T())
			// Gate by the previous layer's ReLU derivative.
			prev := preacts[l-1]
			next.Apply(func(i, j int, v float64) float64 {
				if prev.At(i, j) > 0 {
					return v
				}

				return 0
			}, next)
			delta = next
		}

		n.apply(lay, acc[l], gradW, gradB)
	}
}

// apply performs the Adagrad update for one layer.
func (n *Network) apply(lay *layer, acc adagrad, gradW *mat.Dense, gradB []float64) {
	in, out := lay.w.Dims()
	lr := n.cfg.LearningRate

	for i := 0; i < in; i++ {
		for j := 0; j < out; j++ {
			g := gradW.At(i, j)
			sum := acc.gw.At(i, j) + g*g
			acc.gw.Set(i, j, sum)
			lay.w.Set(i, j, lay.w.At(i, j)-lr*g/(math.Sqrt(sum)+adaEpsilon))
		}
	}
	for j := 0; j < out; j++ {
		g := gradB[j]
		acc.gb[j] += g * g
		lay.b[j] -= lr * g / (math.Sqrt(acc.gb[j]) + adaEpsilon)
	}
}

// mape computes the mean absolute percentage error of the current weights.
func (n *Network) mape(x *mat.Dense, y []float64) float64 {
	_, acts := n.forward(x)
	pred := acts[len(acts)-1]

	var sum float64
	for i := range y {
		denom := math.Abs(y[i])
		if denom < mapeEpsilon {
			denom = mapeEpsilon
		}
		sum += math.Abs(pred.At(i, 0)-y[i]) / denom
	}

	return 100 * sum / float64(len(y))
}
