package dnn

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// layerJSON is the persisted form of one dense layer, weights row-major.
type layerJSON struct {
	Inputs  int       `json:"inputs"`
	Outputs int       `json:"outputs"`
	ReLU    bool      `json:"relu"`
	W       []float64 `json:"w"`
	B       []float64 `json:"b"`
}

// networkJSON is the persisted form of a network. The training config is
// kept so a loaded model can be fine-tuned with the same hyperparameters.
type networkJSON struct {
	Inputs int         `json:"inputs"`
	Config Config      `json:"config"`
	Layers []layerJSON `json:"layers"`
}

// Save persists the network weights and config as JSON at path.
func (n *Network) Save(path string) error {
	enc := networkJSON{Inputs: n.inputs, Config: n.cfg, Layers: make([]layerJSON, len(n.layers))}
	for l, lay := range n.layers {
		in, out := lay.w.Dims()
		w := make([]float64, 0, in*out)
		for i := 0; i < in; i++ {
			w = append(w, mat.Row(nil, i, lay.w)...)
		}
		enc.Layers[l] = layerJSON{
			Inputs:  in,
			Outputs: out,
			ReLU:    lay.relu,
			W:       w,
			B:       append([]float64(nil), lay.b...),
		}
	}

	buf, err := json.Marshal(enc)
	if err != nil {
		return fmt.Errorf("dnn: %w", err)
	}

	return os.WriteFile(path, buf, 0o644)
}

// Load restores a persisted network.
//
// Errors:
//   - ErrBadModel — unparseable JSON or inconsistent layer shapes.
func Load(path string) (*Network, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dnn: %w", err)
	}

	var dec networkJSON
	if err = json.Unmarshal(buf, &dec); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadModel)
	}
	if dec.Inputs <= 0 || len(dec.Layers) == 0 {
		return nil, fmt.Errorf("empty network: %w", ErrBadModel)
	}

	n := &Network{inputs: dec.Inputs, cfg: dec.Config, layers: make([]*layer, len(dec.Layers))}
	prevOut := dec.Inputs
	for l, lj := range dec.Layers {
		if lj.Inputs != prevOut {
			return nil, fmt.Errorf("layer %d: %d inputs after %d outputs: %w",
				l, lj.Inputs, prevOut, ErrBadModel)
		}
		if lj.Outputs <= 0 || len(lj.W) != lj.Inputs*lj.Outputs || len(lj.B) != lj.Outputs {
			return nil, fmt.Errorf("layer %d: inconsistent shape: %w", l, ErrBadModel)
		}
		n.layers[l] = &layer{
			w:    mat.NewDense(lj.Inputs, lj.Outputs, append([]float64(nil), lj.W...)),
			b:    append([]float64(nil), lj.B...),
			relu: lj.ReLU,
		}
		prevOut = lj.Outputs
	}
	if prevOut != 1 {
		return nil, fmt.Errorf("final layer has %d outputs, want 1: %w", prevOut, ErrBadModel)
	}

	return n, nil
}
