package predict

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/letitsparse/dos/core"
	"github.com/letitsparse/dos/dnn"
	"github.com/letitsparse/dos/scaler"
)

// Strategy names as printed in decisions and reports.
const (
	MethodSparse = "sm*sm" // keep the right operand sparse
	MethodDense  = "sm*dm" // materialize the right operand dense
)

// Artifact file names inside a model directory.
const (
	ScalerFile    = "minmax_scaler.json"
	SMSMModelFile = "smsm_dnn_model.json"
	SMDMModelFile = "smdm_dnn_model.json"
)

// ErrNilComponent indicates a Predictor built without all three artifacts.
var ErrNilComponent = errors.New("predict: scaler and both models are required")

// Decision is the outcome of comparing both strategies for one workload.
type Decision struct {
	SMSM   float64 // predicted sm×sm total latency, ms
	SMDM   float64 // predicted sm×dm total latency, ms
	Method string  // MethodSparse or MethodDense
}

// String renders the decision in the report format consumed by operators.
func (d Decision) String() string {
	return fmt.Sprintf("sm*sm latency : %dms , sm*dm latency : %dms , optim_method : %s",
		int64(d.SMSM), int64(d.SMDM), d.Method)
}

// Predictor compares the two strategy regressors over scaled features.
type Predictor struct {
	scaler *scaler.MinMax
	smsm   *dnn.Network
	smdm   *dnn.Network
}

// New bundles a fitted scaler with the two trained networks.
func New(sc *scaler.MinMax, smsm, smdm *dnn.Network) (*Predictor, error) {
	if sc == nil || smsm == nil || smdm == nil {
		return nil, ErrNilComponent
	}

	return &Predictor{scaler: sc, smsm: smsm, smdm: smdm}, nil
}

// Load restores a Predictor from the three artifact files in dir.
func Load(dir string) (*Predictor, error) {
	sc, err := scaler.Load(filepath.Join(dir, ScalerFile))
	if err != nil {
		return nil, err
	}
	smsm, err := dnn.Load(filepath.Join(dir, SMSMModelFile))
	if err != nil {
		return nil, err
	}
	smdm, err := dnn.Load(filepath.Join(dir, SMDMModelFile))
	if err != nil {
		return nil, err
	}

	return New(sc, smsm, smdm)
}

// Decide estimates both strategies for s and picks the faster one.
// Ties go to sm×dm.
func (p *Predictor) Decide(s core.Scenario) (Decision, error) {
	scaled, err := p.scaler.TransformRow(s.Features())
	if err != nil {
		return Decision{}, err
	}

	smsm, err := p.smsm.PredictOne(scaled)
	if err != nil {
		return Decision{}, fmt.Errorf("sm*sm model: %w", err)
	}
	smdm, err := p.smdm.PredictOne(scaled)
	if err != nil {
		return Decision{}, fmt.Errorf("sm*dm model: %w", err)
	}

	d := Decision{SMSM: smsm, SMDM: smdm, Method: MethodSparse}
	if smdm <= smsm {
		d.Method = MethodDense
	}

	return d, nil
}
