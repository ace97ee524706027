package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/letitsparse/dos/core"
	"github.com/letitsparse/dos/dataset"
	"github.com/letitsparse/dos/dnn"
	"github.com/letitsparse/dos/predict"
	"github.com/letitsparse/dos/scaler"
)

// Latency targets selectable with --target.
const (
	targetSMSM = "smsm"
	targetSMDM = "smdm"
)

// newTrainCmd builds the regressor-training command for one strategy.
func newTrainCmd() *cobra.Command {
	var (
		data      string
		target    string
		modelOut  string
		scalerOut string

		cfg = dnn.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train one strategy's latency regressor on a labeled dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if modelOut == "" {
				modelOut = target + "_dnn_model.json"
			}

			rows, err := dataset.ReadLabeledFile(data)
			if err != nil {
				return err
			}

			var y []float64
			switch target {
			case targetSMSM:
				y = lo.Map(rows, func(r dataset.Labeled, _ int) float64 { return r.SMSMLatency })
			case targetSMDM:
				y = lo.Map(rows, func(r dataset.Labeled, _ int) float64 { return r.SMDMLatency })
			default:
				return fmt.Errorf("unknown target %q (want %s or %s)", target, targetSMSM, targetSMDM)
			}

			features := featureMatrix(rows)
			sc, err := scaler.Fit(features)
			if err != nil {
				return err
			}
			scaled, err := sc.Transform(features)
			if err != nil {
				return err
			}

			net, err := dnn.New(core.FeatureCount, cfg)
			if err != nil {
				return err
			}
			hist, err := net.Fit(scaled, y)
			if err != nil {
				return err
			}

			if err = net.Save(modelOut); err != nil {
				return err
			}
			if err = sc.Save(scalerOut); err != nil {
				return err
			}

			cmd.Printf("trained %s on %d rows: %d epochs (early stop: %v), best loss %.2f%% MAPE\n",
				target, len(rows), hist.Epochs, hist.StoppedEarly, hist.BestValLoss)

			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "train-set.csv", "labeled benchmark CSV")
	cmd.Flags().StringVar(&target, "target", targetSMSM, "latency column to fit: smsm or smdm")
	cmd.Flags().StringVar(&modelOut, "model-out", "", "output path for the trained network (default <target>_dnn_model.json)")
	cmd.Flags().StringVar(&scalerOut, "scaler-out", predict.ScalerFile, "output path for the fitted scaler")
	cmd.Flags().Float64Var(&cfg.LearningRate, "learning-rate", cfg.LearningRate, "Adagrad step size")
	cmd.Flags().IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "maximum training epochs")
	cmd.Flags().IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "mini-batch size")
	cmd.Flags().IntVar(&cfg.Patience, "patience", cfg.Patience, "early-stopping patience, epochs")
	cmd.Flags().Float64Var(&cfg.ValidationSplit, "validation-split", cfg.ValidationSplit, "tail fraction held out for validation")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed for init and shuffling")

	return cmd
}

// featureMatrix lays the seven feature columns of every row into one dense
// matrix, in persisted column order.
func featureMatrix(rows []dataset.Labeled) *mat.Dense {
	x := mat.NewDense(len(rows), core.FeatureCount, nil)
	for i, r := range rows {
		x.SetRow(i, r.Features())
	}

	return x
}
