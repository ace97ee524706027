package main

import (
	"github.com/spf13/cobra"

	"github.com/letitsparse/dos/core"
	"github.com/letitsparse/dos/predict"
)

// newPredictCmd builds the one-shot decision command.
func newPredictCmd() *cobra.Command {
	var (
		modelDir string

		rowsLeft     int
		colsLeft     int
		colsRight    int
		densityLeft  float64
		densityRight float64
		nnzLeft      int64
		nnzRight     int64
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Decide sm*sm vs sm*dm for one workload",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := predict.Load(modelDir)
			if err != nil {
				return err
			}

			s := core.Derive(rowsLeft, colsLeft, colsRight, densityLeft, densityRight)
			// Measured counts, when supplied, beat the derived estimates.
			if nnzLeft >= 0 {
				s.NNZLeft = nnzLeft
			}
			if nnzRight >= 0 {
				s.NNZRight = nnzRight
			}

			d, err := p.Decide(s)
			if err != nil {
				return err
			}

			cmd.Println(d.String())

			return nil
		},
	}

	cmd.Flags().StringVar(&modelDir, "model-dir", ".", "directory holding the scaler and both models")
	cmd.Flags().IntVar(&rowsLeft, "rows-left", 0, "left-matrix rows")
	cmd.Flags().IntVar(&colsLeft, "cols-left", 0, "shared inner dimension")
	cmd.Flags().IntVar(&colsRight, "cols-right", 0, "right-matrix columns")
	cmd.Flags().Float64Var(&densityLeft, "density-left", 0, "left-matrix density")
	cmd.Flags().Float64Var(&densityRight, "density-right", 0, "right-matrix density")
	cmd.Flags().Int64Var(&nnzLeft, "nnz-left", -1, "measured left non-zeros (default: derived)")
	cmd.Flags().Int64Var(&nnzRight, "nnz-right", -1, "measured right non-zeros (default: derived)")

	for _, required := range []string{"rows-left", "cols-left", "cols-right", "density-left", "density-right"} {
		_ = cmd.MarkFlagRequired(required)
	}

	return cmd
}
