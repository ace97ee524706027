package main

import (
	"github.com/spf13/cobra"

	"github.com/letitsparse/dos/dataset"
	"github.com/letitsparse/dos/feasibility"
	"github.com/letitsparse/dos/sampler"
)

// referenceSampleCount is the candidate budget of the reference experiment
// design.
const referenceSampleCount = 2_500_000

// newGenerateCmd builds the candidate-generation command: sample, filter,
// persist, in one pass.
func newGenerateCmd() *cobra.Command {
	var (
		samples int
		seed    int64
		out     string

		maxRowsLeft  int
		maxColsLeft  int
		maxColsRight int

		maxEntries   int64
		maxWorkerNNZ int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and filter candidate SPMM workloads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			candidates, err := sampler.Generate(samples,
				sampler.WithSeed(seed),
				sampler.WithMaxRowsLeft(maxRowsLeft),
				sampler.WithMaxColsLeft(maxColsLeft),
				sampler.WithMaxColsRight(maxColsRight),
			)
			if err != nil {
				return err
			}

			kept := feasibility.Filter(candidates,
				feasibility.WithMaxEntries(maxEntries),
				feasibility.WithMaxWorkerNNZ(maxWorkerNNZ),
			)

			if err = dataset.WriteFile(out, kept); err != nil {
				return err
			}

			cmd.Printf("generated %d candidates, kept %d feasible, wrote %s\n",
				len(candidates), len(kept), out)

			return nil
		},
	}

	cmd.Flags().IntVar(&samples, "samples", referenceSampleCount, "candidate scenarios to draw")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed for a reproducible candidate set")
	cmd.Flags().StringVar(&out, "out", "raw-lhs-data.csv", "output CSV path")
	cmd.Flags().IntVar(&maxRowsLeft, "max-rows-left", sampler.DefaultMaxRowsLeft, "left-matrix row bound")
	cmd.Flags().IntVar(&maxColsLeft, "max-cols-left", sampler.DefaultMaxColsLeft, "inner-dimension bound")
	cmd.Flags().IntVar(&maxColsRight, "max-cols-right", sampler.DefaultMaxColsRight, "right-matrix column bound")
	cmd.Flags().Int64Var(&maxEntries, "max-entries", feasibility.DefaultMaxEntries, "engine count ceiling (exclusive)")
	cmd.Flags().Int64Var(&maxWorkerNNZ, "max-worker-nnz", feasibility.DefaultMaxWorkerNNZ, "worker memory ceiling on non-zeros (exclusive)")

	return cmd
}
