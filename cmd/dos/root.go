package main

import "github.com/spf13/cobra"

// newRootCmd assembles the dos command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dos",
		Short: "Pick the faster SPMM execution strategy: sm*sm or sm*dm",
		Long: `dos predicts which execution strategy finishes a sparse-matrix-by-matrix
multiplication faster, given only shape and density statistics.

The pipeline: generate candidate workloads with Latin Hypercube Sampling,
filter them against engine feasibility limits, benchmark the survivors
offline (outside this tool), train one latency regressor per strategy, and
serve decisions.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newGenerateCmd(),
		newSplitCmd(),
		newTrainCmd(),
		newPredictCmd(),
		newServeCmd(),
	)

	return root
}
