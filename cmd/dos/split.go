package main

import (
	"github.com/spf13/cobra"

	"github.com/letitsparse/dos/dataset"
)

// newSplitCmd builds the test-set extraction command: the DOE tool's report
// arrives on stdin, the complement of its training rows goes to --out.
func newSplitCmd() *cobra.Command {
	var (
		data string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Produce the test set from a DOE training-row report on stdin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := dataset.ReadLabeledFile(data)
			if err != nil {
				return err
			}

			train, err := dataset.ParseTrainIndices(cmd.InOrStdin())
			if err != nil {
				return err
			}

			test, err := dataset.Complement(rows, train)
			if err != nil {
				return err
			}

			if err = dataset.WriteLabeledFile(out, test); err != nil {
				return err
			}

			cmd.Printf("dataset %d rows, train %d, test %d, wrote %s\n",
				len(rows), len(train), len(test), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "spmm-data.csv", "labeled benchmark CSV")
	cmd.Flags().StringVar(&out, "out", "test-set.csv", "output CSV path for the test set")

	return cmd
}
