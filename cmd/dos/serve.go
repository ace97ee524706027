package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/letitsparse/dos/predict"
)

// newServeCmd builds the HTTP decision service command.
func newServeCmd() *cobra.Command {
	var (
		modelDir string
		addr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sm*sm vs sm*dm decisions over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := predict.Load(modelDir)
			if err != nil {
				return err
			}

			cmd.Printf("serving decisions on %s\n", addr)

			return http.ListenAndServe(addr, predict.Handler(p))
		},
	}

	cmd.Flags().StringVar(&modelDir, "model-dir", ".", "directory holding the scaler and both models")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
