// Command dos drives the SPMM execution-strategy pipeline: candidate
// generation, train/test splitting, regressor training, and sm×sm vs sm×dm
// decisions (one-shot or as an HTTP service).
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
