// Package main is the entry point for the data-project generator.
package main

import (
	"os"

	"github.com/scaffoldkit/cli/internal/cmd"
	"github.com/scaffoldkit/cli/internal/output"
)

func main() {
	rootCmd := cmd.NewDataProjectCmd()

	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
