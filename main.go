package main

import (
	"os"

	"github.com/dsmmcken/killport/internal/cmd"
	"github.com/dsmmcken/killport/internal/output"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cmd.Execute(); err != nil {
		cmd.ReportError(os.Stderr, err)
		return cmd.ExitCode(err)
	}
	return output.ExitSuccess
}
