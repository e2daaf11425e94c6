package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dsmmcken/killport/internal/config"
	"github.com/dsmmcken/killport/internal/output"
	"github.com/dsmmcken/killport/internal/reaper"
)

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	var cfgErr *config.ConfigError
	switch {
	case err == nil:
		return output.ExitSuccess
	case errors.Is(err, context.Canceled):
		return output.ExitInterrupted
	case errors.As(err, &cfgErr):
		return output.ExitConfig
	default:
		return output.ExitError
	}
}

// ReportError writes err to w, as a JSON envelope in --json mode.
func ReportError(w io.Writer, err error) {
	if output.IsJSON() {
		output.PrintError(w, errorCode(err), err.Error())
		return
	}
	fmt.Fprintf(w, "%s %v\n", output.Error("Error:"), err)
}

func errorCode(err error) string {
	var cfgErr *config.ConfigError
	var lookupErr *reaper.LookupError
	switch {
	case errors.Is(err, context.Canceled):
		return "interrupted"
	case errors.As(err, &cfgErr):
		if cfgErr.Key == "port" {
			return "invalid_port"
		}
		return "invalid_config"
	case errors.As(err, &lookupErr):
		return "lookup_failed"
	default:
		return "error"
	}
}
