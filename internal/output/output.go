// Package output holds killport's exit codes and the process-wide output
// mode chosen by the persistent flags.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Process exit statuses. ExitConfig means nothing was spawned.
const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitConfig      = 2
	ExitInterrupted = 130
)

var (
	flagJSON    bool
	flagQuiet   bool
	flagVerbose bool
	flagNoColor bool
)

// SetFlags records the output mode for the rest of the run.
func SetFlags(jsonMode, quiet, verbose, noColor bool) {
	flagJSON = jsonMode
	flagQuiet = quiet
	flagVerbose = verbose
	flagNoColor = noColor
}

// IsJSON reports whether reports and errors are written as JSON.
func IsJSON() bool { return flagJSON }

// IsQuiet reports whether human-readable reports are suppressed.
func IsQuiet() bool { return flagQuiet }

// IsVerbose reports whether debug logging goes to stderr.
func IsVerbose() bool { return flagVerbose }

// IsNoColor reports whether styling is disabled.
func IsNoColor() bool { return flagNoColor }

// PrintJSON writes v to w as indented JSON followed by a newline.
func PrintJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// PrintError writes {"error": code, "message": message} to w.
func PrintError(w io.Writer, code string, message string) error {
	return PrintJSON(w, map[string]string{
		"error":   code,
		"message": message,
	})
}
