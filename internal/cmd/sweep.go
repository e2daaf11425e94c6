package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dsmmcken/killport/internal/config"
	"github.com/dsmmcken/killport/internal/logging"
	"github.com/dsmmcken/killport/internal/output"
	"github.com/dsmmcken/killport/internal/reaper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dryRunFlag bool

// newReaper is swapped out in tests so no real processes are spawned.
var newReaper = reaper.New

func runSweep(cmd *cobra.Command, args []string) error {
	setting, err := config.ResolvePort(args, os.Getenv("KILLPORT_PORT"))
	if err != nil {
		return err
	}
	port, err := config.ParsePort(setting.Value, setting.Source)
	if err != nil {
		return err
	}
	match, err := config.ResolveMatch()
	if err != nil {
		return err
	}

	log := logging.New(cmd.ErrOrStderr(), output.IsVerbose())
	log.WithFields(logrus.Fields{"port": port, "source": setting.Source}).Debug("resolved port")

	r := newReaper(log)
	r.Match = reaper.MatchMode(match)
	r.DryRun = dryRunFlag

	rep, err := r.Reap(cmd.Context(), port)
	if err != nil {
		return err
	}
	return printReport(cmd.OutOrStdout(), rep)
}

func printReport(w io.Writer, rep reaper.Report) error {
	if output.IsJSON() {
		return output.PrintJSON(w, rep)
	}
	if output.IsQuiet() {
		return nil
	}

	if len(rep.PIDs) == 0 {
		fmt.Fprintf(w, "Port %d is already free.\n", rep.Port)
		return nil
	}
	for _, pid := range rep.PIDs {
		if rep.DryRun {
			fmt.Fprintf(w, "%s PID %s on port %d\n", output.Warn("Would kill"), output.PID(string(pid)), rep.Port)
			continue
		}
		fmt.Fprintf(w, "%s PID %s on port %d\n", output.Success("Killed"), output.PID(string(pid)), rep.Port)
	}
	return nil
}
