package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dsmmcken/killport/internal/config"
	"github.com/dsmmcken/killport/internal/output"
	"github.com/spf13/cobra"
)

var Version = "dev"

var (
	jsonFlag    bool
	verboseFlag bool
	quietFlag   bool
	noColorFlag bool
	ConfigDir   string
)

func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	addConfigCommands(cmd)
	return cmd
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "killport [PORT]",
		Short: "Force-kill whatever is listening on a TCP port",
		Long: `killport finds every process that owns a TCP port and force-kills it.

The port comes from the PORT argument, the KILLPORT_PORT environment variable,
the nearest .killportrc (see "killport config pin"), the port key in
config.toml, or defaults to ` + config.DefaultPort + `, in that order.

Lookup uses lsof on macOS, Linux and BSD, and netstat on Windows. Kills use
kill -9 and taskkill /F respectively. A failed kill is not reported: the goal
is a free port, and a process that is already gone satisfies it.`,
		Version:       fmt.Sprintf("killport v%s", Version),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verboseFlag && quietFlag {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			if jsonFlag {
				quietFlag = true
			}
			output.SetFlags(jsonFlag, quietFlag, verboseFlag, noColorFlag)
			config.SetConfigDir(ConfigDir)
			return nil
		},
		Args: cobra.MaximumNArgs(1),
		RunE: runSweep,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pflags := rootCmd.PersistentFlags()
	pflags.BoolVarP(&jsonFlag, "json", "j", false, "Output as JSON")
	pflags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log lookups and kill results to stderr")
	pflags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output")
	pflags.BoolVar(&noColorFlag, "no-color", false, "Disable ANSI colors")
	pflags.StringVar(&ConfigDir, "config-dir", "", "Override config directory (default: ~/.killport)")

	rootCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Show which PIDs would be killed without killing them")

	// Environment variable bindings
	if os.Getenv("NO_COLOR") != "" {
		noColorFlag = true
	}
	if os.Getenv("KILLPORT_JSON") == "1" {
		jsonFlag = true
	}

	return rootCmd
}

// Execute runs the root command. An interrupt cancels any running child
// command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}
