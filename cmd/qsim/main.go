package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/qsim/am"
	"github.com/teranos/qsim/cmd/qsim/commands"
	"github.com/teranos/qsim/logger"
)

var rootCmd = &cobra.Command{
	Use:   "qsim",
	Short: "qsim - Quantum circuit simulation engine",
	Long: `qsim - State vector quantum circuit simulation.

qsim builds gate circuits, evolves dense state vectors, and samples
measurement outcomes with reproducible seeding.

Available commands:
  am      - Manage qsim configuration
  run     - Build and run a demo circuit, sample counts
  info    - Show hardware probe and backend selection diagnostics
  version - Show version information

Examples:
  qsim am show              # Show current configuration
  qsim run bell --shots 1000 --seed 42
  qsim run ghz --qubits 5
  qsim info                 # Backend and hardware diagnostics`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger setup for commands that emit machine-readable output
		if cmd.Name() == "show" {
			return nil
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		// Flags raise, never lower, what the config asks for
		if cfg, err := am.Load(); err == nil {
			if cfg.Logging.Verbosity > verbosity {
				verbosity = cfg.Logging.Verbosity
			}
			jsonOutput = jsonOutput || cfg.Logging.JSON
		}

		if err := logger.InitializeWithLevel(jsonOutput, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.RunCmd)
	rootCmd.AddCommand(commands.InfoCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
