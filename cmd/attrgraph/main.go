package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/attrgraph/am"
	"github.com/teranos/attrgraph/cmd/attrgraph/commands"
	"github.com/teranos/attrgraph/logger"
)

var rootCmd = &cobra.Command{
	Use:   "attrgraph",
	Short: "attrgraph - typed attributes for graph entities",
	Long: `attrgraph - typed attributes for graph entities.

Available commands:
  am     - Show attrgraph configuration ("I am")
  kinds  - Audit registered attribute kinds

Examples:
  attrgraph kinds list
  attrgraph am show`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		// Console logger first so config warnings are visible
		if err := logger.Initialize(false, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err := am.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if verbosity == 0 {
			verbosity = cfg.Log.Verbosity
		}
		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v, -vv)")

	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.KindsCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
