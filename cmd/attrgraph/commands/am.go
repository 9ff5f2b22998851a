package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/attrgraph/am"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage attrgraph configuration",
	Long: `am - Manage attrgraph configuration ("I am")

Configuration sources (in order of precedence):
1. Environment variables (ATTRGRAPH_* prefix)
2. Project config (./am.toml, searched upwards)
3. User config (~/.attrgraph/am.toml)
4. Default values

Examples:
  attrgraph am show                 # Show current configuration
  attrgraph am show --format json   # Show configuration in JSON format
  attrgraph am where                # List config files that were considered`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runAmShow,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runAmWhere,
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return writeEncoded(cmd.OutOrStdout(), cfg, configFormat)
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration files (later overrides earlier):")
	for _, path := range am.ConfigPaths() {
		status := "missing"
		if _, err := os.Stat(path); err == nil {
			status = "loaded"
		}
		fmt.Fprintf(out, "  [%s] %s\n", status, path)
	}
	fmt.Fprintf(out, "Environment overrides: %s_*\n", am.EnvPrefix)
	return nil
}
