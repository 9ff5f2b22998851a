package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/attrgraph/attr"
)

// KindsCmd audits the attribute kinds registered in this binary
var KindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Audit registered attribute kinds",
	Long: `Audit the attribute kinds registered in this binary.

Each kind is identified by a (name, version) pair. Components built
separately recognise the same attribute type only if they agree on the pair,
so this listing is what to compare across builds.

Examples:
  attrgraph kinds list                     # Table of kinds
  attrgraph kinds list --format json       # Machine-readable listing
  attrgraph kinds resolve attr.string "^0" # Highest version matching a constraint`,
}

var kindsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered kinds",
	Args:  cobra.NoArgs,
	RunE:  runKindsList,
}

var kindsResolveCmd = &cobra.Command{
	Use:   "resolve <name> <constraint>",
	Short: "Resolve the highest version of a kind matching a semver constraint",
	Args:  cobra.ExactArgs(2),
	RunE:  runKindsResolve,
}

var kindsFormat string

func init() {
	kindsListCmd.Flags().StringVar(&kindsFormat, "format", "table", "Output format: table, toml, json, yaml")

	KindsCmd.AddCommand(kindsListCmd)
	KindsCmd.AddCommand(kindsResolveCmd)
}

// kindRow is one registered kind as printed by the CLI
type kindRow struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Version     uint64 `json:"version" yaml:"version" toml:"version"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint" toml:"fingerprint"`
	Payload     string `json:"payload" yaml:"payload" toml:"payload"`
	Copyable    bool   `json:"copyable" yaml:"copyable" toml:"copyable"`
}

type kindListing struct {
	Kinds []kindRow `json:"kinds" yaml:"kinds" toml:"kinds"`
}

func newKindRow(d attr.Descriptor) kindRow {
	id := d.Identity()
	return kindRow{
		Name:        id.Name,
		Version:     id.Version,
		Fingerprint: id.Fingerprint(),
		Payload:     d.Payload(),
		Copyable:    d.Copyable(),
	}
}

func collectKinds(reg *attr.Registry) kindListing {
	var listing kindListing
	for _, id := range reg.Identities() {
		if d, ok := reg.Lookup(id); ok {
			listing.Kinds = append(listing.Kinds, newKindRow(d))
		}
	}
	return listing
}

func runKindsList(cmd *cobra.Command, args []string) error {
	listing := collectKinds(attr.Default())

	if kindsFormat != "table" {
		return writeEncoded(cmd.OutOrStdout(), listing, kindsFormat)
	}

	data := pterm.TableData{{"Name", "Version", "Fingerprint", "Payload", "Copyable"}}
	for _, k := range listing.Kinds {
		data = append(data, []string{
			k.Name,
			strconv.FormatUint(k.Version, 10),
			k.Fingerprint,
			k.Payload,
			strconv.FormatBool(k.Copyable),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}

func runKindsResolve(cmd *cobra.Command, args []string) error {
	d, err := attr.Default().Resolve(args[0], args[1])
	if err != nil {
		return err
	}

	row := newKindRow(d)
	fmt.Fprintf(cmd.OutOrStdout(), "%s@v%d %s %s\n", row.Name, row.Version, row.Fingerprint, row.Payload)
	return nil
}
