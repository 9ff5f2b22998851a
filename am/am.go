// Package am loads attrgraph configuration ("I am").
//
// Sources, lowest precedence first: defaults, ~/.attrgraph/am.toml, the
// nearest am.toml walking up from the working directory, ATTRGRAPH_*
// environment variables.
package am

// Config represents the attrgraph configuration
type Config struct {
	Graph GraphConfig `mapstructure:"graph" json:"graph" yaml:"graph" toml:"graph"`
	Log   LogConfig   `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
}

// GraphConfig configures what graph rewrites do when an attribute has no
// init or merge hook.
type GraphConfig struct {
	InitPolicy  string `mapstructure:"init_policy" json:"init_policy" yaml:"init_policy" toml:"init_policy"`    // share | drop
	MergePolicy string `mapstructure:"merge_policy" json:"merge_policy" yaml:"merge_policy" toml:"merge_policy"` // first | drop
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON      bool `mapstructure:"json" json:"json" yaml:"json" toml:"json"`
	Verbosity int  `mapstructure:"verbosity" json:"verbosity" yaml:"verbosity" toml:"verbosity"`
}

// Fallback policies for graph rewrites
const (
	// InitPolicyShare reuses the prototype's handle when it is copyable
	InitPolicyShare = "share"
	// InitPolicyDrop leaves the attribute off the derived node
	InitPolicyDrop = "drop"

	// MergePolicyFirst keeps the first copyable handle in input order
	MergePolicyFirst = "first"
	// MergePolicyDrop leaves the attribute off the fused node
	MergePolicyDrop = "drop"
)
