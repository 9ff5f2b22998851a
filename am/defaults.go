package am

import (
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (ATTRGRAPH_GRAPH_INIT_POLICY, ...)
const EnvPrefix = "ATTRGRAPH"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Graph rewrite fallbacks
	v.SetDefault("graph.init_policy", InitPolicyShare)
	v.SetDefault("graph.merge_policy", MergePolicyFirst)

	// Logging
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// Default returns the configuration produced by defaults alone
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always decode
		panic(err)
	}
	return cfg
}
