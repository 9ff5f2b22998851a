package am

import "github.com/teranos/attrgraph/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Graph.InitPolicy {
	case InitPolicyShare, InitPolicyDrop:
	default:
		return errors.WithHintf(
			errors.NewInvalidRequestError("graph.init_policy must be %q or %q, got %q", InitPolicyShare, InitPolicyDrop, c.Graph.InitPolicy),
			"omit graph.init_policy to use %q", InitPolicyShare)
	}

	switch c.Graph.MergePolicy {
	case MergePolicyFirst, MergePolicyDrop:
	default:
		return errors.WithHintf(
			errors.NewInvalidRequestError("graph.merge_policy must be %q or %q, got %q", MergePolicyFirst, MergePolicyDrop, c.Graph.MergePolicy),
			"omit graph.merge_policy to use %q", MergePolicyFirst)
	}

	if c.Log.Verbosity < 0 {
		return errors.NewInvalidRequestError("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}
