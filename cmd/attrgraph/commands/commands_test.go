package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/attrgraph/am"
	"github.com/teranos/attrgraph/attr"
	"github.com/teranos/attrgraph/errors"
)

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

func TestKindsListJSON(t *testing.T) {
	out, err := execute(t, KindsCmd, "list", "--format", "json")
	require.NoError(t, err)

	var listing kindListing
	require.NoError(t, json.Unmarshal([]byte(out), &listing))

	byName := make(map[string]kindRow)
	for _, k := range listing.Kinds {
		byName[k.Name] = k
	}

	str, ok := byName["attr.string"]
	require.True(t, ok, "attr.string missing from %s", out)
	assert.Equal(t, uint64(0), str.Version)
	assert.Equal(t, "string", str.Payload)
	assert.True(t, str.Copyable)
	assert.Equal(t, attr.String.Identity().Fingerprint(), str.Fingerprint)

	_, ok = byName["attr.int64"]
	assert.True(t, ok)
}

func TestKindsListFormats(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	tests := []struct {
		format string
		want   []string
	}{
		{"table", []string{"Fingerprint", "attr.int64", "attr.string"}},
		{"yaml", []string{"kinds:", "name: attr.string", "payload: int64"}},
		{"toml", []string{"[[kinds]]", "attr.string", "copyable = true"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := execute(t, KindsCmd, "list", "--format", tt.format)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestKindsListUnknownFormat(t *testing.T) {
	_, err := execute(t, KindsCmd, "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestKindsResolve(t *testing.T) {
	out, err := execute(t, KindsCmd, "resolve", "attr.string", ">= 0")
	require.NoError(t, err)
	assert.Contains(t, out, "attr.string@v0 "+attr.String.Identity().Fingerprint())

	_, err = execute(t, KindsCmd, "resolve", "attr.missing", ">= 0")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAmShowJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ATTRGRAPH_GRAPH_INIT_POLICY", am.InitPolicyDrop)

	out, err := execute(t, AmCmd, "show", "--format", "json")
	require.NoError(t, err)

	var cfg am.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, am.InitPolicyDrop, cfg.Graph.InitPolicy)
	assert.Equal(t, am.MergePolicyFirst, cfg.Graph.MergePolicy)
}

func TestAmWhere(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, AmCmd, "where")
	require.NoError(t, err)
	assert.Contains(t, out, "am.toml")
	assert.Contains(t, out, "ATTRGRAPH_*")
}
