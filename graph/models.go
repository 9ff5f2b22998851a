// Package graph provides the entity that owns attribute maps and the
// rewrites (derive, fuse) that drive attribute init and merge hooks.
package graph

import (
	"sort"

	"github.com/google/uuid"

	"github.com/teranos/attrgraph/attr"
)

// Node represents an entity in the graph
type Node struct {
	ID    string   `json:"id"`
	Type  string   `json:"type"`  // e.g. "artist", "album", or "untyped"
	Label string   `json:"label"` // Display label
	Attrs attr.Map `json:"-"`     // Named attributes; handles may be shared with other nodes
}

// NewNode creates a node with a fresh UUID and an empty attribute map
func NewNode(nodeType, label string) *Node {
	if nodeType == "" {
		nodeType = UntypedNode
	}
	return &Node{
		ID:    uuid.New().String(),
		Type:  nodeType,
		Label: label,
		Attrs: attr.Map{},
	}
}

// Attributes implements attr.Entity
func (n *Node) Attributes() attr.Map {
	return n.Attrs
}

// AttributeNames returns the attribute names of n in sorted order
func (n *Node) AttributeNames() []string {
	names := make([]string, 0, len(n.Attrs))
	for name := range n.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Positional collects the attribute called name from each node, in node
// order. Nodes without it contribute a nil entry, so positions line up with
// nodes.
func Positional(nodes []*Node, name string) attr.List {
	list := make(attr.List, len(nodes))
	for i, n := range nodes {
		if n != nil {
			list[i] = n.Attrs[name]
		}
	}
	return list
}

// entities adapts nodes to the slice type merge hooks take
func entities(nodes []*Node) []attr.Entity {
	out := make([]attr.Entity, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}
