package graph

import (
	"sort"

	"go.uber.org/zap"

	"github.com/teranos/attrgraph/am"
	"github.com/teranos/attrgraph/attr"
	"github.com/teranos/attrgraph/errors"
	"github.com/teranos/attrgraph/logger"
)

// Rewriter derives and fuses nodes, carrying attributes across through
// their init and merge hooks. When a hook returns nil the configured
// fallback policy decides what happens to the attribute.
//
// A Rewriter only holds configuration and never mutates its input nodes,
// so it is safe for concurrent use on disjoint node sets. Hooks supplied by
// kinds carry their own concurrency guarantees.
type Rewriter struct {
	initPolicy  string
	mergePolicy string
	logger      *zap.SugaredLogger
}

// NewRewriter creates a rewriter. A nil log uses the global logger.
func NewRewriter(cfg am.GraphConfig, log *zap.SugaredLogger) (*Rewriter, error) {
	full := am.Config{Graph: cfg}
	if err := full.Validate(); err != nil {
		return nil, errors.Wrap(err, "failed to create rewriter")
	}

	if log == nil {
		log = logger.Named("graph.rewriter")
	} else {
		log = log.Named("graph.rewriter")
	}

	return &Rewriter{
		initPolicy:  cfg.InitPolicy,
		mergePolicy: cfg.MergePolicy,
		logger:      log,
	}, nil
}

// Derive creates a node from a prototype. Each prototype attribute, in name
// order, gets Init(derived); a non-nil result is stored, otherwise the init
// policy applies. Hooks see the attributes derived so far.
func (r *Rewriter) Derive(prototype *Node, nodeType, label string) (*Node, error) {
	if prototype == nil {
		return nil, errors.NewInvalidRequestError("derive needs a prototype node")
	}

	derived := NewNode(nodeType, label)
	for _, name := range prototype.AttributeNames() {
		a := prototype.Attrs[name]
		if a == nil {
			continue
		}

		if fresh := a.Init(derived); fresh != nil {
			derived.Attrs[name] = fresh
			r.logger.Debugw("Attribute derived by init hook",
				logger.FieldNodeID, derived.ID,
				logger.FieldAttribute, name,
				logger.FieldIdentity, fresh.TypeIdentity().String())
			continue
		}

		if r.initPolicy == am.InitPolicyShare && a.IsCopyable() {
			derived.Attrs[name] = a
			continue
		}

		r.logger.Debugw("Attribute not carried to derived node",
			logger.FieldNodeID, derived.ID,
			logger.FieldAttribute, name,
			logger.FieldPolicy, r.initPolicy,
			"copyable", a.IsCopyable())
	}

	r.logger.Infow("Derived node",
		logger.FieldNodeID, derived.ID,
		"prototype_id", prototype.ID,
		logger.FieldCount, len(derived.Attrs))
	return derived, nil
}

// Fuse merges nodes into a new one. Merge(nodes) is called once per distinct
// attribute name, in name order, on the first node's attribute of that name.
// A non-nil result is stored, otherwise the merge policy applies.
func (r *Rewriter) Fuse(nodes []*Node, nodeType, label string) (*Node, error) {
	if len(nodes) == 0 {
		return nil, errors.NewInvalidRequestError("fuse needs at least one node")
	}
	for i, n := range nodes {
		if n == nil {
			return nil, errors.NewInvalidRequestError("fuse input %d is nil", i)
		}
	}

	fused := NewNode(nodeType, label)
	owners := entities(nodes)

	for _, name := range distinctNames(nodes) {
		candidates := Positional(nodes, name)
		first := firstNonNil(candidates)
		if first == nil {
			continue
		}

		if merged := first.Merge(owners); merged != nil {
			fused.Attrs[name] = merged
			r.logger.Debugw("Attribute combined by merge hook",
				logger.FieldNodeID, fused.ID,
				logger.FieldAttribute, name,
				logger.FieldIdentity, merged.TypeIdentity().String())
			continue
		}

		if r.mergePolicy == am.MergePolicyFirst {
			if keep := firstCopyable(candidates); keep != nil {
				fused.Attrs[name] = keep
				continue
			}
		}

		r.logger.Debugw("Attribute not carried to fused node",
			logger.FieldNodeID, fused.ID,
			logger.FieldAttribute, name,
			logger.FieldPolicy, r.mergePolicy)
	}

	r.logger.Infow("Fused nodes",
		logger.FieldNodeID, fused.ID,
		logger.FieldNodeType, fused.Type,
		logger.FieldCount, len(nodes))
	return fused, nil
}

func distinctNames(nodes []*Node) []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range nodes {
		for _, name := range n.AttributeNames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func firstNonNil(list attr.List) attr.Attribute {
	for _, a := range list {
		if a != nil {
			return a
		}
	}
	return nil
}

func firstCopyable(list attr.List) attr.Attribute {
	for _, a := range list {
		if a != nil && a.IsCopyable() {
			return a
		}
	}
	return nil
}
