package attr

import (
	"sort"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/teranos/attrgraph/errors"
	"github.com/teranos/attrgraph/logger"
)

// Descriptor is the type-erased view of a Kind kept by a Registry
type Descriptor interface {
	Identity() TypeIdentity
	Payload() string
	Copyable() bool
	Construct(value any) (Attribute, error)
}

// Registry maps type identities to kinds. Identities are unique within a
// registry; a second kind claiming one is rejected.
type Registry struct {
	mu    sync.RWMutex
	kinds map[TypeIdentity]Descriptor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[TypeIdentity]Descriptor),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that Define populates
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) log() *zap.SugaredLogger {
	return logger.Named("attr.registry")
}

// Register adds d to the registry.
// Returns an error wrapping ErrConflict if its identity is taken and
// ErrInvalidRequest for the zero identity.
func (r *Registry) Register(d Descriptor) error {
	id := d.Identity()
	if id.Name == "" {
		return errors.NewInvalidRequestError("kind for %s has no identity name", d.Payload())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.kinds[id]; exists {
		err := errors.NewConflictError("type identity %s already registered for %s", id, existing.Payload())
		return errors.WithHintf(err, "rename the %s kind or bump its version", d.Payload())
	}

	r.kinds[id] = d
	r.log().Debugw("Registered attribute kind",
		logger.FieldIdentity, id.String(),
		logger.FieldFingerprint, id.Fingerprint(),
		logger.FieldPayload, d.Payload())
	return nil
}

// MustRegister is Register that panics on error
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the kind registered under id
func (r *Registry) Lookup(id TypeIdentity) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.kinds[id]
	return d, ok
}

// Identities returns all registered identities sorted by name, then version
func (r *Registry) Identities() []TypeIdentity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]TypeIdentity, 0, len(r.kinds))
	for id := range r.kinds {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Name != ids[j].Name {
			return ids[i].Name < ids[j].Name
		}
		return ids[i].Version < ids[j].Version
	})
	return ids
}

// Construct builds an attribute of the kind registered under id.
// Unknown identities wrap ErrNotFound; wrong payload types wrap ErrTypeMismatch.
func (r *Registry) Construct(id TypeIdentity, value any) (Attribute, error) {
	d, ok := r.Lookup(id)
	if !ok {
		return nil, errors.NewNotFoundError("type identity %s", id)
	}
	a, err := d.Construct(value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to construct %s", id)
	}
	return a, nil
}

// Resolve returns the highest registered version of name that satisfies a
// semver constraint, reading version N as N.0.0. For example ">= 1, < 3"
// accepts versions 1 and 2.
func (r *Registry) Resolve(name, constraint string) (Descriptor, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, errors.Wrapf(errors.WithDetail(errors.ErrInvalidRequest, err.Error()),
			"invalid version constraint %q", constraint)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var best Descriptor
	found := false
	for id, d := range r.kinds {
		if id.Name != name {
			continue
		}
		found = true
		if !c.Check(semver.New(id.Version, 0, 0, "", "")) {
			continue
		}
		if best == nil || id.Version > best.Identity().Version {
			best = d
		}
	}

	if !found {
		return nil, errors.NewNotFoundError("no kind named %q", name)
	}
	if best == nil {
		return nil, errors.NewNotFoundError("no version of %q satisfies %q", name, constraint)
	}
	return best, nil
}
