package attr

import (
	"reflect"

	"github.com/teranos/attrgraph/errors"
)

// Kind pairs a payload type T with one TypeIdentity and the hooks its values
// use. A Kind is created once per process, normally as a package-level var
// via Define, and is immutable afterwards.
type Kind[T any] struct {
	id       TypeIdentity
	payload  string
	copyable bool
	init     func(self *Value[T], owner Entity) Attribute
	merge    func(self *Value[T], owners []Entity) Attribute
	format   func(T) string
}

// Option configures a Kind
type Option[T any] func(*Kind[T])

// WithInit sets the hook behind Value.Init
func WithInit[T any](fn func(self *Value[T], owner Entity) Attribute) Option[T] {
	return func(k *Kind[T]) { k.init = fn }
}

// WithMerge sets the hook behind Value.Merge. The hook owns the merge policy
// (union, concatenation, first wins, ...) and must not mutate owners.
func WithMerge[T any](fn func(self *Value[T], owners []Entity) Attribute) Option[T] {
	return func(k *Kind[T]) { k.merge = fn }
}

// WithFormat sets the hook behind Value.String
func WithFormat[T any](fn func(T) string) Option[T] {
	return func(k *Kind[T]) { k.format = fn }
}

// NotCopyable marks values of the kind as non-duplicable
func NotCopyable[T any]() Option[T] {
	return func(k *Kind[T]) { k.copyable = false }
}

// NewKind creates a kind without registering it.
// Most callers want Define.
func NewKind[T any](id TypeIdentity, opts ...Option[T]) *Kind[T] {
	k := &Kind[T]{
		id:       id,
		payload:  reflect.TypeOf((*T)(nil)).Elem().String(),
		copyable: true,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Define creates a kind and registers it in the default registry.
// It panics if the identity is already taken, so call it from a
// package-level var declaration where a clash stops the program at start-up.
func Define[T any](name string, version uint64, opts ...Option[T]) *Kind[T] {
	k := NewKind(TypeIdentity{Name: name, Version: version}, opts...)
	Default().MustRegister(k)
	return k
}

// Identity returns the kind's type identity
func (k *Kind[T]) Identity() TypeIdentity {
	return k.id
}

// Payload returns the Go type name of T. It is informational only;
// type checks go through Identity.
func (k *Kind[T]) Payload() string {
	return k.payload
}

// Copyable reports whether values of the kind are copyable
func (k *Kind[T]) Copyable() bool {
	return k.copyable
}

// New returns a new value of the kind holding v
func (k *Kind[T]) New(v T) *Value[T] {
	return &Value[T]{Holder: NewHolder(v), kind: k}
}

// Construct builds a value from an untyped payload.
// A payload that is not a T yields an error wrapping ErrTypeMismatch.
func (k *Kind[T]) Construct(v any) (Attribute, error) {
	t, ok := v.(T)
	if !ok {
		return nil, errors.NewTypeMismatchError("%s holds %s, got %T", k.id, k.payload, v)
	}
	return k.New(t), nil
}

// Cast recovers typed access to a.
// It returns (nil, false) when a is nil, carries another identity, or does
// not expose a T payload.
func (k *Kind[T]) Cast(a Attribute) (Typed[T], bool) {
	if a == nil || a.TypeIdentity() != k.id {
		return nil, false
	}
	t, ok := a.(Typed[T])
	if !ok {
		return nil, false
	}
	return t, true
}

// Get returns the payload of a, or (zero, false) under the same rules as Cast.
func (k *Kind[T]) Get(a Attribute) (T, bool) {
	t, ok := k.Cast(a)
	if !ok {
		var zero T
		return zero, false
	}
	return t.Get(), true
}

// Typed is an attribute with typed access to its payload
type Typed[T any] interface {
	Attribute
	Get() T
	Ref() *T
	Set(T)
}

// Value is the attribute produced by a Kind: a Holder plus the kind's
// identity and hooks.
type Value[T any] struct {
	Holder[T]
	kind *Kind[T]
}

// Kind returns the kind that built v
func (v *Value[T]) Kind() *Kind[T] {
	return v.kind
}

// TypeIdentity returns the kind's identity. A nil or zero Value reports the
// zero identity, which no registered kind uses.
func (v *Value[T]) TypeIdentity() TypeIdentity {
	if v == nil || v.kind == nil {
		return TypeIdentity{}
	}
	return v.kind.id
}

// IsCopyable reports the kind's copyability, true unless NotCopyable was set
func (v *Value[T]) IsCopyable() bool {
	if v == nil || v.kind == nil {
		return true
	}
	return v.kind.copyable
}

// Init runs the kind's init hook, or returns nil without one
func (v *Value[T]) Init(owner Entity) Attribute {
	if v == nil || v.kind == nil || v.kind.init == nil {
		return nil
	}
	return v.kind.init(v, owner)
}

// Merge runs the kind's merge hook, or returns nil without one
func (v *Value[T]) Merge(owners []Entity) Attribute {
	if v == nil || v.kind == nil || v.kind.merge == nil {
		return nil
	}
	return v.kind.merge(v, owners)
}

// String runs the kind's format hook, or returns "" without one
func (v *Value[T]) String() string {
	if v == nil || v.kind == nil || v.kind.format == nil {
		return ""
	}
	return v.kind.format(v.Get())
}
