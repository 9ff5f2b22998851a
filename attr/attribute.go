package attr

// Attribute is the type-erased contract every attribute value satisfies.
//
// An Attribute held in an interface value is the shared handle: copies of the
// interface share the underlying value, and nil is the empty handle.
type Attribute interface {
	// TypeIdentity returns the identity of the concrete type that built the
	// value, regardless of the static type it is accessed through.
	TypeIdentity() TypeIdentity

	// IsCopyable reports whether a rewrite may reuse or clone this value
	// for another entity. Kinds wrapping unique resources return false.
	IsCopyable() bool

	// Init derives a fresh attribute for a newly created owner.
	// nil means "no derived value"; it is not an error.
	Init(owner Entity) Attribute

	// Merge combines this attribute with the same-named attributes of
	// owners, which are being fused into one entity. Implementations must
	// not mutate owners. nil means "no merged value".
	Merge(owners []Entity) Attribute

	// String is a free-form diagnostic rendering, empty by default.
	String() string
}

// Entity is the view of an owning graph entity that Init and Merge hooks get.
type Entity interface {
	Attributes() Map
}

// Defaults supplies the default behaviour of every Attribute method except
// TypeIdentity. Embed it in hand-written attribute types:
//
//	type Lock struct {
//	    attr.Defaults
//	    fd int
//	}
//
//	func (*Lock) TypeIdentity() attr.TypeIdentity { return lockIdentity }
//	func (*Lock) IsCopyable() bool               { return false }
type Defaults struct{}

// IsCopyable returns true
func (Defaults) IsCopyable() bool { return true }

// Init returns nil
func (Defaults) Init(Entity) Attribute { return nil }

// Merge returns nil
func (Defaults) Merge([]Entity) Attribute { return nil }

// String returns ""
func (Defaults) String() string { return "" }
