package attr

import "github.com/teranos/attrgraph/errors"

// Built-in kinds. Their identities are part of the cross-component contract
// and must not change.
var (
	String = Define[string]("attr.string", 0)
	Int64  = Define[int64]("attr.int64", 0)
)

// Payload lists the payload types Make accepts. Calling Make with any other
// type fails to compile; define a Kind for it instead.
type Payload interface {
	string | int64
}

// Make wraps v in the built-in kind for its type and returns the handle.
// String literals resolve to String:
//
//	a := attr.Make("example") // attr.string@v0
//	n := attr.Make(int64(42)) // attr.int64@v0
func Make[T Payload](v T) Attribute {
	switch x := any(v).(type) {
	case string:
		return String.New(x)
	case int64:
		return Int64.New(x)
	}
	panic(errors.AssertionFailedf("no built-in kind for %T", v))
}

// Get recovers the payload of a built-in attribute; see Kind.Get.
func Get[T Payload](a Attribute) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case string:
		s, ok := String.Get(a)
		return any(s).(T), ok
	case int64:
		n, ok := Int64.Get(a)
		return any(n).(T), ok
	}
	return zero, false
}
