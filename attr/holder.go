package attr

// Holder stores one value of type T. It carries no identity of its own;
// Value pairs it with a Kind.
type Holder[T any] struct {
	value T
}

// NewHolder returns a Holder initialised to v
func NewHolder[T any](v T) Holder[T] {
	return Holder[T]{value: v}
}

// Get returns a copy of the stored value
func (h *Holder[T]) Get() T {
	return h.value
}

// Ref returns a pointer to the stored value for in-place mutation.
func (h *Holder[T]) Ref() *T {
	return &h.value
}

// Set replaces the stored value. No validation happens here.
func (h *Holder[T]) Set(v T) {
	h.value = v
}
