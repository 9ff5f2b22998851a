// Package attr attaches typed values to graph entities behind one uniform
// interface and recovers the original type later.
//
// Every attribute satisfies Attribute. Its concrete type is identified by a
// TypeIdentity, a (name, version) pair declared explicitly by the kind that
// produced it, so two separately built components agree on the type as long
// as they agree on the pair.
//
// Usage:
//
//	// Build and store
//	attrs := attr.Map{}
//	attrs["label"] = attr.Make("example")
//	attrs["rank"] = attr.Make(int64(3))
//
//	// Recover, checking before use
//	if label, ok := attr.String.Get(attrs["label"]); ok {
//	    fmt.Println(label)
//	}
//
// New payload types are added without touching this package:
//
//	var Tags = attr.Define[[]string]("myapp.tags", 0,
//	    attr.WithMerge(func(self *attr.Value[[]string], owners []attr.Entity) attr.Attribute {
//	        ...
//	    }))
//
// Handles are plain interface values holding pointers: copying a handle
// shares the underlying value, and nil is the empty handle. Values are not
// synchronised; callers sharing a handle across goroutines must guard
// Set and Ref themselves.
package attr
