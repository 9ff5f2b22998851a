package graph

const (
	// UntypedNode is the type of nodes created without one
	UntypedNode = "untyped"
)
