package tsfold

// Node is the read-only view of a syntax node that region discovery needs.
// Implementations must return a nil Node (not a typed nil) when a parent,
// child or field does not exist.
type Node interface {
	Type() string
	StartByte() uint32
	EndByte() uint32
	Parent() Node
	ChildByFieldName(name string) Node
	ChildCount() int
	Child(i int) Node
}

// NodeLocator is implemented by trees that can find the smallest node
// containing an offset faster than a descent from the root.
type NodeLocator interface {
	NodeAt(offset uint32) Node
}

// SparseInducer is implemented by trees that can build a sparse subtree
// natively.
type SparseInducer interface {
	InduceSparseTree(match func(Node) bool) *SparseNode
}

// SparseNode is one entry of a sparse subtree. The root entry has a nil Node
// when the tree root itself does not match.
type SparseNode struct {
	Node     Node
	Children []*SparseNode
}
