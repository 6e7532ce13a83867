package tsfold

// InduceSparseTree builds the sparse subtree of root that keeps only nodes
// for which match returns true. Nesting between kept nodes is preserved and
// children stay in source order. Trees implementing SparseInducer build it
// themselves.
func InduceSparseTree(root Node, match func(Node) bool) *SparseNode {
	if root == nil {
		return &SparseNode{}
	}
	if si, ok := root.(SparseInducer); ok {
		return si.InduceSparseTree(match)
	}

	children := induceChildren(root, match)
	if match(root) {
		return &SparseNode{Node: root, Children: children}
	}
	return &SparseNode{Children: children}
}

func induceChildren(n Node, match func(Node) bool) []*SparseNode {
	var out []*SparseNode
	count := n.ChildCount()
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		grand := induceChildren(child, match)
		if match(child) {
			out = append(out, &SparseNode{Node: child, Children: grand})
			continue
		}
		out = append(out, grand...)
	}
	return out
}

// Walk visits the sparse tree in pre-order. The root entry is skipped when
// it carries no node.
func (s *SparseNode) Walk(visit func(Node)) {
	if s == nil {
		return
	}
	if s.Node != nil {
		visit(s.Node)
	}
	for _, c := range s.Children {
		c.Walk(visit)
	}
}

// Len returns the number of nodes in the sparse tree.
func (s *SparseNode) Len() int {
	n := 0
	s.Walk(func(Node) { n++ })
	return n
}
