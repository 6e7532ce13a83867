package tsfold

// FindAllBodyRegions returns the body region of every function node under
// root, in pre-order (outer functions before the functions nested in them).
// Function nodes without a body field contribute nothing. The result is
// never nil.
func FindAllBodyRegions(root Node, d *LanguageDescriptor) []Region {
	regions := []Region{}
	if root == nil || d == nil {
		return regions
	}

	sparse := InduceSparseTree(root, d.matchNode)
	sparse.Walk(func(n Node) {
		if r, ok := BodyRegion(n, d); ok {
			regions = append(regions, r)
		}
	})
	return regions
}

// FindEnclosingBodyRegion returns the body region of the innermost function
// node enclosing offset. It reports false when offset is outside every
// function, or when the enclosing function has no body field.
func FindEnclosingBodyRegion(root Node, d *LanguageDescriptor, offset uint32) (Region, bool) {
	if root == nil || d == nil {
		return Region{}, false
	}

	for n := NodeAt(root, offset); n != nil; n = n.Parent() {
		if d.matchNode(n) {
			return BodyRegion(n, d)
		}
	}
	return Region{}, false
}

// FindBodyRegionsIn returns the body regions that overlap window, in the
// same order as FindAllBodyRegions.
func FindBodyRegionsIn(root Node, d *LanguageDescriptor, window Region) []Region {
	all := FindAllBodyRegions(root, d)
	out := all[:0]
	for _, r := range all {
		if r.Overlaps(window) || (r.Empty() && window.Contains(r.Start)) {
			out = append(out, r)
		}
	}
	return out
}

// BodyRegion resolves the body field of a single function node.
func BodyRegion(n Node, d *LanguageDescriptor) (Region, bool) {
	if n == nil || d == nil {
		return Region{}, false
	}
	body := n.ChildByFieldName(d.BodyField())
	if body == nil {
		return Region{}, false
	}
	return nodeRegion(body), true
}

// NodeAt returns the smallest node under root whose span contains offset,
// or nil when root does not contain it.
func NodeAt(root Node, offset uint32) Node {
	if root == nil {
		return nil
	}
	if nl, ok := root.(NodeLocator); ok {
		return nl.NodeAt(offset)
	}
	if !nodeRegion(root).Contains(offset) {
		return nil
	}

	n := root
descend:
	for {
		count := n.ChildCount()
		for i := 0; i < count; i++ {
			child := n.Child(i)
			if child == nil {
				continue
			}
			if child.StartByte() > offset {
				break
			}
			if nodeRegion(child).Contains(offset) {
				n = child
				continue descend
			}
		}
		return n
	}
}
