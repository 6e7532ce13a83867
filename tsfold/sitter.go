package tsfold

import sitter "github.com/smacker/go-tree-sitter"

// sitterNode adapts a go-tree-sitter node to Node.
type sitterNode struct {
	n *sitter.Node
}

// FromSitter wraps a go-tree-sitter node. It returns nil for a nil node.
func FromSitter(n *sitter.Node) Node {
	if n == nil {
		return nil
	}
	return sitterNode{n: n}
}

// Unwrap returns the go-tree-sitter node behind n, if there is one.
func Unwrap(n Node) (*sitter.Node, bool) {
	sn, ok := n.(sitterNode)
	if !ok {
		return nil, false
	}
	return sn.n, true
}

func (s sitterNode) Type() string      { return s.n.Type() }
func (s sitterNode) StartByte() uint32 { return s.n.StartByte() }
func (s sitterNode) EndByte() uint32   { return s.n.EndByte() }
func (s sitterNode) ChildCount() int   { return int(s.n.ChildCount()) }

func (s sitterNode) Parent() Node {
	return FromSitter(s.n.Parent())
}

func (s sitterNode) ChildByFieldName(name string) Node {
	return FromSitter(s.n.ChildByFieldName(name))
}

func (s sitterNode) Child(i int) Node {
	return FromSitter(s.n.Child(i))
}

// NodeAt descends with a tree cursor, which jumps to the child holding
// offset instead of scanning the siblings before it.
func (s sitterNode) NodeAt(offset uint32) Node {
	if offset < s.n.StartByte() || offset >= s.n.EndByte() {
		return nil
	}

	c := sitter.NewTreeCursor(s.n)
	defer c.Close()

	found := s.n
	for c.GoToFirstChildForByte(offset) >= 0 {
		n := c.CurrentNode()
		for n.EndByte() <= offset && c.GoToNextSibling() {
			n = c.CurrentNode()
		}
		// offset may fall between two children.
		if n.StartByte() > offset || offset >= n.EndByte() {
			break
		}
		found = n
	}
	return FromSitter(found)
}

type cursorFrame struct {
	depth int
	node  *SparseNode
}

// InduceSparseTree walks the subtree with a tree cursor, so nodes that do
// not match are never materialised.
func (s sitterNode) InduceSparseTree(match func(Node) bool) *SparseNode {
	root := &SparseNode{}
	if match(s) {
		root.Node = s
	}

	c := sitter.NewTreeCursor(s.n)
	defer c.Close()

	frames := []cursorFrame{{depth: 0, node: root}}
	depth := 0
	for {
		if c.GoToFirstChild() {
			depth++
		} else {
			for {
				if depth == 0 {
					return root
				}
				if c.GoToNextSibling() {
					break
				}
				c.GoToParent()
				depth--
			}
		}

		for frames[len(frames)-1].depth >= depth {
			frames = frames[:len(frames)-1]
		}

		n := FromSitter(c.CurrentNode())
		if n == nil || !match(n) {
			continue
		}
		sn := &SparseNode{Node: n}
		parent := frames[len(frames)-1].node
		parent.Children = append(parent.Children, sn)
		frames = append(frames, cursorFrame{depth: depth, node: sn})
	}
}
