package tsfold

// fakeNode is an in-memory syntax tree used to exercise the engine without a
// grammar.
type fakeNode struct {
	typ      string
	field    string
	start    uint32
	end      uint32
	parent   *fakeNode
	children []*fakeNode
}

func node(typ string, start, end uint32, children ...*fakeNode) *fakeNode {
	n := &fakeNode{typ: typ, start: start, end: end, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

// as labels n as the value of a field of its parent.
func (n *fakeNode) as(field string) *fakeNode {
	n.field = field
	return n
}

func (n *fakeNode) Type() string      { return n.typ }
func (n *fakeNode) StartByte() uint32 { return n.start }
func (n *fakeNode) EndByte() uint32   { return n.end }
func (n *fakeNode) ChildCount() int   { return len(n.children) }

func (n *fakeNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) Child(i int) Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *fakeNode) ChildByFieldName(name string) Node {
	for _, c := range n.children {
		if c.field == name {
			return c
		}
	}
	return nil
}

// fn builds a function node of the given type. A zero bodyEnd leaves the
// body field out.
func fn(typ string, start, end, bodyStart, bodyEnd uint32, nested ...*fakeNode) *fakeNode {
	children := []*fakeNode{node("identifier", start+3, start+4).as("name")}
	if bodyEnd == 0 {
		return node(typ, start, end, children...)
	}
	body := node("block", bodyStart, bodyEnd, nested...).as("body")
	return node(typ, start, end, append(children, body)...)
}
