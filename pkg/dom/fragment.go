package dom

// Fragment is a detachable container of nodes. Appending a fragment to an
// element moves the fragment's children into the element and leaves the
// fragment empty, matching host append-move semantics.
type Fragment struct {
	children []Node
}

// NewFragment creates an empty fragment.
func NewFragment() *Fragment {
	return &Fragment{}
}

// Kind implements Node.
func (f *Fragment) Kind() NodeKind { return KindFragment }

// Parent implements Node. Fragments are never attached, so it is always nil.
func (f *Fragment) Parent() Node { return nil }

func (f *Fragment) setParent(container) {}

func (f *Fragment) detach() {}

// Children returns the fragment's children in order. The returned slice is
// a copy; mutating it does not affect the fragment.
func (f *Fragment) Children() []Node {
	out := make([]Node, len(f.children))
	copy(out, f.children)
	return out
}

// Len returns the number of children currently held by the fragment.
func (f *Fragment) Len() int { return len(f.children) }

// AppendChild appends n as the fragment's last child. A node that already
// has a parent is moved here; another fragment is emptied into this one.
func (f *Fragment) AppendChild(n Node) error {
	return appendInto(f, &f.children, n)
}

func (f *Fragment) removeChild(n Node) bool {
	return removeFrom(&f.children, n)
}

// take empties the fragment and returns its former children. Callers are
// responsible for reparenting the returned nodes.
func (f *Fragment) take() []Node {
	moved := f.children
	f.children = nil
	for _, c := range moved {
		c.setParent(nil)
	}
	return moved
}
