package dom

import "fmt"

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement  NodeKind = iota // <div>, <button>, etc.
	KindText                     // Plain text node
	KindFragment                 // Detachable grouping without a wrapper
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Node is a member of the live tree. The concrete implementations are
// *Element, *Text, and *Fragment; they all live in this package.
type Node interface {
	// Kind reports which concrete node this is.
	Kind() NodeKind

	// Parent returns the node's current parent, or nil for a detached node.
	// Fragments never have a parent.
	Parent() Node

	setParent(p container)
	detach()
}

// container is a node that holds children: *Element or *Fragment.
type container interface {
	Node
	removeChild(n Node) bool
}

// appendInto attaches n to the end of dst's child list, implementing the
// host append semantics: a node that already has a parent is moved, not
// copied, and appending a fragment empties the fragment into dst.
func appendInto(dst container, list *[]Node, n Node) error {
	if n == nil {
		return fmt.Errorf("dom: cannot append nil node")
	}

	if frag, ok := n.(*Fragment); ok {
		if Node(dst) == n {
			return fmt.Errorf("dom: cannot append a fragment to itself")
		}
		for _, c := range frag.children {
			if err := checkHierarchy(dst, c); err != nil {
				return err
			}
		}
		moved := frag.take()
		for _, c := range moved {
			c.setParent(dst)
			*list = append(*list, c)
		}
		return nil
	}

	if err := checkHierarchy(dst, n); err != nil {
		return err
	}
	n.detach()
	n.setParent(dst)
	*list = append(*list, n)
	return nil
}

// checkHierarchy rejects appending n into itself or into its own subtree.
func checkHierarchy(dst container, n Node) error {
	for anc := Node(dst); anc != nil; anc = anc.Parent() {
		if anc == n {
			return fmt.Errorf("dom: cannot append a node into its own subtree")
		}
	}
	return nil
}

// removeFrom deletes n from list, preserving order. It reports whether n
// was found.
func removeFrom(list *[]Node, n Node) bool {
	for i, c := range *list {
		if c == n {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
