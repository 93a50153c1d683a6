package dom

import (
	"fmt"
	"strings"
)

// Element is a host element node: a tag, a set of properties, registered
// event listeners, and an ordered child list.
type Element struct {
	tag       string
	props     map[string]any
	listeners map[string][]*listenerEntry
	children  []Node
	parent    container
}

// NewElement creates a detached element of the given tag kind. The tag is
// normalized to lower case. Tag names follow the custom-element-friendly
// form: a leading letter, then letters, digits, or hyphens.
func NewElement(tag string) (*Element, error) {
	tag = strings.ToLower(tag)
	if !validTagName(tag) {
		return nil, fmt.Errorf("dom: invalid tag name %q", tag)
	}
	return &Element{
		tag:   tag,
		props: make(map[string]any),
	}, nil
}

func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}

// Kind implements Node.
func (e *Element) Kind() NodeKind { return KindElement }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Parent implements Node.
func (e *Element) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *Element) setParent(p container) { e.parent = p }

func (e *Element) detach() {
	if e.parent != nil {
		e.parent.removeChild(e)
		e.parent = nil
	}
}

// Children returns the element's children in order. The returned slice is
// a copy; mutating it does not affect the tree.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild appends n as the element's last child. A node that already
// has a parent is moved here; a fragment is emptied into the element.
func (e *Element) AppendChild(n Node) error {
	return appendInto(e, &e.children, n)
}

// RemoveChild detaches n from the element.
func (e *Element) RemoveChild(n Node) error {
	if !e.removeChild(n) {
		return fmt.Errorf("dom: node is not a child of <%s>", e.tag)
	}
	n.setParent(nil)
	return nil
}

func (e *Element) removeChild(n Node) bool {
	return removeFrom(&e.children, n)
}

// TextContent returns the concatenated text of all descendant text nodes,
// in document order.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			b.WriteString(n.data)
		case *Element:
			n.writeText(b)
		}
	}
}

// FindByID returns the first element in root's subtree (including root
// itself) whose id property equals id, or nil if there is none.
func FindByID(root Node, id string) *Element {
	switch n := root.(type) {
	case *Element:
		if got, ok := n.Property("id"); ok && got == id {
			return n
		}
		for _, c := range n.children {
			if found := FindByID(c, id); found != nil {
				return found
			}
		}
	case *Fragment:
		for _, c := range n.children {
			if found := FindByID(c, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}
