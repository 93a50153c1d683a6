package ariamis

import "github.com/Deskbot/Ariamis/pkg/dom"

// Text creates a text node.
func Text(content string) *dom.Text {
	return dom.NewText(content)
}

// Fragment groups the given ordered children into a detachable container
// without creating a wrapper element. String entries become text nodes.
// Appending the fragment elsewhere moves its children, it does not copy
// them. Like Elem, Fragment panics if the host rejects a child.
func Fragment(children Children) *dom.Fragment {
	frag := dom.NewFragment()
	for _, child := range children {
		if err := appendChild(frag, child); err != nil {
			panic(err)
		}
	}
	return frag
}

// RawHTML parses a markup string via the host parser and returns the
// resulting nodes in a detachable container. Parsing is permissive:
// malformed markup is repaired by the parser, not rejected.
func RawHTML(markup string) *dom.Fragment {
	frag, err := dom.ParseFragment(markup)
	if err != nil {
		panic(err)
	}
	return frag
}
