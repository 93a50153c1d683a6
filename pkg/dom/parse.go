package dom

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// attrToProp maps markup attribute names to host property names.
var attrToProp = map[string]string{
	"class":     "className",
	"for":       "htmlFor",
	"tabindex":  "tabIndex",
	"readonly":  "readOnly",
	"maxlength": "maxLength",
	"colspan":   "colSpan",
	"rowspan":   "rowSpan",
	"accesskey": "accessKey",
}

// ParseFragment parses a markup string in body context and returns the
// resulting nodes in a fragment. Parsing follows the permissive host
// algorithm: malformed markup is repaired, never rejected. Comments and
// doctypes are dropped; parsed attributes land as properties under their
// host names.
func ParseFragment(markup string) (*Fragment, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}

	frag := NewFragment()
	for _, n := range nodes {
		if converted := convertParsed(n); converted != nil {
			frag.children = append(frag.children, converted)
			converted.setParent(frag)
		}
	}
	return frag, nil
}

// convertParsed turns one parsed node into a live node, or nil for node
// types this host does not model.
func convertParsed(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return NewText(n.Data)

	case html.ElementNode:
		el, err := NewElement(n.Data)
		if err != nil {
			return nil
		}
		for _, a := range n.Attr {
			name, value := parsedAttr(a.Key, a.Val)
			if err := el.SetProperty(name, value); err != nil {
				continue
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convertParsed(c); child != nil {
				child.setParent(el)
				el.children = append(el.children, child)
			}
		}
		return el

	default:
		// Comments, doctypes, and document nodes are dropped.
		return nil
	}
}

// parsedAttr converts one markup attribute to a property name and value.
// Boolean attributes become true; integer-typed properties are parsed,
// falling back to zero on junk the same way the host does.
func parsedAttr(key, val string) (string, any) {
	name := key
	if mapped, ok := attrToProp[key]; ok {
		name = mapped
	}
	kind, known := knownProps[name]
	if !known {
		return name, val
	}
	switch kind {
	case propBool:
		return name, true
	case propInt:
		i, err := strconv.Atoi(val)
		if err != nil {
			return name, 0
		}
		return name, i
	default:
		return name, val
	}
}
