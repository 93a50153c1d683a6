package ariamis

import (
	"fmt"

	"github.com/Deskbot/Ariamis/pkg/dom"
)

// CreateElement is the explicit, non-ambiguous building block behind the
// DSL: one host element of the given tag, with the properties assigned, the
// listeners registered, and the children appended in order. It adds no
// validation of its own; whatever failure a host primitive raises is
// returned unchanged.
func CreateElement(tag string, props Props, listeners Listeners, children Children) (*dom.Element, error) {
	el, err := dom.NewElement(tag)
	if err != nil {
		return nil, err
	}
	for name, value := range props {
		if err := el.SetProperty(name, value); err != nil {
			return nil, err
		}
	}
	for event, entry := range listeners {
		if err := listen(el, event, entry); err != nil {
			return nil, err
		}
	}
	for _, child := range children {
		if err := appendChild(el, child); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// Elem builds one element in a single call: positional arguments are
// resolved per DistinguishArgs, then the element is constructed via
// CreateElement. Elem panics if the host rejects the construction so that
// call sites can nest; use CreateElement to handle failures explicitly.
func Elem(tag string, args ...any) *dom.Element {
	props, listeners, children, err := DistinguishArgs(args...)
	if err != nil {
		panic(err)
	}
	el, err := CreateElement(tag, props, listeners, children)
	if err != nil {
		panic(err)
	}
	return el
}

// listen registers one listener map entry: a bare handler with default
// options, or a Listener with the options it carries.
func listen(el *dom.Element, event string, entry any) error {
	switch h := entry.(type) {
	case Listener:
		el.AddEventListener(event, h.Handler, h.Options)
	case dom.EventHandler:
		el.AddEventListener(event, h)
	case func(*dom.Event):
		el.AddEventListener(event, h)
	default:
		return fmt.Errorf("ariamis: listener for %q is %T, want a handler or Listener", event, entry)
	}
	return nil
}

// appender is the part of the host surface shared by elements and
// fragments.
type appender interface {
	AppendChild(dom.Node) error
}

// appendChild appends one child list entry: a node as-is, a string as a
// text node. Nil entries are skipped, which allows conditional children.
func appendChild(dst appender, child any) error {
	switch c := child.(type) {
	case nil:
		return nil
	case string:
		return dst.AppendChild(dom.NewText(c))
	case dom.Node:
		return dst.AppendChild(c)
	default:
		return fmt.Errorf("ariamis: child is %T, want dom.Node or string", child)
	}
}
