package el

import (
	ariamis "github.com/Deskbot/Ariamis"
	"github.com/Deskbot/Ariamis/pkg/dom"
)

// Type aliases for the construction primitives used by the DSL.
type Props = ariamis.Props
type Listeners = ariamis.Listeners
type Children = ariamis.Children
type Listener = ariamis.Listener
type Element = dom.Element
type Event = dom.Event
type EventHandler = dom.EventHandler

// Once wraps handler in a Listener that unregisters after its first call.
func Once(handler dom.EventHandler) Listener {
	return ariamis.Once(handler)
}

// Text creates a text node.
func Text(content string) *dom.Text {
	return ariamis.Text(content)
}

// Fragment groups children into a detachable container without a wrapper
// element.
func Fragment(children Children) *dom.Fragment {
	return ariamis.Fragment(children)
}

// RawHTML parses a markup string and returns the resulting nodes in a
// detachable container.
func RawHTML(markup string) *dom.Fragment {
	return ariamis.RawHTML(markup)
}

// Elem builds one element with positional-argument disambiguation.
func Elem(tag string, args ...any) *dom.Element {
	return ariamis.Elem(tag, args...)
}
