package ariamis

import "github.com/Deskbot/Ariamis/pkg/dom"

// Props maps property names to values. Names follow the host property
// naming convention (className, htmlFor), not markup attribute names.
type Props map[string]any

// Listeners maps event names to handlers. Each value is either a bare
// handler (dom.EventHandler or func(*dom.Event)) or a Listener carrying
// registration options.
type Listeners map[string]any

// Children is an ordered child list. Each entry is a dom.Node, or a string
// that becomes a text node.
type Children []any

// Listener pairs an event handler with registration options.
type Listener struct {
	Handler dom.EventHandler
	Options dom.AddEventListenerOptions
}

// Once wraps handler in a Listener that unregisters after its first call.
func Once(handler dom.EventHandler) Listener {
	return Listener{
		Handler: handler,
		Options: dom.AddEventListenerOptions{Once: true},
	}
}
