package dom

import "sort"

// Event is dispatched to listeners registered on an element.
type Event struct {
	Type   string
	Target *Element
}

// EventHandler is invoked with the dispatched event.
type EventHandler func(*Event)

// AddEventListenerOptions mirror the host registration options.
type AddEventListenerOptions struct {
	// Once removes the listener after its first invocation.
	Once bool
	// Capture and Passive are accepted for host compatibility. Dispatch in
	// this package is single-node, so Capture has no ordering effect.
	Capture bool
	Passive bool
}

type listenerEntry struct {
	handler EventHandler
	opts    AddEventListenerOptions
	removed bool
}

// AddEventListener registers handler for the named event with the given
// options. Listeners fire in registration order. The returned function
// unregisters the listener; calling it more than once is a no-op.
func (e *Element) AddEventListener(event string, handler EventHandler, opts ...AddEventListenerOptions) (remove func()) {
	entry := &listenerEntry{handler: handler}
	if len(opts) > 0 {
		entry.opts = opts[0]
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listenerEntry)
	}
	e.listeners[event] = append(e.listeners[event], entry)

	return func() {
		entry.removed = true
		e.compactListeners(event)
	}
}

// DispatchEvent synchronously invokes the element's listeners for the
// event's type, in registration order. Listeners registered during dispatch
// do not run for the current event. Once listeners are dropped after they
// fire. There is no propagation: dispatch targets exactly this element.
func (e *Element) DispatchEvent(ev *Event) {
	if ev == nil || ev.Type == "" {
		return
	}
	if ev.Target == nil {
		ev.Target = e
	}

	entries := e.listeners[ev.Type]
	snapshot := make([]*listenerEntry, len(entries))
	copy(snapshot, entries)

	for _, entry := range snapshot {
		if entry.removed {
			continue
		}
		if entry.opts.Once {
			entry.removed = true
		}
		entry.handler(ev)
	}
	e.compactListeners(ev.Type)
}

// ListenerCount returns the number of live listeners for the named event.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// ListenerEvents returns the sorted event names that have at least one
// live listener.
func (e *Element) ListenerEvents() []string {
	if len(e.listeners) == 0 {
		return nil
	}
	events := make([]string, 0, len(e.listeners))
	for event, entries := range e.listeners {
		if len(entries) > 0 {
			events = append(events, event)
		}
	}
	sort.Strings(events)
	return events
}

func (e *Element) compactListeners(event string) {
	entries := e.listeners[event]
	live := entries[:0]
	for _, entry := range entries {
		if !entry.removed {
			live = append(live, entry)
		}
	}
	if len(live) == 0 {
		delete(e.listeners, event)
		return
	}
	e.listeners[event] = live
}
