// Package dom provides the in-memory host environment that the construction
// DSL delegates to: live element, text, and fragment nodes with property
// assignment, event listener registration, and append-move tree semantics.
//
// # Core Types
//
// Node is the common interface over *Element, *Text, and *Fragment. Elements
// hold a tag, a property map, registered listeners, and ordered children.
// Fragments group nodes without a wrapper element; appending a fragment moves
// its children out and leaves it empty.
//
// # Properties
//
// Properties use host property names (className, htmlFor), not markup
// attribute names. Well-known names are type checked at the assignment
// boundary and fail on mismatch; unknown names are stored permissively.
// Assigning textContent replaces the element's children with one text node.
//
// # Events
//
// AddEventListener registers a handler with optional Once/Capture/Passive
// options and returns an unregister function. DispatchEvent invokes the
// target's listeners synchronously in registration order; there are no
// propagation phases.
//
// # Parsing
//
// ParseFragment parses markup in body context via golang.org/x/net/html and
// returns the resulting nodes in a fragment. Parsing is permissive and never
// rejects malformed markup.
//
// Everything here is synchronous and unsynchronized; callers touching the
// same nodes from multiple goroutines need their own coordination.
package dom
