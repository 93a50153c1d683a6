// Package ariamis is a convenience layer over the host element API in
// pkg/dom: build a tree of elements, set their properties, attach event
// listeners, and append children in a single call.
//
// # Element API
//
// Elements are created with one tag-bound constructor per known tag. Each
// takes up to three optional positional arguments whose roles are inferred
// from their runtime shape:
//
//	Button(
//	    Props{"id": "save", "className": "primary"},
//	    Listeners{"click": onSave},
//	    Children{"Save"},
//	)
//
// A list-shaped argument is always a child list, so attributes and
// listeners can be omitted while still supplying children:
//
//	Ul(Children{
//	    Li(Children{"one"}),
//	    Li(Children{"two"}),
//	})
//
// Because the shape test is the only discriminator, listeners are reachable
// only in the second position: a caller supplying listeners also supplies a
// (possibly empty) Props first. The full classification policy lives on
// DistinguishArgs, and the generic Distinguish lets other code build its own
// disambiguating constructors on the same rules.
//
// # Building blocks
//
// CreateElement is the explicit (properties, listeners, children) form and
// returns host failures as errors. Elem and the tag-bound constructors
// panic on host failures so call sites can nest. Fragment and RawHTML
// produce detachable containers; appending one elsewhere moves its
// children.
//
// Construction is one-shot and write-only: nothing here diffs, re-renders,
// or retains the returned nodes.
package ariamis
