// Package el provides the construction DSL as a dot-importable surface.
//
// It re-exports the element constructors, argument types, and fragment
// helpers from github.com/Deskbot/Ariamis.
//
// Typical usage:
//
//	import (
//	    . "github.com/Deskbot/Ariamis/el"
//	)
//
//	page := Div(Props{"id": "app"}, Children{
//	    H1(Children{"Hello"}),
//	    Ul(Children{
//	        Li(Children{"one"}),
//	        Li(Children{"two"}),
//	    }),
//	})
//
// This keeps the DSL in a dedicated package while the explicit builder APIs
// live in the root package.
package el
