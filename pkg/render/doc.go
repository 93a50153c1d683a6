// Package render serializes live dom trees into HTML strings or streams.
//
// It handles HTML5 compliant element rendering, text and attribute escaping,
// void elements, boolean attributes, and the mapping from host property
// names back to markup attribute names (className becomes class, htmlFor
// becomes for). With EventMarkers enabled, every event an element listens on
// is emitted as a data-on-* attribute so a client script can wire
// interactive nodes.
//
// # Basic Usage
//
//	html, err := render.ToString(node)
//
//	r := render.New(render.Config{Pretty: true})
//	err := r.ToWriter(os.Stdout, node)
package render
