package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Deskbot/Ariamis/pkg/dom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// EventMarkers emits a data-on-* attribute for every event an element
	// listens on, so a client script can find and wire interactive nodes.
	EventMarkers bool
}

// Renderer serializes live dom trees to HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// ToString renders a node tree to an HTML string.
func (r *Renderer) ToString(node dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a node tree to the given writer.
func (r *Renderer) ToWriter(w io.Writer, node dom.Node) error {
	return r.renderNode(w, node, 0)
}

// ToString renders a node tree to an HTML string with the default compact
// configuration.
func ToString(node dom.Node) (string, error) {
	return New(Config{}).ToString(node)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node dom.Node, depth int) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *dom.Element:
		return r.renderElement(w, n, depth)
	case *dom.Text:
		_, err := w.Write([]byte(escapeHTML(n.Data())))
		return err
	case *dom.Fragment:
		for _, child := range n.Children() {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unknown node kind %s", node.Kind())
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, el *dom.Element, depth int) error {
	tag := el.Tag()

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, el); err != nil {
		return err
	}

	// Void elements self-close and never render children.
	if dom.IsVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	children := el.Children()
	hasBlockChildren := len(children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}
	for _, child := range children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderAttributes renders the element's properties as HTML attributes,
// mapping host property names back to attribute names, and optionally
// emits event markers for registered listeners.
func (r *Renderer) renderAttributes(w io.Writer, el *dom.Element) error {
	props := el.Properties()

	// Sort keys for deterministic output
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		name := attrName(key)

		// Boolean attributes render as the bare name when true.
		if isBooleanAttr(name) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", name); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue != "" {
			if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(strValue)); err != nil {
				return err
			}
		}
	}

	if r.config.EventMarkers {
		for _, event := range el.ListenerEvents() {
			if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, event); err != nil {
				return err
			}
		}
	}
	return nil
}

// propToAttr maps host property names to their markup attribute names.
var propToAttr = map[string]string{
	"className": "class",
	"htmlFor":   "for",
	"tabIndex":  "tabindex",
	"readOnly":  "readonly",
	"maxLength": "maxlength",
	"colSpan":   "colspan",
	"rowSpan":   "rowspan",
	"accessKey": "accesskey",
	"ariaLabel": "aria-label",
}

func attrName(prop string) string {
	if name, ok := propToAttr[prop]; ok {
		return name
	}
	return strings.ToLower(prop)
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
