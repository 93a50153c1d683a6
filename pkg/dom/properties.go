package dom

import "fmt"

// propKind constrains the value type of a well-known property.
type propKind uint8

const (
	propString propKind = iota
	propBool
	propInt
)

func (k propKind) String() string {
	switch k {
	case propString:
		return "string"
	case propBool:
		return "bool"
	case propInt:
		return "int"
	default:
		return "unknown"
	}
}

// knownProps maps well-known property names to their expected value types.
// Names follow the host property-naming convention (className, htmlFor),
// not markup attribute names. Assigning a mismatched type to any of these
// fails; names outside the table are stored permissively.
var knownProps = map[string]propKind{
	// Global
	"id":        propString,
	"className": propString,
	"title":     propString,
	"lang":      propString,
	"dir":       propString,
	"slot":      propString,
	"accessKey": propString,
	"role":      propString,
	"ariaLabel": propString,
	"hidden":    propBool,
	"draggable": propBool,
	"tabIndex":  propInt,

	// Forms
	"value":        propString,
	"defaultValue": propString,
	"placeholder":  propString,
	"name":         propString,
	"type":         propString,
	"htmlFor":      propString,
	"disabled":     propBool,
	"checked":      propBool,
	"readOnly":     propBool,
	"required":     propBool,
	"multiple":     propBool,
	"selected":     propBool,
	"autofocus":    propBool,
	"maxLength":    propInt,
	"size":         propInt,
	"rows":         propInt,
	"cols":         propInt,

	// Links and media
	"href":   propString,
	"target": propString,
	"rel":    propString,
	"src":    propString,
	"alt":    propString,
	"action": propString,
	"method": propString,

	// Tables
	"colSpan": propInt,
	"rowSpan": propInt,
}

// SetProperty assigns a value to the named property of the element.
//
// Assigning textContent replaces the element's children with a single text
// node. Well-known property names are type checked and fail on mismatch;
// unknown names are stored as-is, matching the host's expando behavior.
// A nil value is skipped without error.
func (e *Element) SetProperty(name string, value any) error {
	if name == "" {
		return fmt.Errorf("dom: empty property name")
	}
	if value == nil {
		return nil
	}

	if name == "textContent" {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("dom: property %q wants string, got %T", name, value)
		}
		e.setTextContent(s)
		return nil
	}

	if kind, ok := knownProps[name]; ok {
		if err := checkPropType(name, kind, value); err != nil {
			return err
		}
	}
	e.props[name] = value
	return nil
}

func checkPropType(name string, kind propKind, value any) error {
	ok := false
	switch kind {
	case propString:
		_, ok = value.(string)
	case propBool:
		_, ok = value.(bool)
	case propInt:
		_, ok = value.(int)
	}
	if !ok {
		return fmt.Errorf("dom: property %q wants %s, got %T", name, kind, value)
	}
	return nil
}

// setTextContent replaces all children with one text node. An empty string
// simply clears the children.
func (e *Element) setTextContent(s string) {
	for _, c := range e.children {
		c.setParent(nil)
	}
	e.children = nil
	if s != "" {
		t := NewText(s)
		t.setParent(e)
		e.children = append(e.children, t)
	}
}

// Property returns the named property's value and whether it is set.
// textContent reads back the concatenated descendant text.
func (e *Element) Property(name string) (any, bool) {
	if name == "textContent" {
		return e.TextContent(), true
	}
	v, ok := e.props[name]
	return v, ok
}

// Properties returns a copy of the element's set properties.
func (e *Element) Properties() map[string]any {
	out := make(map[string]any, len(e.props))
	for k, v := range e.props {
		out[k] = v
	}
	return out
}
