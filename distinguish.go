package ariamis

import (
	"fmt"
	"reflect"
)

// IsListShaped reports whether v is an ordered sequence: a slice or array
// of any element type. It is the single shape test behind DistinguishArgs;
// property and listener maps are never list-shaped.
func IsListShaped(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// Distinguish resolves up to three optional positional values into
// properties, listeners, and children slots, in argument order:
//
//  1. If the first value is list-shaped per isList, it is children;
//     otherwise it is properties.
//  2. If the second value is list-shaped, it is children, overwriting a
//     children value from step 1 — a (properties, children) call shape
//     relies on this; otherwise it is listeners.
//  3. The third value is always children.
//
// A nil value keeps its position but leaves its slot at the zero default.
// A classified value that is not the slot's concrete type is an error.
// Inputs are only classified, never mutated.
//
// Distinguish is parameterized over the slot types so other packages can
// build their own disambiguating constructors on the same policy;
// DistinguishArgs is the concrete form used by Elem.
func Distinguish[P, L, C any](isList func(any) bool, args ...any) (props P, listeners L, children C, err error) {
	if len(args) > 3 {
		err = fmt.Errorf("ariamis: %d positional arguments, want at most 3", len(args))
		return
	}

	if len(args) >= 1 && args[0] != nil {
		if isList(args[0]) {
			children, err = asSlot[C]("children", args[0])
		} else {
			props, err = asSlot[P]("properties", args[0])
		}
		if err != nil {
			return
		}
	}

	if len(args) >= 2 && args[1] != nil {
		if isList(args[1]) {
			children, err = asSlot[C]("children", args[1])
		} else {
			listeners, err = asSlot[L]("listeners", args[1])
		}
		if err != nil {
			return
		}
	}

	if len(args) == 3 && args[2] != nil {
		children, err = asSlot[C]("children", args[2])
		if err != nil {
			return
		}
	}

	return props, listeners, children, nil
}

// asSlot asserts a classified value to the slot's concrete type.
func asSlot[T any](slot string, v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("ariamis: %s argument is %T, want %T", slot, v, zero)
	}
	return t, nil
}

// DistinguishArgs resolves up to three optional positional values into the
// (properties, listeners, children) triple consumed by CreateElement,
// applying the Distinguish classification rules. Any slice or array is
// accepted where a child list is expected; a plain map[string]any is
// accepted for either map slot.
func DistinguishArgs(args ...any) (Props, Listeners, Children, error) {
	normalized := make([]any, len(args))
	for i, a := range args {
		if IsListShaped(a) {
			normalized[i] = toChildren(a)
		} else {
			normalized[i] = a
		}
	}
	if len(normalized) >= 1 {
		if m, ok := normalized[0].(map[string]any); ok {
			normalized[0] = Props(m)
		}
	}
	if len(normalized) >= 2 {
		if m, ok := normalized[1].(map[string]any); ok {
			normalized[1] = Listeners(m)
		}
	}
	return Distinguish[Props, Listeners, Children](IsListShaped, normalized...)
}

// toChildren converts any slice or array into a Children value without
// touching the original.
func toChildren(v any) Children {
	if c, ok := v.(Children); ok {
		return c
	}
	rv := reflect.ValueOf(v)
	out := make(Children, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
