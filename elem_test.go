package ariamis

import (
	"strings"
	"testing"

	"github.com/Deskbot/Ariamis/pkg/dom"
)

func TestElem(t *testing.T) {
	t.Run("tag only", func(t *testing.T) {
		el := Elem("div")
		if el.Tag() != "div" {
			t.Errorf("Tag = %v, want div", el.Tag())
		}
		if len(el.Properties()) != 0 {
			t.Errorf("Properties len = %v, want 0", len(el.Properties()))
		}
		if len(el.ListenerEvents()) != 0 {
			t.Errorf("ListenerEvents = %v, want none", el.ListenerEvents())
		}
		if len(el.Children()) != 0 {
			t.Errorf("Children len = %v, want 0", len(el.Children()))
		}
	})

	t.Run("full call", func(t *testing.T) {
		calls := 0
		el := Elem("div",
			Props{"id": "x"},
			Listeners{"click": func(*dom.Event) { calls++ }},
			Children{"hi"},
		)

		if got, _ := el.Property("id"); got != "x" {
			t.Errorf("id = %v, want x", got)
		}
		if el.ListenerCount("click") != 1 {
			t.Fatalf("click listeners = %v, want 1", el.ListenerCount("click"))
		}
		el.DispatchEvent(&dom.Event{Type: "click"})
		if calls != 1 {
			t.Errorf("handler calls = %v, want 1", calls)
		}

		children := el.Children()
		if len(children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(children))
		}
		text, ok := children[0].(*dom.Text)
		if !ok {
			t.Fatalf("child is %T, want *dom.Text", children[0])
		}
		if text.Data() != "hi" {
			t.Errorf("child text = %v, want hi", text.Data())
		}
	})

	t.Run("once listener", func(t *testing.T) {
		calls := 0
		el := Elem("button",
			Props{},
			Listeners{"click": Once(func(*dom.Event) { calls++ })},
		)

		el.DispatchEvent(&dom.Event{Type: "click"})
		el.DispatchEvent(&dom.Event{Type: "click"})
		if calls != 1 {
			t.Errorf("handler calls = %v, want 1", calls)
		}
	})

	t.Run("listener with explicit options", func(t *testing.T) {
		calls := 0
		el := Elem("button",
			Props{},
			Listeners{"click": Listener{
				Handler: func(*dom.Event) { calls++ },
				Options: dom.AddEventListenerOptions{Once: true},
			}},
		)

		el.DispatchEvent(&dom.Event{Type: "click"})
		el.DispatchEvent(&dom.Event{Type: "click"})
		if calls != 1 {
			t.Errorf("handler calls = %v, want 1", calls)
		}
	})

	t.Run("nested construction", func(t *testing.T) {
		list := Ul(Children{
			Li(Children{"one"}),
			Li(Children{"two"}),
		})

		children := list.Children()
		if len(children) != 2 {
			t.Fatalf("Children len = %v, want 2", len(children))
		}
		for i, want := range []string{"one", "two"} {
			li, ok := children[i].(*dom.Element)
			if !ok {
				t.Fatalf("child %d is %T, want *dom.Element", i, children[i])
			}
			if li.Tag() != "li" {
				t.Errorf("child %d tag = %v, want li", i, li.Tag())
			}
			if li.TextContent() != want {
				t.Errorf("child %d text = %v, want %v", i, li.TextContent(), want)
			}
		}
	})

	t.Run("invalid property panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for mistyped property")
			}
		}()
		Elem("div", Props{"id": 5})
	})
}

func TestCreateElement(t *testing.T) {
	t.Run("invalid tag", func(t *testing.T) {
		_, err := CreateElement("<div>", nil, nil, nil)
		if err == nil {
			t.Fatal("expected error for invalid tag name")
		}
	})

	t.Run("property type mismatch", func(t *testing.T) {
		_, err := CreateElement("div", Props{"id": 5}, nil, nil)
		if err == nil {
			t.Fatal("expected error for mistyped property")
		}
		if !strings.Contains(err.Error(), "id") {
			t.Errorf("error %q does not name the property", err)
		}
	})

	t.Run("unsupported listener entry", func(t *testing.T) {
		_, err := CreateElement("div", nil, Listeners{"click": 42}, nil)
		if err == nil {
			t.Fatal("expected error for int listener entry")
		}
	})

	t.Run("unsupported child", func(t *testing.T) {
		_, err := CreateElement("div", nil, nil, Children{42})
		if err == nil {
			t.Fatal("expected error for int child")
		}
	})

	t.Run("nil children skipped", func(t *testing.T) {
		el, err := CreateElement("div", nil, nil, Children{nil, "a", nil})
		if err != nil {
			t.Fatalf("CreateElement() error = %v", err)
		}
		if len(el.Children()) != 1 {
			t.Errorf("Children len = %v, want 1", len(el.Children()))
		}
	})

	t.Run("children appended in order", func(t *testing.T) {
		a := Span(Children{"a"})
		b := Span(Children{"b"})
		el, err := CreateElement("div", nil, nil, Children{a, b})
		if err != nil {
			t.Fatalf("CreateElement() error = %v", err)
		}
		children := el.Children()
		if len(children) != 2 {
			t.Fatalf("Children len = %v, want 2", len(children))
		}
		if children[0] != dom.Node(a) || children[1] != dom.Node(b) {
			t.Error("children are not the same nodes in the same order")
		}
	})
}
