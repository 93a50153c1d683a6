// Package demo builds the interactive sample tree served by the CLI.
package demo

import (
	"fmt"
	"strconv"

	. "github.com/Deskbot/Ariamis/el"
	"github.com/Deskbot/Ariamis/pkg/dom"
)

// Page is a live tree with a click counter and a dismissable tip. The CLI
// renders it and forwards browser clicks into it.
type Page struct {
	root    *dom.Element
	counter *dom.Element
	count   int
}

// NewPage builds the sample tree. Every construct the library offers shows
// up once: properties, bare listeners, a Once listener, child lists,
// fragments, and raw markup.
func NewPage() *Page {
	p := &Page{}

	p.counter = Span(Props{"id": "count"}, Children{"0"})

	increment := Button(
		Props{"id": "increment", "className": "primary"},
		Listeners{"click": func(*Event) { p.increment() }},
		Children{"+1"},
	)

	tip := P(Props{"id": "tip", "className": "tip"}, Children{
		"Click the button to increment the counter.",
	})

	dismiss := Button(
		Props{"id": "dismiss"},
		Listeners{"click": Once(func(*Event) {
			if parent, ok := tip.Parent().(*dom.Element); ok {
				parent.RemoveChild(tip)
			}
		})},
		Children{"Dismiss tip"},
	)

	steps := Fragment(Children{
		Li(Children{"distinguish the arguments"}),
		Li(Children{"build the element"}),
		Li(Children{"append the children"}),
	})

	p.root = Div(Props{"id": "app"}, Children{
		H1(Children{"Ariamis demo"}),
		RawHTML("<p>Each block below was built with <em>one call</em>.</p>"),
		tip,
		dismiss,
		Div(Props{"className": "counter"}, Children{p.counter, " ", increment}),
		Ul(Props{"id": "pipeline"}, Children{steps}),
	})

	return p
}

// Root returns the page's root element.
func (p *Page) Root() *dom.Element { return p.root }

// Count returns the current counter value.
func (p *Page) Count() int { return p.count }

func (p *Page) increment() {
	p.count++
	p.counter.SetProperty("textContent", strconv.Itoa(p.count))
}

// Click dispatches a click event to the element with the given id.
func (p *Page) Click(id string) error {
	target := dom.FindByID(p.root, id)
	if target == nil {
		return fmt.Errorf("demo: no element with id %q", id)
	}
	target.DispatchEvent(&dom.Event{Type: "click"})
	return nil
}
