package render

import (
	"bytes"
	"strings"
	"testing"

	ariamis "github.com/Deskbot/Ariamis"
	"github.com/Deskbot/Ariamis/pkg/dom"
)

func TestRenderText(t *testing.T) {
	renderer := New(Config{})

	html, err := renderer.ToString(ariamis.Text("Hello, World!"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := New(Config{})

	html, err := renderer.ToString(ariamis.Text("<script>alert('xss')</script>"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := New(Config{})

	node := ariamis.Div(
		ariamis.Props{"className": "container"},
		ariamis.Children{
			ariamis.H1(ariamis.Children{"Title"}),
			ariamis.P(ariamis.Children{"Content"}),
		},
	)
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<div class="container">`) {
		t.Errorf("should contain div with class, got %q", html)
	}
	if !strings.Contains(html, `<h1>Title</h1>`) {
		t.Errorf("should contain h1, got %q", html)
	}
	if !strings.Contains(html, `<p>Content</p>`) {
		t.Errorf("should contain p, got %q", html)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := New(Config{})

	node := ariamis.A(ariamis.Props{
		"title": "home",
		"href":  "/",
		"id":    "nav",
	})
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<a href="/" id="nav" title="home"></a>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderPropertyNames(t *testing.T) {
	renderer := New(Config{})

	tests := []struct {
		name string
		node *dom.Element
		want string
	}{
		{
			name: "className becomes class",
			node: ariamis.Span(ariamis.Props{"className": "hint"}),
			want: `<span class="hint"></span>`,
		},
		{
			name: "htmlFor becomes for",
			node: ariamis.Label(ariamis.Props{"htmlFor": "email"}),
			want: `<label for="email"></label>`,
		},
		{
			name: "tabIndex becomes tabindex",
			node: ariamis.Button(ariamis.Props{"tabIndex": 2}),
			want: `<button tabindex="2"></button>`,
		},
		{
			name: "colSpan becomes colspan",
			node: ariamis.Td(ariamis.Props{"colSpan": 3}),
			want: `<td colspan="3"></td>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.ToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := New(Config{})

	tests := []struct {
		name string
		node *dom.Element
		want string
	}{
		{
			name: "input",
			node: ariamis.Input(ariamis.Props{"type": "text", "name": "email"}),
			want: `<input name="email" type="text">`,
		},
		{
			name: "br",
			node: ariamis.Br(),
			want: `<br>`,
		},
		{
			name: "img",
			node: ariamis.Img(ariamis.Props{"src": "/image.png", "alt": "test"}),
			want: `<img alt="test" src="/image.png">`,
		},
		{
			name: "hr",
			node: ariamis.Hr(),
			want: `<hr>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.ToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
			// Verify no closing tag
			if strings.Contains(html, "</"+tt.name+">") {
				t.Errorf("void element should not have closing tag, got %q", html)
			}
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := New(Config{})

	node := ariamis.Input(ariamis.Props{
		"type":     "checkbox",
		"checked":  true,
		"disabled": true,
	})
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, " checked") {
		t.Errorf("should contain checked, got %q", html)
	}
	if !strings.Contains(html, " disabled") {
		t.Errorf("should contain disabled, got %q", html)
	}
	if strings.Contains(html, `checked="true"`) {
		t.Errorf("boolean attrs should not have values, got %q", html)
	}
}

func TestRenderFalseBooleanAttributes(t *testing.T) {
	renderer := New(Config{})

	node := ariamis.Input(ariamis.Props{"type": "checkbox", "checked": false})
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<input type="checkbox">`
	if html != want {
		t.Errorf("false boolean attr should be omitted, got %q, want %q", html, want)
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := New(Config{})

	node := ariamis.Div(ariamis.Props{"title": `a "quoted" <value>`})
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, `"quoted"`) {
		t.Errorf("attribute quotes should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&quot;quoted&quot;") {
		t.Errorf("should contain escaped quotes, got %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	renderer := New(Config{})

	node := ariamis.Fragment(ariamis.Children{
		ariamis.Div(ariamis.Children{"One"}),
		ariamis.Div(ariamis.Children{"Two"}),
	})
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "<div>One</div><div>Two</div>"
	if html != expected {
		t.Errorf("got %q, want %q", html, expected)
	}
}

func TestRenderEventMarkers(t *testing.T) {
	renderer := New(Config{EventMarkers: true})

	handler := func(*dom.Event) {}
	node := ariamis.Button(
		ariamis.Props{},
		ariamis.Listeners{"click": handler, "focus": handler},
		ariamis.Children{"Click"},
	)
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `data-on-click="true"`) {
		t.Errorf("should contain click marker, got %q", html)
	}
	if !strings.Contains(html, `data-on-focus="true"`) {
		t.Errorf("should contain focus marker, got %q", html)
	}
}

func TestRenderEventMarkersDisabled(t *testing.T) {
	renderer := New(Config{})

	node := ariamis.Button(ariamis.Props{}, ariamis.Listeners{"click": func(*dom.Event) {}})
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "data-on-") {
		t.Errorf("markers should be off by default, got %q", html)
	}
}

func TestRenderRawContent(t *testing.T) {
	renderer := New(Config{})

	node := ariamis.RawHTML("<strong>Bold</strong>")
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<strong>Bold</strong>" {
		t.Errorf("got %q, want %q", html, "<strong>Bold</strong>")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := New(Config{Pretty: true, Indent: "  "})

	node := ariamis.Div(ariamis.Children{
		ariamis.H1(ariamis.Children{"Title"}),
		ariamis.P(ariamis.Children{"Content"}),
	})
	html, err := renderer.ToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output should contain newlines, got %q", html)
	}
	if !strings.Contains(html, "  <h1>") {
		t.Errorf("pretty output should have indentation, got %q", html)
	}
}

func TestRenderNilNode(t *testing.T) {
	renderer := New(Config{})

	html, err := renderer.ToString(nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("nil node should produce empty string, got %q", html)
	}
}

func TestRenderToWriter(t *testing.T) {
	renderer := New(Config{})

	var buf bytes.Buffer
	node := ariamis.P(ariamis.Children{"streamed"})
	if err := renderer.ToWriter(&buf, node); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "<p>streamed</p>" {
		t.Errorf("got %q, want %q", buf.String(), "<p>streamed</p>")
	}
}

func TestRenderDefaultToString(t *testing.T) {
	html, err := ToString(ariamis.Span(ariamis.Children{"hi"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<span>hi</span>" {
		t.Errorf("got %q, want %q", html, "<span>hi</span>")
	}
}
