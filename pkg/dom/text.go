package dom

// Text is a plain text node.
type Text struct {
	data   string
	parent container
}

// NewText creates a detached text node with the given content.
func NewText(data string) *Text {
	return &Text{data: data}
}

// Kind implements Node.
func (t *Text) Kind() NodeKind { return KindText }

// Parent implements Node.
func (t *Text) Parent() Node {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

func (t *Text) setParent(p container) { t.parent = p }

func (t *Text) detach() {
	if t.parent != nil {
		t.parent.removeChild(t)
		t.parent = nil
	}
}

// Data returns the text content.
func (t *Text) Data() string { return t.data }

// SetData replaces the text content.
func (t *Text) SetData(data string) { t.data = data }
