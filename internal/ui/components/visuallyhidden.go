package components

// VisuallyHidden carries text for assistive technology only. It renders
// nothing and exposes the text as its accessibility label.
type VisuallyHidden struct {
	text string
	id   string
}

// NewVisuallyHidden creates hidden text.
func NewVisuallyHidden(text string) *VisuallyHidden {
	return &VisuallyHidden{text: text}
}

// WithID sets the id other components reference through DescribedBy.
func (v *VisuallyHidden) WithID(id string) *VisuallyHidden {
	v.id = id
	return v
}

// Text returns the hidden text.
func (v *VisuallyHidden) Text() string {
	return v.text
}

func (v *VisuallyHidden) View() string {
	return ""
}

func (v *VisuallyHidden) ViewWithContext(RenderContext) string {
	return ""
}

func (v *VisuallyHidden) Accessibility() Accessibility {
	return Accessibility{ID: v.id, Label: v.text}
}
