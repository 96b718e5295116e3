package components

// Text is a run of body text. It wraps to the width of the render context.
type Text struct {
	BaseComponent
	content string
}

// NewText renders content in the body typography.
func NewText(content string) *Text {
	t := &Text{BaseComponent: NewBaseComponent(), content: content}
	t.SetAppliers(Typography(TypographyBody))
	return t
}

// SmallText renders secondary text such as link targets.
func SmallText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyBodySmall), Foreground(PaletteDepth))
}

// WithAppliers replaces the text's theme-based styling.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if w := ctx.Width(); w > 0 {
		style = style.Width(w)
	}
	return style.Render(t.content)
}
