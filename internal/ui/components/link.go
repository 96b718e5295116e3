package components

// Link renders navigational text in the highlight colour.
type Link struct {
	BaseComponent
	text           string
	href           string
	external       bool
	newWindowLabel string
	showHref       bool
	focused        bool
}

// NewLink creates an in-site link.
func NewLink(text, href string) *Link {
	return &Link{BaseComponent: NewBaseComponent(), text: text, href: href}
}

// NewExternalLink creates a link that opens in a new window. newWindowLabel
// is read after the text by screen readers, e.g. "Opens in a new window".
func NewExternalLink(text, href, newWindowLabel string) *Link {
	l := NewLink(text, href)
	l.external = true
	l.newWindowLabel = newWindowLabel
	return l
}

// WithShowHref prints the target after the text, for terminals without
// hyperlink support.
func (l *Link) WithShowHref(show bool) *Link {
	l.showHref = show
	return l
}

// WithFocused marks the link as the keyboard target.
func (l *Link) WithFocused(focused bool) *Link {
	l.focused = focused
	return l
}

// Href returns the link target.
func (l *Link) Href() string {
	return l.href
}

// Text returns the link text.
func (l *Link) Text() string {
	return l.text
}

func (l *Link) View() string {
	return l.ViewWithContext(DefaultContext())
}

func (l *Link) ViewWithContext(ctx RenderContext) string {
	style := l.ComputeStyle(ctx.Theme).
		Inherit(TypographyStyle(ctx.Theme, TypographyBody)).
		Foreground(ctx.Theme.Palette.Highlight.Base).
		Underline(true)
	if l.focused {
		style = style.Background(ctx.Theme.Palette.Highlight.Muted).Bold(true)
	}

	out := style.Render(l.text)
	if l.external {
		out += " " + NewIcon("linkExternal").WithColor("highlightBase").ViewWithContext(ctx)
	}
	if l.showHref && l.href != "" {
		out += " " + SmallText("("+l.href+")").ViewWithContext(ctx)
	}
	return out
}

func (l *Link) Accessibility() Accessibility {
	label := l.text
	if l.external && l.newWindowLabel != "" {
		label += l.newWindowLabel
	}
	return Accessibility{Role: "link", Label: label, Description: l.href}
}
