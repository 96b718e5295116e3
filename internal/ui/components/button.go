package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects one of the design system's button looks.
type ButtonVariant int

const (
	ButtonDefault ButtonVariant = iota
	ButtonSecondary
	ButtonSecondaryNoBorder
	ButtonInverted
	ButtonLink
)

var buttonVariantNames = map[string]ButtonVariant{
	"default":            ButtonDefault,
	"secondary":          ButtonSecondary,
	"secondary-noborder": ButtonSecondaryNoBorder,
	"inverted":           ButtonInverted,
	"link":               ButtonLink,
}

// ParseButtonVariant maps a variant name to its value.
func ParseButtonVariant(name string) (ButtonVariant, bool) {
	v, ok := buttonVariantNames[name]
	return v, ok
}

// Button renders an action. Interactive widgets draw their triggers with it
// and toggle the focused state themselves.
type Button struct {
	BaseComponent
	id        string
	label     string
	ariaLabel string
	variant   ButtonVariant
	disabled  bool
	focused   bool
	fullWidth bool
	icon      string
	iconRight string
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonDefault,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	content := b.label
	if b.icon != "" {
		content = IconGlyph(b.icon) + " " + content
	}
	if b.iconRight != "" {
		content = content + " " + IconGlyph(b.iconRight)
	}

	style := b.computeStyle(ctx.Theme)
	if b.fullWidth {
		if w := ctx.Width(); w > 0 {
			style = style.Width(w - style.GetHorizontalBorderSize() - style.GetHorizontalMargins()).Align(lipgloss.Center)
		}
	}
	return style.Render(content)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	if b.disabled {
		depth := theme.Palette.Depth
		style = style.Foreground(depth.Base).BorderForeground(depth.Base)
		if b.variant == ButtonDefault || b.variant == ButtonInverted {
			style = style.Background(depth.Muted)
		}
		return style
	}

	if b.focused {
		style = style.Underline(true).Bold(true)
		if _, _, _, _, hasBorder := style.GetBorder(); hasBorder {
			style = style.BorderForeground(theme.Palette.Accent.Base)
		}
	}
	return style
}

// Accessibility describes the button for assistive technology.
func (b *Button) Accessibility() Accessibility {
	label := b.ariaLabel
	if label == "" {
		label = b.label
	}
	return Accessibility{Role: "button", ID: b.id, Label: label, Disabled: b.disabled}
}

// WithID sets the element id.
func (b *Button) WithID(id string) *Button {
	b.id = id
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocused marks the button as holding keyboard focus.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithFullWidth stretches the button to the available width.
func (b *Button) WithFullWidth(full bool) *Button {
	b.fullWidth = full
	return b
}

// WithIcon places a named icon before the label.
func (b *Button) WithIcon(name string) *Button {
	b.icon = name
	return b
}

// WithIconRight places a named icon after the label.
func (b *Button) WithIconRight(name string) *Button {
	b.iconRight = name
	return b
}

// WithAriaLabel overrides the announced label, e.g. for icon-only buttons.
func (b *Button) WithAriaLabel(label string) *Button {
	b.ariaLabel = label
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Variant returns the button variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsFocused reports the focus state.
func (b *Button) IsFocused() bool {
	return b.focused
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonSecondary)
}

// InvertedButton creates a button for dark backgrounds.
func InvertedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonInverted)
}

// LinkButton creates a button that looks like a link.
func LinkButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonLink)
}
