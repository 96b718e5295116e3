package components

import "sort"

var iconGlyphs = map[string]string{
	"arrowDown":      "▾",
	"arrowUp":        "▴",
	"arrowRight":     "▸",
	"arrowLeft":      "◂",
	"check":          "✓",
	"checkbox":       "☐",
	"checkboxFilled": "☒",
	"chevronDown":    "⌄",
	"chevronUp":      "⌃",
	"close":          "✕",
	"error":          "✗",
	"info":           "ℹ",
	"linkBreadcrumb": "›",
	"linkExternal":   "↗",
	"login":          "⇥",
	"menu":           "☰",
	"minus":          "−",
	"plus":           "+",
	"preview":        "◉",
	"search":         "⌕",
	"toggleOff":      "○",
	"toggleOn":       "●",
	"warning":        "⚠",
}

// IconNames lists the registered icons alphabetically.
func IconNames() []string {
	names := make([]string, 0, len(iconGlyphs))
	for name := range iconGlyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IconGlyph returns the glyph for name, or "?" for an unknown icon.
func IconGlyph(name string) string {
	if glyph, ok := iconGlyphs[name]; ok {
		return glyph
	}
	return "?"
}

// Icon renders a single named glyph. Without an aria label the icon is
// decorative and hidden from assistive technology.
type Icon struct {
	BaseComponent
	name      string
	ariaLabel string
	color     string
}

// NewIcon creates an icon by name.
func NewIcon(name string) *Icon {
	return &Icon{BaseComponent: NewBaseComponent(), name: name}
}

// WithAriaLabel makes the icon meaningful to screen readers.
func (i *Icon) WithAriaLabel(label string) *Icon {
	i.ariaLabel = label
	return i
}

// WithColor colours the glyph with a theme token. The default is accentBase.
func (i *Icon) WithColor(token string) *Icon {
	i.color = token
	return i
}

// Name returns the icon name.
func (i *Icon) Name() string {
	return i.name
}

func (i *Icon) View() string {
	return i.ViewWithContext(DefaultContext())
}

func (i *Icon) ViewWithContext(ctx RenderContext) string {
	token := i.color
	if token == "" {
		token = "accentBase"
	}
	style := TokenForeground(token)(i.ComputeStyle(ctx.Theme), ctx.Theme)
	return style.Render(IconGlyph(i.name))
}

func (i *Icon) Accessibility() Accessibility {
	if i.ariaLabel == "" {
		return Accessibility{Hidden: true}
	}
	return Accessibility{Role: "img", Label: i.ariaLabel}
}
