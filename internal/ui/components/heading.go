package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// HeadingVariant is the heading level, which drives both semantics and styling.
type HeadingVariant string

const (
	HeadingH1Hero HeadingVariant = "h1hero"
	HeadingH1     HeadingVariant = "h1"
	HeadingH2     HeadingVariant = "h2"
	HeadingH3     HeadingVariant = "h3"
	HeadingH4     HeadingVariant = "h4"
	HeadingH5     HeadingVariant = "h5"
	HeadingH6     HeadingVariant = "h6"
)

// h6 shares the h5 look.
var headingTypography = map[HeadingVariant]TypographyVariant{
	HeadingH1Hero: TypographyHeading1Hero,
	HeadingH1:     TypographyHeading1,
	HeadingH2:     TypographyHeading2,
	HeadingH3:     TypographyHeading3,
	HeadingH4:     TypographyHeading4,
	HeadingH5:     TypographyHeading5,
	HeadingH6:     TypographyHeading5,
}

var headingSmallScreenTypography = map[HeadingVariant]TypographyVariant{
	HeadingH1Hero: TypographyHeading1HeroSmallScreen,
	HeadingH1:     TypographyHeading1SmallScreen,
	HeadingH2:     TypographyHeading2SmallScreen,
	HeadingH3:     TypographyHeading3SmallScreen,
	HeadingH4:     TypographyHeading4SmallScreen,
	HeadingH5:     TypographyHeading5SmallScreen,
	HeadingH6:     TypographyHeading5SmallScreen,
}

// Level is the semantic heading level; h1hero is announced as level 1.
func (v HeadingVariant) Level() int {
	switch v {
	case HeadingH1Hero, HeadingH1:
		return 1
	case HeadingH2:
		return 2
	case HeadingH3:
		return 3
	case HeadingH4:
		return 4
	case HeadingH5:
		return 5
	case HeadingH6:
		return 6
	default:
		return 0
	}
}

// Valid reports whether v is a known variant.
func (v HeadingVariant) Valid() bool {
	_, ok := headingTypography[v]
	return ok
}

// Heading renders a title in one of the heading styles. A heading without
// a valid variant renders nothing and reports a diagnostic.
type Heading struct {
	BaseComponent
	id          string
	text        string
	variant     HeadingVariant
	smallScreen bool
	color       string
	as          HeadingVariant
}

// NewHeading creates a heading.
func NewHeading(variant HeadingVariant, text string) *Heading {
	return &Heading{BaseComponent: NewBaseComponent(), variant: variant, text: text}
}

func (h *Heading) View() string {
	return h.ViewWithContext(DefaultContext())
}

func (h *Heading) ViewWithContext(ctx RenderContext) string {
	if !h.variant.Valid() {
		ctx.Diagnostics.MissingVariant("heading", h.text)
		return ""
	}

	typo := headingTypography[h.variant]
	if h.smallScreen {
		typo = headingSmallScreenTypography[h.variant]
	}

	style := h.ComputeStyle(ctx.Theme).Inherit(TypographyStyle(ctx.Theme, typo))
	if h.color != "" {
		if c, ok := ctx.Theme.Color(h.color); ok {
			style = style.Foreground(c)
		}
	} else if h.variant != HeadingH1Hero {
		style = style.Foreground(ctx.Theme.Palette.Surface.OnBase)
	}
	if w := ctx.Width(); w > 0 {
		style = style.MaxWidth(w)
	}
	return style.Render(h.text)
}

func (h *Heading) Accessibility() Accessibility {
	level := h.as.Level()
	if level == 0 {
		level = h.variant.Level()
	}
	return Accessibility{
		Role:        "heading",
		ID:          h.id,
		Label:       h.text,
		Description: "level " + strconv.Itoa(level),
		Hidden:      level == 0,
	}
}

// WithID sets the element id.
func (h *Heading) WithID(id string) *Heading {
	h.id = id
	return h
}

// WithSmallScreen switches to the compact typography.
func (h *Heading) WithSmallScreen(small bool) *Heading {
	h.smallScreen = small
	return h
}

// WithColor colours the text with a theme token such as "highlightBase".
// Unknown tokens fall back to the default text colour.
func (h *Heading) WithColor(token string) *Heading {
	h.color = token
	return h
}

// As overrides the announced level while keeping the variant's style.
func (h *Heading) As(level HeadingVariant) *Heading {
	h.as = level
	return h
}

func (h *Heading) WithStyle(style lipgloss.Style) *Heading {
	h.SetStyle(style)
	return h
}

// Variant returns the style variant.
func (h *Heading) Variant() HeadingVariant {
	return h.variant
}

// Text returns the heading text.
func (h *Heading) Text() string {
	return h.text
}
