package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChipVariant selects the chip look.
type ChipVariant int

const (
	ChipStatic ChipVariant = iota
	ChipRemovable
	ChipDisabled
)

// Chip is a small pill. Static chips only label something; removable chips
// act as a button that removes their value, and show a close glyph.
type Chip struct {
	BaseComponent
	id          string
	text        string
	removable   bool
	disabled    bool
	focused     bool
	actionLabel string
}

// NewStaticChip creates a non-interactive chip.
func NewStaticChip(text string) *Chip {
	return &Chip{BaseComponent: NewBaseComponent(), text: text}
}

// NewChip creates a removable chip. actionLabel is announced after the text,
// e.g. "Remove".
func NewChip(text, actionLabel string) *Chip {
	return &Chip{
		BaseComponent: NewBaseComponent(),
		text:          text,
		removable:     true,
		actionLabel:   actionLabel,
	}
}

func (c *Chip) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Chip) ViewWithContext(ctx RenderContext) string {
	content := c.text
	if c.removable && !c.disabled {
		content += " " + IconGlyph("close")
	}

	style := c.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(c.variant()); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	if c.focused && !c.disabled {
		style = style.Underline(true).Background(ctx.Theme.Palette.Highlight.Contrast)
	}
	return style.Render(content)
}

func (c *Chip) variant() ChipVariant {
	switch {
	case c.disabled:
		return ChipDisabled
	case c.removable:
		return ChipRemovable
	default:
		return ChipStatic
	}
}

func (c *Chip) Accessibility() Accessibility {
	if !c.removable {
		return Accessibility{ID: c.id, Label: c.text, Disabled: c.disabled}
	}
	label := c.text
	if c.actionLabel != "" {
		label += " " + c.actionLabel
	}
	return Accessibility{Role: "button", ID: c.id, Label: label, Disabled: c.disabled}
}

// WithID sets the element id.
func (c *Chip) WithID(id string) *Chip {
	c.id = id
	return c
}

// WithDisabled greys the chip out; a disabled removable chip cannot be removed.
func (c *Chip) WithDisabled(disabled bool) *Chip {
	c.disabled = disabled
	return c
}

// WithFocused marks the chip as the keyboard target.
func (c *Chip) WithFocused(focused bool) *Chip {
	c.focused = focused
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Chip) WithAppliers(appliers ...StyleFunc) *Chip {
	c.AddAppliers(appliers...)
	return c
}

// Text returns the chip text.
func (c *Chip) Text() string {
	return c.text
}

// IsRemovable reports whether the chip can currently be removed.
func (c *Chip) IsRemovable() bool {
	return c.removable && !c.disabled
}

// ChipList lays chips out in rows separated by a space, wrapping at the
// available width.
type ChipList struct {
	chips []*Chip
	label string
}

// NewChipList creates a list of chips. label names the group for screen readers.
func NewChipList(label string, chips ...*Chip) *ChipList {
	return &ChipList{chips: chips, label: label}
}

// Chips returns the chips in order.
func (l *ChipList) Chips() []*Chip {
	return l.chips
}

func (l *ChipList) View() string {
	return l.ViewWithContext(DefaultContext())
}

func (l *ChipList) ViewWithContext(ctx RenderContext) string {
	if len(l.chips) == 0 {
		return ""
	}
	width := ctx.Width()

	var rows []string
	var row []string
	rowWidth := 0
	for _, chip := range l.chips {
		view := chip.ViewWithContext(ctx)
		w := lipgloss.Width(view)
		if width > 0 && len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, view)
		rowWidth += w
	}
	rows = append(rows, strings.Join(row, " "))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (l *ChipList) Accessibility() Accessibility {
	return Accessibility{Role: "list", Label: l.label}
}
