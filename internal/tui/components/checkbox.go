package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// CheckboxVariant is the checkbox size.
type CheckboxVariant int

const (
	CheckboxSmall CheckboxVariant = iota
	CheckboxLarge
)

// Checkbox is a two-state choice. Without SetChecked it keeps its own state;
// once controlled, the caller decides the value and OnClick only reports the
// requested state.
type Checkbox struct {
	field
	variant    CheckboxVariant
	checked    bool
	controlled bool
	name       string
	value      string
	hasName    bool
	hasValue   bool
	onClick    func(checked bool)
	role       string
}

// NewCheckbox creates an unchecked, uncontrolled checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{field: newField("checkbox", label), role: "checkbox"}
}

func (c *Checkbox) WithID(id string) *Checkbox {
	c.id = id
	return c
}

func (c *Checkbox) WithVariant(v CheckboxVariant) *Checkbox {
	c.variant = v
	return c
}

// WithDefaultChecked sets the initial state of an uncontrolled checkbox.
func (c *Checkbox) WithDefaultChecked(checked bool) *Checkbox {
	if !c.controlled {
		c.checked = checked
	}
	return c
}

func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

// WithStatus sets the validation state and its message.
func (c *Checkbox) WithStatus(status ui.Status, text string) *Checkbox {
	c.status = status
	c.statusText = text
	return c
}

func (c *Checkbox) WithHintText(text string) *Checkbox {
	c.hintText = text
	return c
}

// WithName sets the form name. An empty name is reported as a diagnostic.
func (c *Checkbox) WithName(name string) *Checkbox {
	c.name, c.hasName = name, true
	return c
}

// WithValue sets the form value. An empty value is reported as a diagnostic.
func (c *Checkbox) WithValue(value string) *Checkbox {
	c.value, c.hasValue = value, true
	return c
}

func (c *Checkbox) OnClick(fn func(checked bool)) *Checkbox {
	c.onClick = fn
	return c
}

// SetChecked makes the checkbox controlled and sets its value.
func (c *Checkbox) SetChecked(checked bool) {
	c.controlled = true
	c.checked = checked
}

func (c *Checkbox) Checked() bool      { return c.checked }
func (c *Checkbox) IsControlled() bool { return c.controlled }
func (c *Checkbox) ID() string         { return c.id }
func (c *Checkbox) Name() string       { return c.name }
func (c *Checkbox) Value() string      { return c.value }

// Toggle requests the opposite state.
func (c *Checkbox) Toggle() {
	if c.disabled {
		return
	}
	next := !c.checked
	if !c.controlled {
		c.checked = next
	}
	if c.onClick != nil {
		c.onClick(next)
	}
}

func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, Keys.Toggle, Keys.Submit) {
		c.Toggle()
	}
	return nil
}

func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *Checkbox) Blur()         { c.focused = false }
func (c *Checkbox) Focused() bool { return c.focused }

func (c *Checkbox) View() string {
	return c.ViewWithContext(ui.DefaultContext())
}

func (c *Checkbox) ViewWithContext(ctx ui.RenderContext) string {
	c.report(ctx)

	palette := ctx.Theme.Palette
	box := lipgloss.NewStyle().Foreground(palette.Depth.Base)
	switch {
	case c.disabled:
		box = box.Foreground(palette.Depth.Muted)
	case c.status == ui.StatusError:
		box = box.Foreground(palette.Alert.Base)
	case c.checked:
		box = box.Foreground(palette.Highlight.Base)
	}

	mark := " "
	if c.checked {
		mark = ui.IconGlyph("check")
	}
	glyph := "[" + mark + "]"
	if c.variant == CheckboxLarge {
		glyph = "[ " + mark + " ]"
	}

	label := ui.TypographyStyle(ctx.Theme, ui.TypographyBody)
	if c.disabled {
		label = label.Foreground(palette.Depth.Base)
	}
	if c.focused {
		label = label.Underline(true)
	}

	control := box.Render(glyph) + " " + label.Render(c.label)
	parts := []string{control}
	if h := c.hint(); h != nil {
		parts = append(parts, h.ViewWithContext(ctx))
	}
	if s := c.statusLine(); s != nil && !c.disabled {
		parts = append(parts, s.ViewWithContext(ctx))
	}
	return joinLines(parts...)
}

func (c *Checkbox) report(ctx ui.RenderContext) {
	if c.label == "" {
		ctx.Diagnostics.MissingLabel(c.role, c.id)
	}
	if c.hasName && c.name == "" {
		ctx.Diagnostics.EmptyAttribute(c.role, c.id, "name")
	}
	if c.hasValue && c.value == "" {
		ctx.Diagnostics.EmptyAttribute(c.role, c.id, "value")
	}
}

func (c *Checkbox) Accessibility() ui.Accessibility {
	return ui.Accessibility{
		Role:        c.role,
		ID:          c.id,
		Label:       c.label,
		DescribedBy: c.describedBy(),
		Checked:     ui.Bool(c.checked),
		Invalid:     c.status == ui.StatusError,
		Disabled:    c.disabled,
	}
}
