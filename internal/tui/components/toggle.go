package components

import (
	"github.com/charmbracelet/lipgloss"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// Toggle is an on/off switch. It shares the checkbox state machine and is
// announced with the switch role.
type Toggle struct {
	Checkbox
}

// NewToggle creates an uncontrolled switch that starts off.
func NewToggle(label string) *Toggle {
	t := &Toggle{Checkbox: Checkbox{field: newField("toggle", label), role: "switch"}}
	return t
}

func (t *Toggle) WithID(id string) *Toggle {
	t.id = id
	return t
}

func (t *Toggle) WithDefaultChecked(checked bool) *Toggle {
	t.Checkbox.WithDefaultChecked(checked)
	return t
}

func (t *Toggle) WithDisabled(disabled bool) *Toggle {
	t.disabled = disabled
	return t
}

// OnChange is called with the requested state.
func (t *Toggle) OnChange(fn func(on bool)) *Toggle {
	t.onClick = fn
	return t
}

func (t *Toggle) View() string {
	return t.ViewWithContext(ui.DefaultContext())
}

func (t *Toggle) ViewWithContext(ctx ui.RenderContext) string {
	t.report(ctx)

	palette := ctx.Theme.Palette
	track := lipgloss.NewStyle().Foreground(palette.Depth.Base)
	glyph := ui.IconGlyph("toggleOff") + "─"
	if t.checked {
		track = track.Foreground(palette.Success.Base)
		glyph = "─" + ui.IconGlyph("toggleOn")
	}
	if t.disabled {
		track = track.Foreground(palette.Depth.Muted)
	}

	label := ui.TypographyStyle(ctx.Theme, ui.TypographyBody)
	if t.disabled {
		label = label.Foreground(palette.Depth.Base)
	}
	if t.focused {
		label = label.Underline(true)
	}
	return track.Render("("+glyph+")") + " " + label.Render(t.label)
}
