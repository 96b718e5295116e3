package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/valger11/suomifi-ui-components/internal/expander"
	core "github.com/valger11/suomifi-ui-components/internal/ui"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// Expander shows a title button that opens and closes a content region.
type Expander struct {
	panel   *expander.Panel
	title   string
	content core.Renderable
	focused bool
}

// NewExpander creates a detached expander. Pass opts.Open to control it.
func NewExpander(id, title string, content core.Renderable, opts expander.Options) *Expander {
	if id == "" {
		id = autoID("expander")
	}
	return &Expander{panel: expander.NewPanel(id, opts), title: title, content: content}
}

func (e *Expander) Panel() *expander.Panel { return e.panel }
func (e *Expander) Title() string          { return e.title }
func (e *Expander) IsOpen() bool           { return e.panel.IsOpen() }

// Toggle opens or closes the expander.
func (e *Expander) Toggle() {
	e.panel.Toggle()
}

func (e *Expander) Update(msg tea.Msg) tea.Cmd {
	if !e.focused {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, Keys.Toggle, Keys.Submit) {
		e.Toggle()
	}
	return nil
}

func (e *Expander) Focus() tea.Cmd {
	e.focused = true
	return nil
}

func (e *Expander) Blur()         { e.focused = false }
func (e *Expander) Focused() bool { return e.focused }

func (e *Expander) View() string {
	return e.ViewWithContext(ui.DefaultContext())
}

func (e *Expander) ViewWithContext(ctx ui.RenderContext) string {
	palette := ctx.Theme.Palette
	glyph := ui.IconGlyph("arrowRight")
	if e.IsOpen() {
		glyph = ui.IconGlyph("arrowDown")
	}
	title := ui.TypographyStyle(ctx.Theme, ui.TypographyBodySemiBold).Foreground(palette.Highlight.Base)
	if e.focused {
		title = title.Underline(true)
	}
	frame := lipgloss.NewStyle().
		Border(ui.BorderForVariant(ctx.Theme, ui.BorderVariantNormal), false, false, true, false).
		BorderForeground(palette.Depth.Muted)
	if w := ctx.Width(); w > 0 {
		frame = frame.Width(w)
	}

	head := title.Render(glyph + " " + e.title)
	if !e.IsOpen() || e.content == nil {
		return frame.Render(head)
	}
	body := render(ctx, e.content)
	return frame.Render(head + "\n" + lipgloss.NewStyle().PaddingLeft(2).Render(body))
}

// Accessibility describes the title button.
func (e *Expander) Accessibility() ui.Accessibility {
	return ui.Accessibility{
		Role:     "button",
		ID:       e.panel.TitleID(),
		Label:    e.title,
		Controls: e.panel.ContentID(),
		Expanded: ui.Bool(e.IsOpen()),
	}
}

// render draws r with ctx when it supports layout context.
func render(ctx ui.RenderContext, r core.Renderable) string {
	if cr, ok := r.(ui.ContextualRenderable); ok {
		return cr.ViewWithContext(ctx)
	}
	return r.View()
}
