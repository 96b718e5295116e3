package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/valger11/suomifi-ui-components/internal/expander"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// ExpanderGroup lists expanders under an "open all" / "close all" button.
// The button label follows the group's aggregate state and the left rule is
// accented while any expander is open.
type ExpanderGroup struct {
	group        *expander.Group
	expanders    []*Expander
	openAllText  string
	closeAllText string
	ariaOpenAll  string
	ariaCloseAll string
	focused      bool
	// focus is -1 for the all button, otherwise an index into expanders.
	focus int
}

// NewExpanderGroup creates a group and attaches the given expanders to it.
func NewExpanderGroup(openAllText, closeAllText string, expanders ...*Expander) *ExpanderGroup {
	g := &ExpanderGroup{
		group:        expander.NewGroup(),
		openAllText:  openAllText,
		closeAllText: closeAllText,
		focus:        -1,
	}
	g.Add(expanders...)
	return g
}

// WithAriaTexts sets the screen reader labels of the all button.
func (g *ExpanderGroup) WithAriaTexts(openAll, closeAll string) *ExpanderGroup {
	g.ariaOpenAll = openAll
	g.ariaCloseAll = closeAll
	return g
}

// Add attaches more expanders.
func (g *ExpanderGroup) Add(expanders ...*Expander) {
	for _, e := range expanders {
		e.panel.Attach(g.group)
		g.expanders = append(g.expanders, e)
	}
}

// Remove detaches the expander at index i.
func (g *ExpanderGroup) Remove(i int) {
	if i < 0 || i >= len(g.expanders) {
		return
	}
	g.expanders[i].panel.Detach()
	g.expanders = append(g.expanders[:i], g.expanders[i+1:]...)
	if g.focus >= len(g.expanders) {
		g.focus = len(g.expanders) - 1
	}
}

func (g *ExpanderGroup) Group() *expander.Group   { return g.group }
func (g *ExpanderGroup) Expanders() []*Expander { return g.expanders }

// ToggleAll opens every expander unless all are already open, in which case
// it closes them.
func (g *ExpanderGroup) ToggleAll() {
	g.group.RequestToggleAll()
}

// ButtonText is the visible label of the all button.
func (g *ExpanderGroup) ButtonText() string {
	if g.group.AllOpen() {
		return g.closeAllText
	}
	return g.openAllText
}

func (g *ExpanderGroup) Update(msg tea.Msg) tea.Cmd {
	if !g.focused {
		return nil
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(k, Keys.Down):
		g.moveFocus(1)
	case key.Matches(k, Keys.Up):
		g.moveFocus(-1)
	case key.Matches(k, Keys.Toggle, Keys.Submit):
		if g.focus < 0 {
			g.ToggleAll()
		} else {
			g.expanders[g.focus].Toggle()
		}
	}
	return nil
}

func (g *ExpanderGroup) moveFocus(delta int) {
	next := g.focus + delta
	if next < -1 || next >= len(g.expanders) {
		return
	}
	if g.focus >= 0 {
		g.expanders[g.focus].Blur()
	}
	g.focus = next
	if g.focus >= 0 {
		g.expanders[g.focus].Focus()
	}
}

// FocusIndex is -1 while the all button has focus.
func (g *ExpanderGroup) FocusIndex() int { return g.focus }

func (g *ExpanderGroup) Focus() tea.Cmd {
	g.focused = true
	if g.focus >= 0 {
		g.expanders[g.focus].Focus()
	}
	return nil
}

func (g *ExpanderGroup) Blur() {
	g.focused = false
	if g.focus >= 0 {
		g.expanders[g.focus].Blur()
	}
}

func (g *ExpanderGroup) Focused() bool { return g.focused }

func (g *ExpanderGroup) View() string {
	return g.ViewWithContext(ui.DefaultContext())
}

func (g *ExpanderGroup) ViewWithContext(ctx ui.RenderContext) string {
	button := ui.NewButton(g.ButtonText()).
		WithVariant(ui.ButtonSecondaryNoBorder).
		WithFocused(g.focused && g.focus < 0).
		ViewWithContext(ctx)
	parts := []string{button}
	inner := ctx
	if w := ctx.Width(); w > 1 {
		inner = ctx.WithConstraints(ui.WithMaxWidth(w - 1))
	}
	for _, e := range g.expanders {
		parts = append(parts, e.ViewWithContext(inner))
	}
	frame := lipgloss.NewStyle().
		Border(ui.BorderForVariant(ctx.Theme, ui.BorderVariantNormal), false, false, false, true).
		BorderForeground(g.ruleColor(ctx.Theme))
	return frame.Render(joinLines(parts...))
}

func (g *ExpanderGroup) ruleColor(theme ui.Theme) lipgloss.AdaptiveColor {
	if g.group.AnyOpen() {
		return theme.Palette.Highlight.Base
	}
	return theme.Palette.Depth.Muted
}

// Accessibility describes the all button.
func (g *ExpanderGroup) Accessibility() ui.Accessibility {
	label := g.openAllText
	if g.ariaOpenAll != "" {
		label = g.ariaOpenAll
	}
	if g.group.AllOpen() {
		label = g.closeAllText
		if g.ariaCloseAll != "" {
			label = g.ariaCloseAll
		}
	}
	return ui.Accessibility{Role: "button", Label: label, Expanded: ui.Bool(g.group.AllOpen())}
}
