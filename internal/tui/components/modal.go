package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	core "github.com/valger11/suomifi-ui-components/internal/ui"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// Modal is a dialog with a title, content and footer buttons. While open it
// keeps keyboard focus: tab cycles through the footer buttons and Escape
// closes it.
type Modal struct {
	id       string
	title    string
	content  core.Renderable
	buttons  []string
	onEscape func()
	onAction func(index int)
	open     bool
	focused  bool
	focus    int
}

// NewModal creates a closed dialog.
func NewModal(title string, content core.Renderable) *Modal {
	return &Modal{id: autoID("modal"), title: title, content: content}
}

func (m *Modal) WithID(id string) *Modal {
	m.id = id
	return m
}

// WithFooter sets the footer button labels, primary first.
func (m *Modal) WithFooter(labels ...string) *Modal {
	m.buttons = labels
	return m
}

// OnEscape is called when Escape closes the dialog.
func (m *Modal) OnEscape(fn func()) *Modal {
	m.onEscape = fn
	return m
}

// OnAction is called with the index of the activated footer button.
func (m *Modal) OnAction(fn func(index int)) *Modal {
	m.onAction = fn
	return m
}

func (m *Modal) Open() {
	m.open = true
	m.focus = 0
}

func (m *Modal) Close() { m.open = false }

func (m *Modal) IsOpen() bool { return m.open }

// FocusIndex is the footer button holding focus.
func (m *Modal) FocusIndex() int { return m.focus }

func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := len(m.buttons)
	switch {
	case key.Matches(k, Keys.Close):
		m.Close()
		if m.onEscape != nil {
			m.onEscape()
		}
	case key.Matches(k, Keys.Next, Keys.Right) && n > 0:
		m.focus = (m.focus + 1) % n
	case key.Matches(k, Keys.Prev, Keys.Left) && n > 0:
		m.focus = (m.focus - 1 + n) % n
	case key.Matches(k, Keys.Submit, Keys.Toggle) && n > 0:
		if m.onAction != nil {
			m.onAction(m.focus)
		}
	}
	return nil
}

func (m *Modal) Focus() tea.Cmd {
	m.focused = true
	return nil
}

func (m *Modal) Blur()         { m.focused = false }
func (m *Modal) Focused() bool { return m.focused }

func (m *Modal) View() string {
	return m.ViewWithContext(ui.DefaultContext())
}

func (m *Modal) ViewWithContext(ctx ui.RenderContext) string {
	if !m.open {
		return ""
	}
	if m.title == "" {
		ctx.Diagnostics.MissingLabel("modal", m.id)
	}

	palette := ctx.Theme.Palette
	frame := lipgloss.NewStyle().
		Border(ui.BorderForVariant(ctx.Theme, ui.BorderVariantThick)).
		BorderForeground(palette.Highlight.Base).
		Padding(ui.PaddingValue(ctx.Theme, ui.SpacingS), ui.PaddingValue(ctx.Theme, ui.SpacingM))
	inner := ctx
	if w := ctx.Width(); w > 0 {
		frame = frame.Width(w - frame.GetHorizontalBorderSize())
		inner.Constraints = ui.WithMaxWidth(w - frame.GetHorizontalFrameSize())
	}

	parts := []string{ui.NewHeading(ui.HeadingH2, m.title).WithID(m.id + "-title").ViewWithContext(inner)}
	if m.content != nil {
		parts = append(parts, render(inner, m.content))
	}
	if len(m.buttons) > 0 {
		views := make([]string, len(m.buttons))
		for i, label := range m.buttons {
			b := ui.NewButton(label).WithFocused(i == m.focus)
			if i > 0 {
				b.WithVariant(ui.ButtonSecondary)
			}
			views[i] = b.ViewWithContext(inner)
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Center, spaced(views, ui.MarginValue(ctx.Theme, ui.SpacingM))...))
	}
	return frame.Render(joinLines(parts...))
}

func spaced(views []string, gap int) []string {
	out := make([]string, 0, len(views)*2)
	for i, v := range views {
		if i > 0 {
			out = append(out, strings.Repeat(" ", gap))
		}
		out = append(out, v)
	}
	return out
}

func (m *Modal) Accessibility() ui.Accessibility {
	return ui.Accessibility{
		Role:   "dialog",
		ID:     m.id,
		Label:  m.title,
		Hidden: !m.open,
	}
}
