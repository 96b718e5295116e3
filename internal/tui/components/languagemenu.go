package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

// LanguageItem is one entry of a language menu.
type LanguageItem struct {
	Label string
	Lang  string
}

// LanguageMenu is a menu button listing the available languages.
type LanguageMenu struct {
	id       string
	name     string
	items    []LanguageItem
	selected int
	cursor   int
	open     bool
	focused  bool
	onSelect func(item LanguageItem)
}

// NewLanguageMenu creates a closed menu. name is the button text, usually
// the current language.
func NewLanguageMenu(name string, items ...LanguageItem) *LanguageMenu {
	return &LanguageMenu{id: autoID("language-menu"), name: name, items: items, selected: -1}
}

func (l *LanguageMenu) WithID(id string) *LanguageMenu {
	l.id = id
	return l
}

// WithSelected marks the item with lang as the current language.
func (l *LanguageMenu) WithSelected(lang string) *LanguageMenu {
	for i, item := range l.items {
		if item.Lang == lang {
			l.selected = i
		}
	}
	return l
}

func (l *LanguageMenu) OnSelect(fn func(item LanguageItem)) *LanguageMenu {
	l.onSelect = fn
	return l
}

func (l *LanguageMenu) IsOpen() bool { return l.open }
func (l *LanguageMenu) Cursor() int  { return l.cursor }

// Selected returns the current language, if one is marked.
func (l *LanguageMenu) Selected() (LanguageItem, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return LanguageItem{}, false
	}
	return l.items[l.selected], true
}

// Open shows the item list with the cursor on the current language.
func (l *LanguageMenu) Open() {
	if len(l.items) == 0 {
		return
	}
	l.open = true
	l.cursor = 0
	if l.selected >= 0 {
		l.cursor = l.selected
	}
}

func (l *LanguageMenu) Close() { l.open = false }

func (l *LanguageMenu) Update(msg tea.Msg) tea.Cmd {
	if !l.focused {
		return nil
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if !l.open {
		if key.Matches(k, Keys.Submit, Keys.Toggle, Keys.Down) {
			l.Open()
		}
		return nil
	}
	n := len(l.items)
	switch {
	case key.Matches(k, Keys.Down):
		l.cursor = (l.cursor + 1) % n
	case key.Matches(k, Keys.Up):
		l.cursor = (l.cursor - 1 + n) % n
	case key.Matches(k, Keys.Submit, Keys.Toggle):
		l.selected = l.cursor
		l.open = false
		if l.onSelect != nil {
			l.onSelect(l.items[l.selected])
		}
	case key.Matches(k, Keys.Close, Keys.Next, Keys.Prev):
		l.open = false
	}
	return nil
}

func (l *LanguageMenu) Focus() tea.Cmd {
	l.focused = true
	return nil
}

func (l *LanguageMenu) Blur() {
	l.focused = false
	l.open = false
}

func (l *LanguageMenu) Focused() bool { return l.focused }

func (l *LanguageMenu) View() string {
	return l.ViewWithContext(ui.DefaultContext())
}

func (l *LanguageMenu) ViewWithContext(ctx ui.RenderContext) string {
	if len(l.items) == 0 {
		ctx.Diagnostics.EmptyMenu(l.name)
		return ""
	}
	button := ui.NewButton(l.name).
		WithVariant(ui.ButtonSecondaryNoBorder).
		WithIconRight(glyphName(l.open)).
		WithFocused(l.focused && !l.open).
		ViewWithContext(ctx)
	if !l.open {
		return button
	}

	palette := ctx.Theme.Palette
	rows := make([]string, len(l.items))
	for i, item := range l.items {
		style := ui.TypographyStyle(ctx.Theme, ui.TypographyBody).PaddingLeft(1).PaddingRight(1)
		if i == l.selected {
			style = style.Bold(true).Foreground(palette.Highlight.Base)
		}
		if i == l.cursor {
			style = style.Background(palette.Highlight.Muted)
		}
		rows[i] = style.Render(item.Label)
	}
	popover := lipgloss.NewStyle().
		Border(ui.BorderForVariant(ctx.Theme, ui.BorderVariantNormal)).
		BorderForeground(palette.Highlight.Base).
		Render(strings.Join(rows, "\n"))
	return joinLines(button, popover)
}

func glyphName(open bool) string {
	if open {
		return "chevronUp"
	}
	return "chevronDown"
}

func (l *LanguageMenu) Accessibility() ui.Accessibility {
	return ui.Accessibility{
		Role:     "button",
		ID:       l.id,
		Label:    l.name,
		Controls: l.id + "-menu",
		Expanded: ui.Bool(l.open),
	}
}
