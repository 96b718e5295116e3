package catalog

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	widgets "github.com/valger11/suomifi-ui-components/internal/tui/components"
)

// KeyMap holds the catalog-level bindings. Widget bindings come from
// widgets.Keys and are shown in the full help.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Theme     key.Binding
	Help      key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the catalog bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous page")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next page")),
		Enter:     key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open preview")),
		Next:      widgets.Keys.Next,
		Prev:      widgets.Keys.Prev,
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "switch theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Dismiss:   key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "dismiss error")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

var _ help.KeyMap = KeyMap{}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Next, k.Theme, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Next, k.Prev, k.Theme},
		{k.Help, k.Dismiss, k.Quit, k.ForceQuit},
	}, widgets.Keys.FullHelp()...)
}
