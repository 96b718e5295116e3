package catalog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valger11/suomifi-ui-components/internal/debounce"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case debounce.FireMsg:
		// Only the owning widget accepts the tick.
		var cmds []tea.Cmd
		for _, page := range m.pages {
			for _, w := range page.Widgets {
				cmds = append(cmds, w.Update(msg))
			}
		}
		return m, tea.Batch(cmds...)

	case ThemeFetchedMsg:
		m.fetching = false
		m.cancelFetch = nil
		theme, err := msg.File.Resolve()
		if err != nil {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Theme %s: %s", msg.File.Name, err.Error())
			return m, nil
		}
		m.themes, m.themeIdx = withTheme(m.themes, theme)
		m.events.add("theme %s loaded from %s", msg.File.Name, msg.Source.Repo)
		m.log.WithFields(map[string]any{"theme": msg.File.Name, "repo": msg.Source.Repo}).Info("theme applied")
		return m, nil

	case ThemeFetchErrorMsg:
		m.fetching = false
		m.cancelFetch = nil
		m.showError = true
		m.errorMsg = fmt.Sprintf("Theme fetch failed: %s", msg.Error.Error())
		m.log.Error(msg.Error, "theme fetch failed")
		return m, nil

	case ThemeFetchCancelledMsg:
		m.fetching = false
		m.cancelFetch = nil
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	if w, ok := m.FocusedWidget(); ok {
		return m, w.Update(msg)
	}
	return m, nil
}

// handleKeyPress routes keys to the pane that has focus.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.shutdown()
		return m, tea.Quit
	}
	if m.pane == PanePreview {
		return m.handlePreviewKeys(msg)
	}
	return m.handleNavKeys(msg)
}

func (m Model) handleNavKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.NextTheme()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Enter, m.keys.Next):
		return m.enterPreview(0)

	case key.Matches(msg, m.keys.Prev):
		if page := m.CurrentPage(); page != nil && len(page.Widgets) > 0 {
			return m.enterPreview(len(page.Widgets) - 1)
		}
		return m, nil
	}

	// Direct selection with number keys
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.SetCursor(int(s[0] - '1'))
	}
	return m, nil
}

func (m Model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w, ok := m.FocusedWidget()
	if !ok {
		m.pane = PaneNav
		return m, nil
	}
	if t, ok := w.(trap); ok && t.Trapping() {
		return m, w.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}
	return m, w.Update(msg)
}

// enterPreview hands focus to widget i of the current page. Pages with
// nothing to focus keep the navigation pane.
func (m Model) enterPreview(i int) (tea.Model, tea.Cmd) {
	page := m.CurrentPage()
	if page == nil || len(page.Widgets) == 0 {
		return m, nil
	}
	m.pane = PanePreview
	m.focus = i
	return m, page.Widgets[i].Focus()
}

// moveFocus walks the widgets of the page. Leaving either end returns to
// the navigation pane.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	page := m.CurrentPage()
	page.Widgets[m.focus].Blur()

	next := m.focus + delta
	if next < 0 || next >= len(page.Widgets) {
		m.pane = PaneNav
		m.focus = 0
		return m, nil
	}
	m.focus = next
	return m, page.Widgets[next].Focus()
}
