package catalog

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewListsEveryPage(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	for _, page := range m.Pages() {
		assert.Contains(t, view, page.Title)
	}
	assert.Contains(t, view, "theme: light")
}

func TestViewShowsCurrentPagePreview(t *testing.T) {
	m, _ := newTestModel(t)
	m.SetCursor(pageIndex(t, m, "Checkbox"))

	view := m.View()
	assert.Contains(t, view, "I accept the terms")
	assert.Contains(t, view, "Notifications")
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Contains(t, m.View(), "Terminal too small")

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.NotContains(t, m.View(), "Terminal too small")
}

func TestViewShowsRecentEvents(t *testing.T) {
	m, _ := newTestModel(t)
	m = openPage(t, m, "Checkbox")
	m = send(t, m, keySpace)
	assert.Contains(t, m.View(), "checkbox terms: true")
}

func TestEventLogKeepsMostRecent(t *testing.T) {
	log := newEventLog(2)
	log.add("one")
	log.add("two")
	log.add("three")
	require.Equal(t, []string{"two", "three"}, log.recent())
}

func TestViewShowsFetchSpinner(t *testing.T) {
	m, _ := newTestModel(t)
	m.fetching = true
	assert.Contains(t, m.View(), "fetching theme")
}

func TestViewHeaderShowsVersion(t *testing.T) {
	m := NewModel(Options{Version: "1.2.3 (abcdef1)"})
	assert.Contains(t, m.View(), "suomifi-ui-components 1.2.3 (abcdef1)")

	m, _ = newTestModel(t)
	assert.NotContains(t, m.View(), "suomifi-ui-components 1")
}
