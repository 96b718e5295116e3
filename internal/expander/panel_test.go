package expander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelIDs(t *testing.T) {
	p := NewPanel("faq", Options{})
	assert.Equal(t, "faq_title", p.TitleID())
	assert.Equal(t, "faq_content", p.ContentID())
}

func TestUncontrolledPanelToggleReportsToGroup(t *testing.T) {
	g := NewGroup()
	var changes []bool
	p := NewPanel("a", Options{OnOpenChange: func(open bool) { changes = append(changes, open) }})
	p.Attach(g)

	p.Toggle()
	assert.True(t, p.IsOpen())
	open, ok := g.IsOpen("a")
	require.True(t, ok)
	assert.True(t, open)
	assert.Equal(t, []bool{true}, changes)
}

func TestControlledPanelWaitsForOwner(t *testing.T) {
	g := NewGroup()
	closed := false
	var requested []bool
	p := NewPanel("a", Options{Open: &closed, OnOpenChange: func(open bool) { requested = append(requested, open) }})
	p.Attach(g)

	p.Toggle()
	assert.False(t, p.IsOpen())
	assert.Equal(t, []bool{true}, requested)
	assert.Equal(t, 0, g.OpenCount())

	p.SetControlled(true)
	assert.True(t, p.IsOpen())
	assert.Equal(t, 1, g.OpenCount())
}

func TestControlledPanelReceivesBroadcastAsRequest(t *testing.T) {
	g := NewGroup()
	closed := false
	var p *Panel
	p = NewPanel("a", Options{Open: &closed, OnOpenChange: func(open bool) { p.SetControlled(open) }})
	p.Attach(g)

	g.RequestToggleAll()
	assert.True(t, p.IsOpen())
	assert.True(t, g.AllOpen())
}

func TestPanelIgnoresReplayedBroadcast(t *testing.T) {
	g := NewGroup()
	p := NewPanel("a", Options{})
	p.Attach(g)

	b := g.RequestToggleAll()
	require.True(t, p.IsOpen())

	p.Toggle()
	require.False(t, p.IsOpen())

	p.OnBroadcast(b)
	assert.False(t, p.IsOpen())
}

func TestPanelRenameMovesRegistration(t *testing.T) {
	g := NewGroup()
	p := NewPanel("old", Options{DefaultOpen: true})
	p.Attach(g)

	p.Rename("new")
	assert.False(t, g.Has("old"))
	open, ok := g.IsOpen("new")
	assert.True(t, ok)
	assert.True(t, open)
	assert.Equal(t, 1, g.TotalCount())
	assert.Equal(t, 1, g.OpenCount())
}

func TestPanelAttachToAnotherGroupMoves(t *testing.T) {
	first := NewGroup()
	second := NewGroup()
	p := NewPanel("a", Options{DefaultOpen: true})

	p.Attach(first)
	p.Attach(second)
	assert.Equal(t, 0, first.TotalCount())
	assert.Equal(t, 1, second.TotalCount())
	assert.Same(t, second, p.Group())
}

func TestPanelWithoutGroupStillToggles(t *testing.T) {
	p := NewPanel("solo", Options{})
	p.Toggle()
	assert.True(t, p.IsOpen())
	p.Detach()
	assert.Nil(t, p.Group())
}
