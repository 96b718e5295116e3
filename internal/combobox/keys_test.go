package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleKeyNavigatesAndCommits(t *testing.T) {
	s := New(tools(), Options{})
	s.OpenPopover()

	assert.True(t, s.HandleKey(KeyDown))
	assert.Equal(t, FocusList, s.Focus())
	assert.Equal(t, 0, s.CursorIndex())

	s.HandleKey(KeyDown)
	s.HandleKey(KeyEnter)
	assert.Equal(t, []string{"2"}, s.SelectedIDs())

	s.HandleKey(KeyUp)
	assert.Equal(t, 0, s.CursorIndex())
}

func TestHandleKeyArrowsKeepInputFocusWhenClosed(t *testing.T) {
	s := New(tools(), Options{})
	s.HandleKey(KeyDown)
	assert.Equal(t, FocusInput, s.Focus())
	assert.Equal(t, 0, s.CursorIndex())
}

func TestHandleKeyEscapeClearsAndCloses(t *testing.T) {
	s := New(tools(), Options{})
	s.OpenPopover()
	s.SetQuery("saw")

	assert.True(t, s.HandleKey(KeyEscape))
	assert.False(t, s.PopoverOpen())
	assert.Equal(t, "", s.Query())
	assert.Len(t, s.Visible(), 3)
}

func TestHandleKeyOtherRedirectsFocus(t *testing.T) {
	s := New(tools(), Options{})
	s.OpenPopover()
	s.HandleKey(KeyDown)
	require.Equal(t, FocusList, s.Focus())
	s.ClosePopover()

	assert.False(t, s.HandleKey(KeyOther))
	assert.Equal(t, FocusInput, s.Focus())
	assert.True(t, s.PopoverOpen())
}

func TestHighlightMarksEveryOccurrence(t *testing.T) {
	segs := Highlight("Sawsaw blade", "SAW")
	require.Len(t, segs, 3)
	assert.Equal(t, Segment{Text: "Saw", Match: true}, segs[0])
	assert.Equal(t, Segment{Text: "saw", Match: true}, segs[1])
	assert.Equal(t, Segment{Text: " blade"}, segs[2])
}

func TestHighlightHandlesNonASCII(t *testing.T) {
	segs := Highlight("Äänestys", "ää")
	require.Len(t, segs, 2)
	assert.Equal(t, "Ää", segs[0].Text)
	assert.True(t, segs[0].Match)
	assert.Equal(t, "nestys", segs[1].Text)
}

func TestHighlightEmptyQuery(t *testing.T) {
	assert.Equal(t, []Segment{{Text: "Saw"}}, Highlight("Saw", ""))
}
