package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valger11/suomifi-ui-components/internal/combobox"
	"github.com/valger11/suomifi-ui-components/internal/diagnostics"
	"github.com/valger11/suomifi-ui-components/internal/expander"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
)

var (
	keySpace     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEscape}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft      = tea.KeyMsg{Type: tea.KeyLeft}
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyRemoveAll = tea.KeyMsg{Type: tea.KeyCtrlX}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// feed runs cmd and hands every resulting message back to w.
func feed(w Widget, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			feed(w, c)
		}
		return
	}
	feed(w, w.Update(msg))
}

func diagContext() (ui.RenderContext, *diagnostics.Reporter) {
	r := diagnostics.New(nil)
	return ui.DefaultContext().WithDiagnostics(r), r
}

func TestCheckboxUncontrolledToggles(t *testing.T) {
	var clicks []bool
	cb := NewCheckbox("Accept terms").OnClick(func(v bool) { clicks = append(clicks, v) })

	cb.Update(keySpace)
	assert.False(t, cb.Checked(), "unfocused checkbox ignores keys")

	cb.Focus()
	cb.Update(keySpace)
	assert.True(t, cb.Checked())
	cb.Update(keyEnter)
	assert.False(t, cb.Checked())
	assert.Equal(t, []bool{true, false}, clicks)
}

func TestCheckboxControlledOnlyReports(t *testing.T) {
	var requested []bool
	cb := NewCheckbox("Newsletter").OnClick(func(v bool) { requested = append(requested, v) })
	cb.SetChecked(true)
	cb.Focus()

	cb.Update(keySpace)
	assert.True(t, cb.Checked())
	assert.Equal(t, []bool{false}, requested)

	cb.SetChecked(false)
	assert.False(t, cb.Checked())
}

func TestCheckboxDisabledIgnoresToggle(t *testing.T) {
	cb := NewCheckbox("Locked").WithDisabled(true).WithDefaultChecked(true)
	cb.Focus()
	cb.Update(keySpace)
	assert.True(t, cb.Checked())
	assert.True(t, cb.Accessibility().Disabled)
}

func TestCheckboxStatusAndHint(t *testing.T) {
	cb := NewCheckbox("Terms").
		WithID("terms").
		WithHintText("Read them first").
		WithStatus(ui.StatusError, "Required")

	a := cb.Accessibility()
	assert.Equal(t, []string{"terms-statusText", "terms-hintText"}, a.DescribedBy)
	assert.True(t, a.Invalid)
	require.NotNil(t, a.Checked)
	assert.False(t, *a.Checked)

	view := cb.View()
	assert.Contains(t, view, "Read them first")
	assert.Contains(t, view, "Required")

	cb.WithDisabled(true)
	assert.NotContains(t, cb.View(), "Required")
}

func TestCheckboxLargeVariant(t *testing.T) {
	cb := NewCheckbox("Big").WithVariant(CheckboxLarge).WithDefaultChecked(true)
	assert.Contains(t, cb.View(), "[ ✓ ]")
	assert.Contains(t, NewCheckbox("Small").View(), "[ ]")
}

func TestCheckboxDiagnostics(t *testing.T) {
	ctx, r := diagContext()
	NewCheckbox("").WithID("c1").ViewWithContext(ctx)
	NewCheckbox("Named").WithID("c2").WithName("").WithValue("").ViewWithContext(ctx)
	NewCheckbox("Fine").WithID("c3").WithName("n").WithValue("v").ViewWithContext(ctx)

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, diagnostics.KindMissingLabel, entries[0].Kind)
	assert.Equal(t, "c1", entries[0].ID)
	assert.Equal(t, diagnostics.KindEmptyAttribute, entries[1].Kind)
	assert.Equal(t, diagnostics.KindEmptyAttribute, entries[2].Kind)
}

func TestToggleUsesSwitchRole(t *testing.T) {
	var got []bool
	tg := NewToggle("Dark mode").OnChange(func(on bool) { got = append(got, on) })
	tg.Focus()
	tg.Update(keySpace)

	assert.True(t, tg.Checked())
	assert.Equal(t, []bool{true}, got)
	assert.Equal(t, "switch", tg.Accessibility().Role)
	assert.Contains(t, tg.View(), "●")
}

func TestTextInputTypesAndNotifies(t *testing.T) {
	var changes []string
	in := NewTextInput("Name").WithID("name").OnChange(func(v string) { changes = append(changes, v) })
	in.Focus()

	in.Update(typed("Ada"))
	assert.Equal(t, "Ada", in.Value())
	assert.Equal(t, []string{"Ada"}, changes)
	assert.Contains(t, in.View(), "Ada")
}

func TestTextInputDebouncesChanges(t *testing.T) {
	var changes []string
	in := NewTextInput("Search").WithDebounce(0).OnChange(func(v string) { changes = append(changes, v) })
	in.Focus()

	first := in.Update(typed("s"))
	second := in.Update(typed("a"))
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Empty(t, changes)

	feed(in, first)
	assert.Empty(t, changes, "stale tick is dropped")
	feed(in, second)
	assert.Equal(t, []string{"sa"}, changes)
}

func TestTextInputCloseCancelsPending(t *testing.T) {
	called := false
	in := NewTextInput("Search").WithDebounce(0).OnChange(func(string) { called = true })
	in.Focus()
	cmd := in.Update(typed("x"))
	in.Close()
	feed(in, cmd)
	assert.False(t, called)
}

func TestTextInputDescribedByOrder(t *testing.T) {
	in := NewTextInput("Email").
		WithID("123").
		WithHintText("work address").
		WithStatus(ui.StatusError, "invalid").
		WithDescribedBy("external-component-id")

	a := in.Accessibility()
	assert.Equal(t, []string{"123-statusText", "123-hintText", "external-component-id"}, a.DescribedBy)
	assert.True(t, a.Invalid)
}

func TestTextInputHiddenLabelStaysAccessible(t *testing.T) {
	in := NewTextInput("Hidden label").WithLabelMode(ui.LabelHidden).WithOptionalText("optional")
	assert.NotContains(t, in.View(), "Hidden label")
	assert.Equal(t, "Hidden label (optional)", in.Accessibility().Label)
}

func TestTextInputDisabledRejectsInput(t *testing.T) {
	in := NewTextInput("Off").WithDisabled(true)
	assert.Nil(t, in.Focus())
	in.Update(typed("x"))
	assert.Equal(t, "", in.Value())
}

func TestSearchInputSearchAndClear(t *testing.T) {
	var searched, changes []string
	s := NewSearchInput("Search", "Clear", "Search").
		OnSearch(func(v string) { searched = append(searched, v) })
	s.OnChange(func(v string) { changes = append(changes, v) })
	s.Focus()

	s.Update(keyEnter)
	assert.Empty(t, searched, "empty field does not search")
	assert.Len(t, s.Actions(), 1)
	assert.True(t, s.Actions()[0].Disabled)

	s.Update(typed("saw"))
	assert.Len(t, s.Actions(), 2)
	assert.Contains(t, s.View(), "✕")

	s.Update(keyEnter)
	assert.Equal(t, []string{"saw"}, searched)

	s.Update(keyEsc)
	assert.Equal(t, "", s.Value())
	assert.Equal(t, []string{"saw", ""}, changes)
	assert.Equal(t, "searchbox", s.Accessibility().Role)
}

func TestTextareaEditsAndBlurs(t *testing.T) {
	var blurred string
	ta := NewTextarea("Feedback").WithID("fb").OnBlur(func(v string) { blurred = v })
	ta.Focus()
	ta.Update(typed("hello"))
	ta.Update(keyEnter)
	ta.Update(typed("world"))

	assert.Equal(t, "hello\nworld", ta.Value())
	ta.Blur()
	assert.Equal(t, "hello\nworld", blurred)
	assert.Equal(t, "multiline", ta.Accessibility().Description)
}

func TestExpanderToggleAndAccessibility(t *testing.T) {
	e := NewExpander("faq", "Question", ui.NewText("Answer"), expander.Options{})
	assert.NotContains(t, e.View(), "Answer")

	e.Focus()
	e.Update(keyEnter)
	assert.True(t, e.IsOpen())
	assert.Contains(t, e.View(), "Answer")

	a := e.Accessibility()
	assert.Equal(t, "faq_title", a.ID)
	assert.Equal(t, "faq_content", a.Controls)
	require.NotNil(t, a.Expanded)
	assert.True(t, *a.Expanded)
}

func TestExpanderGroupButtonFollowsAggregate(t *testing.T) {
	a := NewExpander("a", "First", ui.NewText("1"), expander.Options{})
	b := NewExpander("b", "Second", ui.NewText("2"), expander.Options{DefaultOpen: true})
	g := NewExpanderGroup("Open all", "Close all", a, b)
	g.Focus()

	assert.Equal(t, "Open all", g.ButtonText())
	assert.Equal(t, 1, g.Group().OpenCount())

	g.Update(keyEnter)
	assert.True(t, a.IsOpen())
	assert.True(t, b.IsOpen())
	assert.Equal(t, "Close all", g.ButtonText())
	assert.Contains(t, g.View(), "Close all")

	g.Update(keySpace)
	assert.False(t, a.IsOpen())
	assert.False(t, b.IsOpen())
	assert.Equal(t, "Open all", g.ButtonText())
}

func TestExpanderGroupNavigatesIntoExpanders(t *testing.T) {
	a := NewExpander("a", "First", nil, expander.Options{})
	b := NewExpander("b", "Second", nil, expander.Options{})
	g := NewExpanderGroup("Open all", "Close all", a, b)
	g.Focus()

	g.Update(keyDown)
	g.Update(keyDown)
	assert.Equal(t, 1, g.FocusIndex())
	assert.True(t, b.Focused())
	g.Update(keyDown)
	assert.Equal(t, 1, g.FocusIndex())

	g.Update(keyEnter)
	assert.True(t, b.IsOpen())
	assert.False(t, g.Group().AllOpen())

	g.Update(keyUp)
	g.Update(keyEnter)
	assert.True(t, g.Group().AllOpen())
	assert.Equal(t, "Close all", g.ButtonText())

	g.Remove(0)
	assert.Equal(t, 1, g.Group().TotalCount())
}

func TestExpanderGroupAriaTexts(t *testing.T) {
	g := NewExpanderGroup("Open", "Close").WithAriaTexts("Open all sections", "Close all sections")
	assert.Equal(t, "Open all sections", g.Accessibility().Label)
}

func TestExpanderGroupRuleAccentsWhileAnyOpen(t *testing.T) {
	theme := ui.DefaultTheme()
	a := NewExpander("a", "First", ui.NewText("1"), expander.Options{})
	b := NewExpander("b", "Second", ui.NewText("2"), expander.Options{})
	g := NewExpanderGroup("Open all", "Close all", a, b)

	assert.Equal(t, theme.Palette.Depth.Muted, g.ruleColor(theme))

	b.Toggle()
	assert.False(t, g.Group().AllOpen())
	assert.Equal(t, theme.Palette.Highlight.Base, g.ruleColor(theme))

	b.Toggle()
	assert.Equal(t, theme.Palette.Depth.Muted, g.ruleColor(theme))

	view := g.ViewWithContext(ui.DefaultContext().WithConstraints(ui.WithMaxWidth(30)))
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

func tools() []combobox.Item {
	return []combobox.Item{
		{ID: "1", Label: "Hammer"},
		{ID: "2", Label: "Saw"},
		{ID: "3", Label: "Handsaw"},
	}
}

func TestComboboxFiltersAndSelects(t *testing.T) {
	var selections [][]string
	cb := NewCombobox("Tools", tools(), combobox.Options{Callbacks: combobox.Callbacks{
		OnSelectionChange: func(items []combobox.Item) {
			ids := make([]string, len(items))
			for i, it := range items {
				ids[i] = it.ID
			}
			selections = append(selections, ids)
		},
	}})
	cb.Focus()

	cb.Update(typed("saw"))
	assert.True(t, cb.State().PopoverOpen())
	assert.Len(t, cb.State().Visible(), 2)
	view := cb.View()
	assert.Contains(t, view, "Handsaw")
	assert.NotContains(t, view, "Hammer")

	cb.Update(keyDown)
	cb.Update(keyEnter)
	assert.Equal(t, []string{"2"}, cb.State().SelectedIDs())
	assert.Equal(t, "1 selected, 2 options available", cb.Announcement())

	cb.Update(keyEsc)
	assert.False(t, cb.State().PopoverOpen())
	assert.Equal(t, "", cb.Query())
	assert.Contains(t, cb.View(), "Remove all selections")
	assert.Equal(t, [][]string{{"2"}}, selections)
}

func TestComboboxEmptyLabel(t *testing.T) {
	cb := NewCombobox("Tools", tools(), combobox.Options{}).
		WithTexts(ComboboxTexts{EmptyItems: "Nothing found"})
	cb.Focus()
	cb.Update(typed("zzz"))
	assert.Contains(t, cb.View(), "Nothing found")
}

func TestComboboxChipsRemoveWithKeyboard(t *testing.T) {
	items := tools()
	cb := NewCombobox("Tools", items, combobox.Options{DefaultSelected: items})
	cb.Focus()

	cb.Update(keyLeft)
	assert.Equal(t, 2, cb.ChipFocus())
	cb.Update(keyLeft)
	assert.Equal(t, 1, cb.ChipFocus())

	cb.Update(keyBackspace)
	assert.Equal(t, []string{"1", "3"}, cb.State().SelectedIDs())
	assert.Equal(t, 1, cb.ChipFocus())

	cb.Update(keyRemoveAll)
	assert.Empty(t, cb.State().SelectedIDs())
}

func TestComboboxRemoveAllKeepsDisabled(t *testing.T) {
	items := tools()
	items[0].Disabled = true
	cb := NewCombobox("Tools", items, combobox.Options{DefaultSelected: items})
	cb.Focus()
	cb.Update(keyRemoveAll)
	assert.Equal(t, []string{"1"}, cb.State().SelectedIDs())
	assert.NotContains(t, cb.View(), "Remove all selections")
}

func TestComboboxDebouncesQueryNotification(t *testing.T) {
	var queries []string
	cb := NewCombobox("Tools", tools(), combobox.Options{}).
		WithDebounce(0).
		OnQueryChange(func(q string) { queries = append(queries, q) })
	cb.Focus()

	cmd := cb.Update(typed("ham"))
	assert.Len(t, cb.State().Visible(), 1, "filtering is immediate")
	assert.Empty(t, queries)
	feed(cb, cmd)
	assert.Equal(t, []string{"ham"}, queries)
}

func TestComboboxReportsDuplicateIDs(t *testing.T) {
	ctx, r := diagContext()
	items := append(tools(), combobox.Item{ID: "2", Label: "Another saw"})
	NewCombobox("Tools", items, combobox.Options{}).ViewWithContext(ctx)
	assert.True(t, r.Has(diagnostics.KindDuplicateIDs, "multiselect"))
}

func TestComboboxBlurClearsQuery(t *testing.T) {
	cb := NewCombobox("Tools", tools(), combobox.Options{})
	cb.Focus()
	cb.Update(typed("ha"))
	cb.Blur()
	assert.Equal(t, "", cb.Query())
	assert.Len(t, cb.State().Visible(), 3)
	assert.False(t, cb.State().PopoverOpen())
}

func TestComboboxBlurCancelsPendingQueryChange(t *testing.T) {
	var queries []string
	cb := NewCombobox("Tools", tools(), combobox.Options{}).
		WithDebounce(0).
		OnQueryChange(func(q string) { queries = append(queries, q) })

	cb.Focus()
	feed(cb, cb.Update(typed("ha")))
	require.Equal(t, []string{"ha"}, queries)

	queries = nil
	cmd := cb.Update(typed("s"))
	require.NotNil(t, cmd)
	cb.Blur()
	feed(cb, cmd)
	assert.Empty(t, queries)
	assert.Equal(t, "", cb.Query())
}

func TestSelectPicksFirstMatch(t *testing.T) {
	s := NewSelect("Tool", tools(), combobox.Options{})
	s.Focus()

	s.Update(typed("saw"))
	id, ok := s.State().Cursor()
	require.True(t, ok)
	assert.Equal(t, "2", id)

	s.Update(keyEnter)
	item, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, "Saw", item.Label)
	assert.False(t, s.State().PopoverOpen())
	assert.Contains(t, s.View(), "Saw")

	s.Update(typed("ham"))
	s.Update(keyEnter)
	item, _ = s.Value()
	assert.Equal(t, "1", item.ID)
	assert.Equal(t, "select", s.component)
}

func TestModalTrapsFocus(t *testing.T) {
	var actions []int
	escaped := false
	m := NewModal("Confirm", ui.NewText("Delete the file?")).
		WithFooter("Delete", "Cancel").
		OnAction(func(i int) { actions = append(actions, i) }).
		OnEscape(func() { escaped = true })

	assert.Equal(t, "", m.View())
	m.Open()
	assert.Contains(t, m.View(), "Delete the file?")

	m.Update(keyTab)
	assert.Equal(t, 1, m.FocusIndex())
	m.Update(keyTab)
	assert.Equal(t, 0, m.FocusIndex())
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.FocusIndex())

	m.Update(keyEnter)
	assert.Equal(t, []int{1}, actions)

	m.Update(keyEsc)
	assert.False(t, m.IsOpen())
	assert.True(t, escaped)
	assert.True(t, m.Accessibility().Hidden)
}

func TestModalFooterGapFollowsThemeMargin(t *testing.T) {
	gapBetween := func(theme ui.Theme) int {
		m := NewModal("Confirm", ui.NewText("Sure?")).WithFooter("Delete", "Cancel")
		m.Open()
		for _, line := range strings.Split(m.ViewWithContext(ui.DefaultContext().WithTheme(theme)), "\n") {
			if strings.Contains(line, "Cancel") {
				return strings.Index(line, "Cancel") - strings.Index(line, "Delete")
			}
		}
		t.Fatal("footer not rendered")
		return 0
	}

	wide := ui.LightTheme()
	wide.Spacing.Margin[ui.SpacingM] = 6

	assert.Equal(t, 4, gapBetween(wide)-gapBetween(ui.LightTheme()))
}

func TestLanguageMenuSelects(t *testing.T) {
	var picked []string
	menu := NewLanguageMenu("Suomi (FI)",
		LanguageItem{Label: "Suomi (FI)", Lang: "fi"},
		LanguageItem{Label: "Svenska (SV)", Lang: "sv"},
		LanguageItem{Label: "English (EN)", Lang: "en"},
	).WithSelected("fi").OnSelect(func(i LanguageItem) { picked = append(picked, i.Lang) })
	menu.Focus()

	menu.Update(keyEnter)
	require.True(t, menu.IsOpen())
	assert.Equal(t, 0, menu.Cursor())
	assert.Contains(t, menu.View(), "Svenska (SV)")

	menu.Update(keyUp)
	assert.Equal(t, 2, menu.Cursor())
	menu.Update(keyEnter)
	assert.False(t, menu.IsOpen())
	assert.Equal(t, []string{"en"}, picked)

	sel, ok := menu.Selected()
	require.True(t, ok)
	assert.Equal(t, "en", sel.Lang)
}

func TestLanguageMenuWithoutItemsWarns(t *testing.T) {
	ctx, r := diagContext()
	menu := NewLanguageMenu("Kieli")
	assert.Equal(t, "", menu.ViewWithContext(ctx))

	entries := r.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Menu 'Kieli' does not contain items", entries[0].Message)
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 4)
	assert.Len(t, km.FullHelp(), 4)
	assert.Equal(t, "space", km.Toggle.Help().Key)
}
